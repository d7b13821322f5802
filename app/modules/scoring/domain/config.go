package scoringdomain

// PointsTable maps score-to-par differences to Stableford points.
type PointsTable struct {
	Albatross   int `json:"albatross" yaml:"albatross"`
	Eagle       int `json:"eagle" yaml:"eagle"`
	Birdie      int `json:"birdie" yaml:"birdie"`
	Par         int `json:"par" yaml:"par"`
	Bogey       int `json:"bogey" yaml:"bogey"`
	DoubleBogey int `json:"doubleBogey" yaml:"double_bogey"`
	Worse       int `json:"worse" yaml:"worse"`
}

// DefaultStablefordTable returns the standard Stableford point values.
func DefaultStablefordTable() PointsTable {
	return PointsTable{Albatross: 5, Eagle: 4, Birdie: 3, Par: 2, Bogey: 1, DoubleBogey: 0, Worse: 0}
}

// ModifiedStablefordTable returns the tour-style modified values. Negative
// totals are valid and expected under this table.
func ModifiedStablefordTable() PointsTable {
	return PointsTable{Albatross: 8, Eagle: 5, Birdie: 2, Par: 0, Bogey: -1, DoubleBogey: -3, Worse: -3}
}

// ScoringConfig carries format-specific configuration into engine selection.
// Zero values mean "use the format's defaults".
type ScoringConfig struct {
	// StablefordPoints overrides the point table for the Stableford family.
	StablefordPoints *PointsTable `json:"stablefordPoints,omitempty"`
	// TeamSize is informational for team formats.
	TeamSize int `json:"teamSize,omitempty"`
	// CountBest is how many balls count per hole in best ball; defaults to 1.
	CountBest int `json:"countBest,omitempty"`
}

// RoundSetup is the event-level configuration a round is scored under,
// supplied by the trip/event collaborator and validated upstream.
type RoundSetup struct {
	Format      Format           `json:"format"`
	Config      ScoringConfig    `json:"config"`
	HandicapPct int              `json:"handicapPct"`
	HandicapCap *int             `json:"handicapCap,omitempty"`
	Holes       []HoleDefinition `json:"holes"`
	// Rating is nil when the tee has no slope/rating on file, which selects
	// the simplified handicap path.
	Rating *TeeRating `json:"rating,omitempty"`
}

// PlayerCard is one player's raw strokes for a round. Strokes is indexed by
// hole number - 1; nil entries are unrecorded holes.
type PlayerCard struct {
	Player  ParticipantRef `json:"player"`
	Strokes []*int         `json:"strokes"`
}
