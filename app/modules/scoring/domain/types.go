// Package scoringdomain holds the value types shared by the handicap
// calculator and the format engines. Everything here is plain data; the
// persistence and transport layers own their own representations.
package scoringdomain

// Format identifies a scoring format.
type Format string

const (
	FormatStrokePlay         Format = "STROKE_PLAY"
	FormatStableford         Format = "STABLEFORD"
	FormatModifiedStableford Format = "MODIFIED_STABLEFORD"
	FormatMatchPlay          Format = "MATCH_PLAY"
	FormatScramble           Format = "SCRAMBLE"
	FormatBestBall           Format = "BEST_BALL"
)

// HoleDefinition describes one hole of the tee set being played.
// StrokeIndex is the hole's handicap rank (1-18) and determines the order in
// which handicap strokes are allocated.
type HoleDefinition struct {
	HoleNumber  int `json:"holeNumber"`
	Par         int `json:"par"`
	StrokeIndex int `json:"strokeIndex"`
	Yardage     int `json:"yardage,omitempty"`
}

// TeeRating carries the slope/rating data for a tee. When a course has no
// rating on file the simplified handicap path is used instead.
type TeeRating struct {
	SlopeRating  int     `json:"slopeRating"`
	CourseRating float64 `json:"courseRating"`
	TotalPar     int     `json:"totalPar"`
}

// HoleScoreInput is one player's raw result on one hole, after handicap
// strokes have been allocated.
type HoleScoreInput struct {
	HoleNumber      int `json:"holeNumber"`
	Strokes         int `json:"strokes"`
	Par             int `json:"par"`
	HandicapStrokes int `json:"handicapStrokes"`
}

// HoleScoreResult is the engine's per-hole output. Points is set only by the
// Stableford family.
type HoleScoreResult struct {
	HoleNumber int  `json:"holeNumber"`
	Strokes    int  `json:"strokes"`
	NetStrokes int  `json:"netStrokes"`
	Points     *int `json:"points,omitempty"`
}

// TotalScoreResult is the engine's whole-round output. The match play fields
// are populated only by head-to-head comparison.
type TotalScoreResult struct {
	GrossTotal  int    `json:"grossTotal"`
	NetTotal    int    `json:"netTotal"`
	TotalPoints *int   `json:"totalPoints,omitempty"`
	HolesWon    *int   `json:"holesWon,omitempty"`
	HolesLost   *int   `json:"holesLost,omitempty"`
	HolesTied   *int   `json:"holesTied,omitempty"`
	MatchResult string `json:"matchResult,omitempty"`
}

// ParticipantRef identifies a roster member to the engine. HandicapIndex nil
// means no handicap: the player receives no strokes and plays gross only.
type ParticipantRef struct {
	MemberID      string   `json:"memberId"`
	DisplayName   string   `json:"displayName"`
	HandicapIndex *float64 `json:"handicapIndex,omitempty"`
}

// Scorecard is one player's computed round: per-hole results plus totals.
// The totals are nil for partial rounds; they are only computed once all 18
// holes have recorded strokes.
type Scorecard struct {
	MemberID        string            `json:"memberId"`
	DisplayName     string            `json:"displayName"`
	Format          Format            `json:"format"`
	PlayingHandicap int               `json:"playingHandicap"`
	Holes           []HoleScoreResult `json:"holes"`
	GrossTotal      *int              `json:"grossTotal,omitempty"`
	NetTotal        *int              `json:"netTotal,omitempty"`
	TotalPoints     *int              `json:"totalPoints,omitempty"`
}

// Complete reports whether every hole of the card has a recorded score.
func (c Scorecard) Complete() bool {
	return len(c.Holes) == 18
}

// IntPtr is a convenience for building optional result fields.
func IntPtr(v int) *int { return &v }
