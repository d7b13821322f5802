package standings

import "sort"

// SeasonEntry is one player's season totals going into the ranking.
type SeasonEntry struct {
	MemberID     string `json:"memberId"`
	Name         string `json:"name"`
	TotalPoints  int    `json:"totalPoints"`
	RoundsPlayed int    `json:"roundsPlayed"`
	Stats        Stats  `json:"stats"`
}

// Standing is a ranked (or reported-but-unranked) season row.
type Standing struct {
	MemberID     string `json:"memberId"`
	Name         string `json:"name"`
	Position     int    `json:"position"`
	TotalPoints  int    `json:"totalPoints"`
	RoundsPlayed int    `json:"roundsPlayed"`
	// Eligible is false when the player has not met the minimum rounds
	// requirement; such rows carry position 0 and never displace ranked ones.
	Eligible bool  `json:"eligible"`
	Stats    Stats `json:"stats"`
}

// Rank orders eligible players by total points descending, breaking ties by
// fewer rounds played. Positions use standard competition ranking: entries
// equal on both keys share a position equal to 1 + the count of strictly
// better entries. Players below MinRounds are still reported, unranked,
// after the eligible field.
//
// Rank is deterministic for identical input: equal entries fall back to
// member ID order, which never affects position numbers.
func Rank(entries []SeasonEntry, settings Settings) []Standing {
	var eligible, ineligible []SeasonEntry
	for _, e := range entries {
		if e.RoundsPlayed >= settings.MinRounds {
			eligible = append(eligible, e)
		} else {
			ineligible = append(ineligible, e)
		}
	}

	less := func(a, b SeasonEntry) bool {
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.RoundsPlayed != b.RoundsPlayed {
			return a.RoundsPlayed < b.RoundsPlayed
		}
		return a.MemberID < b.MemberID
	}
	sort.Slice(eligible, func(i, j int) bool { return less(eligible[i], eligible[j]) })
	sort.Slice(ineligible, func(i, j int) bool { return less(ineligible[i], ineligible[j]) })

	standings := make([]Standing, 0, len(entries))

	position := 1
	for i, e := range eligible {
		if i > 0 {
			prev := eligible[i-1]
			if e.TotalPoints != prev.TotalPoints || e.RoundsPlayed != prev.RoundsPlayed {
				position = i + 1
			}
		}
		standings = append(standings, Standing{
			MemberID:     e.MemberID,
			Name:         e.Name,
			Position:     position,
			TotalPoints:  e.TotalPoints,
			RoundsPlayed: e.RoundsPlayed,
			Eligible:     true,
			Stats:        e.Stats,
		})
	}

	for _, e := range ineligible {
		standings = append(standings, Standing{
			MemberID:     e.MemberID,
			Name:         e.Name,
			TotalPoints:  e.TotalPoints,
			RoundsPlayed: e.RoundsPlayed,
			Eligible:     false,
			Stats:        e.Stats,
		})
	}

	return standings
}
