// Package flights divides a field into handicap-bounded groups and builds
// per-flight leaderboards.
package flights

import (
	"fmt"
	"math"
	"sort"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
)

// Method selects how the field is divided.
type Method string

const (
	MethodEqualSize     Method = "EQUAL_SIZE"
	MethodHandicapRange Method = "HANDICAP_RANGE"
)

// Member is a participant eligible for flighting.
type Member struct {
	MemberID string  `json:"memberId"`
	Name     string  `json:"name"`
	Handicap float64 `json:"handicap"`
}

// Flight is a handicap-bounded group of participants.
type Flight struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MinHandicap float64  `json:"minHandicap"`
	MaxHandicap float64  `json:"maxHandicap"`
	Members     []Member `json:"members"`
}

// Range is a configured handicap band for the HANDICAP_RANGE method.
type Range struct {
	Name        string  `json:"name"`
	MinHandicap float64 `json:"minHandicap"`
	MaxHandicap float64 `json:"maxHandicap"`
}

// Config selects a division method. CustomRanges applies to HANDICAP_RANGE.
type Config struct {
	Method          Method  `json:"method"`
	NumberOfFlights int     `json:"numberOfFlights"`
	CustomRanges    []Range `json:"customRanges,omitempty"`
}

// BySize sorts the field by handicap and divides it into numberOfFlights
// contiguous groups, lowest handicaps first, named "Flight A", "Flight B", …
// Trailing empty groups are dropped. A non-positive flight count yields an
// empty result.
func BySize(members []Member, numberOfFlights int) []Flight {
	if numberOfFlights < 1 || len(members) == 0 {
		return []Flight{}
	}

	sorted := make([]Member, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Handicap < sorted[j].Handicap
	})

	flights := make([]Flight, 0, numberOfFlights)
	flightSize := (len(sorted) + numberOfFlights - 1) / numberOfFlights

	for i := 0; i < numberOfFlights; i++ {
		start := i * flightSize
		if start >= len(sorted) {
			break
		}
		end := start + flightSize
		if end > len(sorted) {
			end = len(sorted)
		}
		flightMembers := sorted[start:end]

		minHandicap := flightMembers[0].Handicap
		maxHandicap := flightMembers[0].Handicap
		for _, m := range flightMembers[1:] {
			if m.Handicap < minHandicap {
				minHandicap = m.Handicap
			}
			if m.Handicap > maxHandicap {
				maxHandicap = m.Handicap
			}
		}

		flights = append(flights, Flight{
			ID:          fmt.Sprintf("flight-%d", i),
			Name:        fmt.Sprintf("Flight %c", 'A'+i),
			MinHandicap: minHandicap,
			MaxHandicap: maxHandicap,
			Members:     flightMembers,
		})
	}

	return flights
}

// ByRange builds one flight per configured range, including every member
// whose handicap falls within [min, max] inclusive. Overlapping ranges place
// a member in multiple flights; range sanity is the caller's responsibility.
func ByRange(members []Member, ranges []Range) []Flight {
	flights := make([]Flight, 0, len(ranges))

	for i, r := range ranges {
		var flightMembers []Member
		for _, m := range members {
			if m.Handicap >= r.MinHandicap && m.Handicap <= r.MaxHandicap {
				flightMembers = append(flightMembers, m)
			}
		}
		sort.Slice(flightMembers, func(a, b int) bool {
			return flightMembers[a].Handicap < flightMembers[b].Handicap
		})

		flights = append(flights, Flight{
			ID:          fmt.Sprintf("flight-%d", i),
			Name:        r.Name,
			MinHandicap: r.MinHandicap,
			MaxHandicap: r.MaxHandicap,
			Members:     flightMembers,
		})
	}

	return flights
}

// Create divides the field using the configured method.
func Create(members []Member, cfg Config) []Flight {
	if cfg.Method == MethodHandicapRange && len(cfg.CustomRanges) > 0 {
		return ByRange(members, cfg.CustomRanges)
	}
	return BySize(members, cfg.NumberOfFlights)
}

// Score is a round total attributed to a flight member.
type Score struct {
	MemberID         string  `json:"memberId"`
	Name             string  `json:"name"`
	Handicap         float64 `json:"handicap"`
	GrossTotal       int     `json:"grossTotal"`
	NetTotal         int     `json:"netTotal"`
	StablefordPoints *int    `json:"stablefordPoints,omitempty"`
}

// RankedScore is a leaderboard row with its shared-tie position.
type RankedScore struct {
	Score
	Position int `json:"position"`
}

// Leaderboard filters a round's scores to the given flight's members and
// ranks them: net total ascending for stroke play, stableford points
// descending for the Stableford family. Tied keys share a position.
func Leaderboard(flightID string, allFlights []Flight, scores []Score, format scoringdomain.Format) []RankedScore {
	var flight *Flight
	for i := range allFlights {
		if allFlights[i].ID == flightID {
			flight = &allFlights[i]
			break
		}
	}
	if flight == nil {
		return []RankedScore{}
	}

	memberIDs := make(map[string]struct{}, len(flight.Members))
	for _, m := range flight.Members {
		memberIDs[m.MemberID] = struct{}{}
	}

	var flightScores []Score
	for _, s := range scores {
		if _, ok := memberIDs[s.MemberID]; ok {
			flightScores = append(flightScores, s)
		}
	}

	stableford := format == scoringdomain.FormatStableford || format == scoringdomain.FormatModifiedStableford
	sort.Slice(flightScores, func(i, j int) bool {
		if stableford {
			// Higher is better
			return points(flightScores[i]) > points(flightScores[j])
		}
		return flightScores[i].NetTotal < flightScores[j].NetTotal
	})

	ranked := make([]RankedScore, 0, len(flightScores))
	position := 1
	for i, s := range flightScores {
		if i > 0 {
			prev := flightScores[i-1]
			var tied bool
			if stableford {
				tied = points(s) == points(prev)
			} else {
				tied = s.NetTotal == prev.NetTotal
			}
			if !tied {
				position = i + 1
			}
		}
		ranked = append(ranked, RankedScore{Score: s, Position: position})
	}

	return ranked
}

// SuggestRanges partitions the observed handicap span into n equal-width
// bands for UI pre-fill. It plays no part in result calculation.
func SuggestRanges(handicaps []float64, numberOfFlights int) []Range {
	if len(handicaps) == 0 || numberOfFlights < 1 {
		return []Range{}
	}

	sorted := make([]float64, len(handicaps))
	copy(sorted, handicaps)
	sort.Float64s(sorted)

	min := sorted[0]
	max := sorted[len(sorted)-1]
	perFlight := (max - min) / float64(numberOfFlights)

	suggestions := make([]Range, 0, numberOfFlights)
	for i := 0; i < numberOfFlights; i++ {
		minH := math.Floor(min + float64(i)*perFlight)
		maxH := max
		if i < numberOfFlights-1 {
			maxH = math.Floor(min + float64(i+1)*perFlight)
		}
		suggestions = append(suggestions, Range{
			Name:        fmt.Sprintf("Flight %c", 'A'+i),
			MinHandicap: minH,
			MaxHandicap: maxH,
		})
	}

	return suggestions
}

func points(s Score) int {
	if s.StablefordPoints == nil {
		return 0
	}
	return *s.StablefordPoints
}
