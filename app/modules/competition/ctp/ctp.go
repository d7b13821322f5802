// Package ctp implements the closest-to-pin side competition, typically run
// on par 3 holes.
package ctp

import (
	"fmt"
	"math"
	"time"
)

// Unit is a distance measurement unit.
type Unit string

const (
	UnitFeet   Unit = "FEET"
	UnitInches Unit = "INCHES"
	UnitMeters Unit = "METERS"
)

const inchesPerMeter = 39.3701

// Config selects the CTP holes and qualification rules.
type Config struct {
	Holes []int `json:"holes"`
	Unit  Unit  `json:"unit"`
	// RequireGreen disqualifies measurements where the ball missed the green.
	RequireGreen bool `json:"requireGreen"`
}

// Measurement is one participant's recorded distance on a CTP hole.
type Measurement struct {
	MemberID   string    `json:"memberId"`
	Name       string    `json:"name"`
	HoleNumber int       `json:"holeNumber"`
	Distance   float64   `json:"distance"`
	Unit       Unit      `json:"unit"`
	OnGreen    bool      `json:"onGreen"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Result is the outcome on one configured hole. Winner fields are empty when
// no measurement qualified.
type Result struct {
	HoleNumber   int           `json:"holeNumber"`
	WinnerID     string        `json:"winnerId,omitempty"`
	WinnerName   string        `json:"winnerName,omitempty"`
	Distance     *float64      `json:"distance,omitempty"`
	Unit         Unit          `json:"unit"`
	Measurements []Measurement `json:"measurements"`
}

// Calculate finds the closest qualifying measurement on each configured hole.
func Calculate(measurements []Measurement, cfg Config) []Result {
	results := make([]Result, 0, len(cfg.Holes))

	for _, holeNumber := range cfg.Holes {
		var holeMeasurements []Measurement
		for _, m := range measurements {
			if m.HoleNumber == holeNumber {
				holeMeasurements = append(holeMeasurements, m)
			}
		}

		qualifying := holeMeasurements
		if cfg.RequireGreen {
			qualifying = nil
			for _, m := range holeMeasurements {
				if m.OnGreen {
					qualifying = append(qualifying, m)
				}
			}
		}

		if len(qualifying) == 0 {
			results = append(results, Result{
				HoleNumber:   holeNumber,
				Unit:         cfg.Unit,
				Measurements: holeMeasurements,
			})
			continue
		}

		winner := qualifying[0]
		for _, m := range qualifying[1:] {
			if m.Distance < winner.Distance {
				winner = m
			}
		}

		distance := winner.Distance
		results = append(results, Result{
			HoleNumber:   holeNumber,
			WinnerID:     winner.MemberID,
			WinnerName:   winner.Name,
			Distance:     &distance,
			Unit:         cfg.Unit,
			Measurements: holeMeasurements,
		})
	}

	return results
}

// FormatDistance renders a distance for display in its unit.
func FormatDistance(distance float64, unit Unit) string {
	switch unit {
	case UnitFeet:
		feet := int(distance) / 12
		inches := int(math.Round(math.Mod(distance, 12)))
		return fmt.Sprintf("%d' %d\"", feet, inches)
	case UnitInches:
		return fmt.Sprintf("%g\"", distance)
	case UnitMeters:
		return fmt.Sprintf("%.2fm", distance)
	default:
		return fmt.Sprintf("%g %s", distance, unit)
	}
}

// ToInches normalizes a distance to inches for storage.
func ToInches(distance float64, unit Unit) float64 {
	switch unit {
	case UnitFeet:
		return distance * 12
	case UnitMeters:
		return distance * inchesPerMeter
	default:
		return distance
	}
}

// FromInches converts a stored distance back to the target unit.
func FromInches(inches float64, unit Unit) float64 {
	switch unit {
	case UnitFeet:
		return inches / 12
	case UnitMeters:
		return inches / inchesPerMeter
	default:
		return inches
	}
}

// maxDistanceInches caps accepted measurements at 300 yards.
const maxDistanceInches = 10800

// Validate checks a measurement against the competition config before it is
// accepted.
func Validate(m Measurement, cfg Config) error {
	configured := false
	for _, h := range cfg.Holes {
		if h == m.HoleNumber {
			configured = true
			break
		}
	}
	if !configured {
		return fmt.Errorf("hole %d is not configured for closest-to-pin", m.HoleNumber)
	}

	if cfg.RequireGreen && !m.OnGreen {
		return fmt.Errorf("ball must be on the green to qualify")
	}

	if m.Distance < 0 {
		return fmt.Errorf("distance must be positive")
	}

	if ToInches(m.Distance, m.Unit) > maxDistanceInches {
		return fmt.Errorf("distance seems unrealistic (> 300 yards)")
	}

	return nil
}

// Champion is the player with the most CTP wins across the round.
type Champion struct {
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
	Holes    []int  `json:"holes"`
}

// OverallChampion returns the player with the most hole wins, or nil when no
// hole produced a winner. Ties keep the first winner encountered in hole
// order.
func OverallChampion(results []Result) *Champion {
	type tally struct {
		name  string
		count int
		holes []int
	}

	wins := map[string]*tally{}
	var order []string

	for _, r := range results {
		if r.WinnerID == "" {
			continue
		}
		t, ok := wins[r.WinnerID]
		if !ok {
			t = &tally{name: r.WinnerName}
			wins[r.WinnerID] = t
			order = append(order, r.WinnerID)
		}
		t.count++
		t.holes = append(t.holes, r.HoleNumber)
	}

	var champion *Champion
	for _, memberID := range order {
		t := wins[memberID]
		if champion == nil || t.count > champion.Wins {
			champion = &Champion{
				MemberID: memberID,
				Name:     t.name,
				Wins:     t.count,
				Holes:    t.holes,
			}
		}
	}

	return champion
}
