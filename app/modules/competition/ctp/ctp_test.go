package ctp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePicksClosest(t *testing.T) {
	cfg := Config{Holes: []int{7}, Unit: UnitFeet}
	measurements := []Measurement{
		{MemberID: "m1", Name: "Alice", HoleNumber: 7, Distance: 12.5, Unit: UnitFeet},
		{MemberID: "m2", Name: "Bob", HoleNumber: 7, Distance: 8.0, Unit: UnitFeet},
		{MemberID: "m3", Name: "Carol", HoleNumber: 7, Distance: 20.0, Unit: UnitFeet},
	}

	results := Calculate(measurements, cfg)

	require.Len(t, results, 1)
	assert.Equal(t, "m2", results[0].WinnerID)
	require.NotNil(t, results[0].Distance)
	assert.Equal(t, 8.0, *results[0].Distance)
	assert.Len(t, results[0].Measurements, 3)
}

func TestCalculateRequireGreenFiltersMisses(t *testing.T) {
	cfg := Config{Holes: []int{3}, Unit: UnitFeet, RequireGreen: true}
	measurements := []Measurement{
		{MemberID: "m1", HoleNumber: 3, Distance: 5.0, OnGreen: false},
		{MemberID: "m2", HoleNumber: 3, Distance: 15.0, OnGreen: true},
	}

	results := Calculate(measurements, cfg)

	require.Len(t, results, 1)
	assert.Equal(t, "m2", results[0].WinnerID, "off-green ball cannot win")
}

func TestCalculateNoQualifyingMeasurements(t *testing.T) {
	cfg := Config{Holes: []int{12}, Unit: UnitFeet, RequireGreen: true}
	measurements := []Measurement{
		{MemberID: "m1", HoleNumber: 12, Distance: 5.0, OnGreen: false},
	}

	results := Calculate(measurements, cfg)

	require.Len(t, results, 1)
	assert.Empty(t, results[0].WinnerID)
	assert.Nil(t, results[0].Distance)
	assert.Len(t, results[0].Measurements, 1, "non-qualifying measurements still appear")
}

func TestUnitConversionRoundTrip(t *testing.T) {
	assert.Equal(t, 120.0, ToInches(10, UnitFeet))
	assert.InDelta(t, 39.3701, ToInches(1, UnitMeters), 0.0001)
	assert.Equal(t, 42.0, ToInches(42, UnitInches))

	assert.Equal(t, 10.0, FromInches(120, UnitFeet))
	assert.InDelta(t, 2.0, FromInches(ToInches(2.0, UnitMeters), UnitMeters), 0.0001)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, `12' 6"`, FormatDistance(12.5, UnitFeet))
	assert.Equal(t, `30"`, FormatDistance(30, UnitInches))
	assert.Equal(t, "3.50m", FormatDistance(3.5, UnitMeters))
}

func TestValidate(t *testing.T) {
	cfg := Config{Holes: []int{7, 12}, Unit: UnitFeet, RequireGreen: true}

	tests := []struct {
		name    string
		m       Measurement
		wantErr string
	}{
		{
			name: "valid measurement",
			m:    Measurement{HoleNumber: 7, Distance: 10, Unit: UnitFeet, OnGreen: true},
		},
		{
			name:    "hole not configured",
			m:       Measurement{HoleNumber: 5, Distance: 10, Unit: UnitFeet, OnGreen: true},
			wantErr: "not configured",
		},
		{
			name:    "off the green",
			m:       Measurement{HoleNumber: 7, Distance: 10, Unit: UnitFeet, OnGreen: false},
			wantErr: "green",
		},
		{
			name:    "negative distance",
			m:       Measurement{HoleNumber: 7, Distance: -1, Unit: UnitFeet, OnGreen: true},
			wantErr: "positive",
		},
		{
			name:    "unrealistic distance",
			m:       Measurement{HoleNumber: 7, Distance: 1000, Unit: UnitFeet, OnGreen: true},
			wantErr: "unrealistic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.m, cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOverallChampion(t *testing.T) {
	results := []Result{
		{HoleNumber: 3, WinnerID: "m1", WinnerName: "Alice"},
		{HoleNumber: 7, WinnerID: "m2", WinnerName: "Bob"},
		{HoleNumber: 12, WinnerID: "m1", WinnerName: "Alice"},
		{HoleNumber: 16},
	}

	champion := OverallChampion(results)

	require.NotNil(t, champion)
	assert.Equal(t, "m1", champion.MemberID)
	assert.Equal(t, 2, champion.Wins)
	assert.Equal(t, []int{3, 12}, champion.Holes)
}

func TestOverallChampionTieKeepsFirstWinner(t *testing.T) {
	results := []Result{
		{HoleNumber: 3, WinnerID: "m2", WinnerName: "Bob"},
		{HoleNumber: 7, WinnerID: "m1", WinnerName: "Alice"},
	}

	champion := OverallChampion(results)

	require.NotNil(t, champion)
	assert.Equal(t, "m2", champion.MemberID)
}

func TestOverallChampionNoWinners(t *testing.T) {
	assert.Nil(t, OverallChampion([]Result{{HoleNumber: 3}}))
	assert.Nil(t, OverallChampion(nil))
}
