package leagueservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// chartMaxBars caps the standings chart at the leaders; a full league season
// does not fit legibly in one image.
const chartMaxBars = 12

// RenderStandingsChart produces a PNG bar chart of a season's points leaders.
func (s *LeagueService) RenderStandingsChart(ctx context.Context, seasonID uuid.UUID) ([]byte, error) {
	table, err := s.GetSeasonStandings(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return renderNoDataPlaceholder("No standings recorded yet")
	}

	bars := make([]chart.Value, 0, chartMaxBars)
	for _, st := range table {
		if !st.Eligible {
			continue
		}
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%d. %s", st.Position, st.Name),
			Value: float64(st.TotalPoints),
		})
		if len(bars) == chartMaxBars {
			break
		}
	}
	if len(bars) == 0 {
		return renderNoDataPlaceholder("No eligible players yet")
	}

	graph := chart.BarChart{
		Title:    "Season Standings",
		Width:    900,
		Height:   450,
		BarWidth: 48,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
		XAxis: chart.Style{
			FontSize: 9,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render standings chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(msg string) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(drawing.ColorBlack)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
