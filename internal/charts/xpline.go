package charts

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenLeeyn/graphql/internal/models"
)

const xpMargin = 50

// XPLine draws the cumulative XP curve: entries ordered by creation time, a
// running sum mapped onto an inverted y scale, gridline labels, one point per
// entry and a connecting polyline. It also returns the side-table rows,
// newest first, with a trailing TOTAL row.
func XPLine(entries []models.XPEntry, dims Dimensions) (Chart, []models.XPRow) {
	chart := Chart{Width: dims.Width, Height: dims.Height}
	if len(entries) == 0 {
		return chart, nil
	}

	sorted := make([]models.XPEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })

	// Derived view: the fetched entries stay untouched.
	cumulative := make([]int, len(sorted))
	running := 0
	for i, e := range sorted {
		running += e.Amount
		cumulative[i] = running
	}

	minT := float64(sorted[0].CreatedAt.UnixMilli())
	maxT := float64(sorted[len(sorted)-1].CreatedAt.UnixMilli())
	minXP := float64(cumulative[0])
	maxXP := float64(cumulative[len(cumulative)-1])

	xOf := func(t time.Time) float64 {
		return scale(float64(t.UnixMilli()), minT, maxT, xpMargin, dims.Width-xpMargin)
	}
	yOf := func(v float64) float64 {
		return scale(v, minXP, maxXP, dims.Height-xpMargin, xpMargin)
	}

	// Vertical axis with five evenly spaced gridline labels over [minXP,maxXP].
	chart.Lines = append(chart.Lines, Connector{
		X1: xpMargin, Y1: xpMargin,
		X2: xpMargin, Y2: dims.Height - xpMargin,
		Stroke: "white", Width: 1,
	})
	step := (maxXP - minXP) / 5
	for i := 0; i <= 5; i++ {
		value := maxXP - float64(i)*step
		chart.Labels = append(chart.Labels, Label{
			X: xpMargin - 10, Y: yOf(value),
			Fill: "white", Size: 10,
			Text:   fmt.Sprintf("%.0f", value),
			Anchor: "end",
		})
	}

	// Horizontal axis with start and end dates.
	chart.Lines = append(chart.Lines, Connector{
		X1: xpMargin, Y1: dims.Height - xpMargin,
		X2: dims.Width - xpMargin, Y2: dims.Height - xpMargin,
		Stroke: "white", Width: 1,
	})
	chart.Labels = append(chart.Labels,
		Label{X: xpMargin, Y: dims.Height - xpMargin + 15, Fill: "white", Size: 10, Text: formatDate(sorted[0].CreatedAt)},
		Label{X: dims.Width - xpMargin, Y: dims.Height - xpMargin + 15, Fill: "white", Size: 10, Text: formatDate(sorted[len(sorted)-1].CreatedAt)},
	)

	line := Path{Stroke: colorAccent}
	rows := make([]models.XPRow, 0, len(sorted)+1)
	for i, e := range sorted {
		x, y := xOf(e.CreatedAt), yOf(float64(cumulative[i]))
		line.Points = append(line.Points, Coord{X: x, Y: y})
		chart.Points = append(chart.Points, Point{X: x, Y: y, R: 2, Fill: colorAccent})
		rows = append(rows, models.XPRow{
			Path:   stripCurriculum(e.Path),
			Amount: fmt.Sprintf("%d xp", e.Amount),
			Date:   formatDate(e.CreatedAt),
		})
	}
	chart.Paths = append(chart.Paths, line)

	// Newest first, then the synthetic total.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	rows = append(rows, models.XPRow{
		Path:   "TOTAL",
		Amount: fmt.Sprintf("%d xp", running),
		Date:   formatDate(time.Now()),
	})

	return chart, rows
}
