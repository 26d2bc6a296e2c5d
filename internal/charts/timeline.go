package charts

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/AllenLeeyn/graphql/internal/models"
)

const (
	timelineHeight = 650
	timelineTop    = 20
)

// Timeline plots completed and in-progress work on a shared vertical time
// axis. The scale spans the completed range; in-progress items reuse it so
// both kinds of point line up chronologically. Completed and in-progress
// items differ only in color.
func Timeline(completed []models.CompletedItem, wip []models.ProgressItem, dims Dimensions) Chart {
	chart := Chart{Width: dims.Width, Height: dims.Height}
	centerX := dims.Width / 2

	sorted := make([]models.CompletedItem, len(completed))
	copy(sorted, completed)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })

	var minT, maxT time.Time
	switch {
	case len(sorted) > 0:
		minT, maxT = sorted[0].CreatedAt, sorted[len(sorted)-1].CreatedAt
	case len(wip) > 0:
		// No graded work yet; the wip list is already ascending.
		minT, maxT = wip[0].CreatedAt, wip[len(wip)-1].CreatedAt
	default:
		return chart
	}

	chart.Lines = append(chart.Lines, Connector{
		X1: centerX, Y1: timelineTop,
		X2: centerX, Y2: timelineTop + timelineHeight,
		Stroke: colorAccent, Width: 1, Dashed: true,
	})

	for i, prj := range sorted {
		addTimelineItem(&chart, centerX, minT, maxT, i, prj.CreatedAt, prj.Path, prj.Group, colorAccent, "palegreen")
	}
	for i, prj := range wip {
		addTimelineItem(&chart, centerX, minT, maxT, i, prj.CreatedAt, prj.Path, prj.Group, "red", "pink")
	}

	return chart
}

func addTimelineItem(chart *Chart, centerX float64, minT, maxT time.Time, index int, createdAt time.Time, path string, group *models.Group, pointColor, textColor string) {
	y := scale(float64(createdAt.UnixMilli()),
		float64(minT.UnixMilli()), float64(maxT.UnixMilli()),
		timelineTop, timelineTop+timelineHeight)

	chart.Points = append(chart.Points, Point{
		X: centerX, Y: y, R: 3,
		Fill:    pointColor,
		Tooltip: "Team: " + strings.Join(group.Teammates(), ", "),
	})

	label := Label{
		X: centerX + 10, Y: y + 5,
		Fill: textColor, Size: 12,
		Text: fmt.Sprintf("[%s] %s", formatDate(createdAt), lastSegment(path)),
	}
	if index%2 != 0 {
		label.X = centerX - 10
		label.Anchor = "end"
	}
	chart.Labels = append(chart.Labels, label)
}
