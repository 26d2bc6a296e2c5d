package charts

import (
	"math"
	"strconv"

	"github.com/AllenLeeyn/graphql/internal/models"
)

const (
	radarMaxRadius = 100
	radarRingCount = 10
)

// SkillRadar divides the full circle into one sector per skill and plots the
// raw amount as a radius. Amounts are deliberately not normalized against the
// ring scale, so a skill above 100 lands outside the reference rings.
func SkillRadar(skills []models.SkillEntry, dims Dimensions) (Chart, []models.SkillRow) {
	chart := Chart{Width: dims.Width, Height: dims.Height}
	if len(skills) == 0 {
		return chart, nil
	}

	centerX := dims.Width / 2
	centerY := dims.Height / 2
	ringStep := float64(radarMaxRadius) / radarRingCount

	for r := ringStep; r <= radarMaxRadius; r += ringStep {
		chart.Rings = append(chart.Rings, Ring{CX: centerX, CY: centerY, R: r, Stroke: "white"})
	}

	angleStep := 2 * math.Pi / float64(len(skills))
	outline := Path{Stroke: colorAccent, Fill: colorAccent, Closed: true}
	rows := make([]models.SkillRow, 0, len(skills))

	for i, s := range skills {
		angle := angleStep * float64(i)

		spokeX, spokeY := polar(centerX, centerY, radarMaxRadius, angle)
		chart.Lines = append(chart.Lines, Connector{X1: centerX, Y1: centerY, X2: spokeX, Y2: spokeY, Stroke: "white", Width: 1})

		labelX, labelY := polar(centerX, centerY, radarMaxRadius+20, angle)
		chart.Labels = append(chart.Labels,
			Label{X: labelX, Y: labelY, Fill: "white", Size: 10, Text: stripSkill(s.Type), Anchor: "middle"},
			Label{X: labelX, Y: labelY + 10, Fill: colorAccent, Size: 10, Text: strconv.Itoa(s.Amount), Anchor: "middle"},
		)

		px, py := polar(centerX, centerY, float64(s.Amount), angle)
		outline.Points = append(outline.Points, Coord{X: px, Y: py})

		rows = append(rows, models.SkillRow{Name: stripSkill(s.Type), Amount: s.Amount})
	}
	chart.Paths = append(chart.Paths, outline)

	// Table rows list the last-earned skill first.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return chart, rows
}

func polar(cx, cy, radius, angle float64) (float64, float64) {
	return cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)
}
