package charts

import (
	"fmt"
	"math"
	"strconv"

	"github.com/AllenLeeyn/graphql/internal/models"
)

const (
	ratioBarThickness = 50
	ratioRightGutter  = 250
)

// RatioBar renders the audit up/down comparison: an "up" bar with its bonus
// stacked immediately after it, a "down" bar below, and the large numeric
// ratio. Widths share one scale against max(totalUp, totalDown). It also
// returns one row per audit entry.
func RatioBar(user models.UserProfile, audits []models.AuditEntry, dims Dimensions) (Chart, []models.AuditRow) {
	chart := Chart{Width: dims.Width, Height: dims.Height}

	maxValue := math.Max(user.TotalUp, user.TotalDown)
	chartWidth := dims.Width - ratioRightGutter

	if maxValue > 0 {
		upWidth := user.TotalUp / maxValue * chartWidth
		chart.Rects = append(chart.Rects, Rect{X: 10, Y: 30, W: upWidth, H: ratioBarThickness, Fill: "white"})
		chart.Labels = append(chart.Labels, Label{X: 25, Y: 66, Fill: colorAccentDark, Size: 32, Text: formatTotal(user.TotalUp)})

		bonusWidth := user.TotalUpBonus / maxValue * chartWidth
		chart.Rects = append(chart.Rects, Rect{X: 10 + upWidth, Y: 30, W: bonusWidth, H: ratioBarThickness, Fill: colorAccentDark})
		chart.Labels = append(chart.Labels, Label{X: upWidth, Y: 62, Fill: colorAccentDark, Size: 16, Text: formatTotal(user.TotalUpBonus), Anchor: "end"})

		downWidth := user.TotalDown / maxValue * chartWidth
		chart.Rects = append(chart.Rects, Rect{X: 10, Y: 80, W: downWidth, H: ratioBarThickness, Fill: colorAccentDark})
		chart.Labels = append(chart.Labels, Label{X: 25, Y: 116, Fill: "white", Size: 32, Text: formatTotal(user.TotalDown)})
	}

	chart.Labels = append(chart.Labels,
		Label{X: chartWidth + 30, Y: 45, Fill: "gold", Size: 20, Text: "ratio"},
		Label{X: chartWidth + 30, Y: 110, Fill: "gold", Size: 72, Text: RatioText(user.TotalUp, user.TotalDown)},
	)

	rows := make([]models.AuditRow, 0, len(audits))
	for _, a := range audits {
		rows = append(rows, models.AuditRow{
			AuditID: strconv.FormatInt(a.Attrs.AuditID, 10),
			Type:    a.Type,
			Path:    stripCurriculum(a.Path),
			Amount:  a.Amount,
			Down:    a.Type == "down",
		})
	}

	return chart, rows
}

// RatioText formats totalUp/totalDown to three decimals. A zero denominator
// renders a dash sentinel instead of dividing.
func RatioText(totalUp, totalDown float64) string {
	if totalDown == 0 {
		return "—"
	}
	return fmt.Sprintf("%.3f", totalUp/totalDown)
}

func formatTotal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
