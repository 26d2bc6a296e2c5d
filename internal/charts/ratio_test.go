package charts

import (
	"testing"

	"github.com/AllenLeeyn/graphql/internal/models"
)

func TestRatioBar_ScalesAgainstLargerTotal(t *testing.T) {
	user := models.UserProfile{TotalUp: 100, TotalUpBonus: 20, TotalDown: 50}

	chart, _ := RatioBar(user, nil, Dimensions{Width: 850, Height: 200})

	if len(chart.Rects) != 3 {
		t.Fatalf("Expected 3 bars, got %d", len(chart.Rects))
	}

	chartWidth := 850.0 - ratioRightGutter
	up, bonus, down := chart.Rects[0], chart.Rects[1], chart.Rects[2]

	if up.W != chartWidth {
		t.Errorf("Expected up bar at full chart width %v, got %v", chartWidth, up.W)
	}
	if down.W != chartWidth/2 {
		t.Errorf("Expected down bar at half chart width %v, got %v", chartWidth/2, down.W)
	}
	if bonus.X != up.X+up.W {
		t.Errorf("Expected bonus bar stacked after the up bar, got x=%v", bonus.X)
	}
	if bonus.W != 0.2*chartWidth {
		t.Errorf("Expected bonus width %v, got %v", 0.2*chartWidth, bonus.W)
	}
	if down.Y <= up.Y {
		t.Error("Expected down bar below the up bar")
	}
}

func TestRatioBar_RatioLabel(t *testing.T) {
	user := models.UserProfile{TotalUp: 100, TotalUpBonus: 20, TotalDown: 50}

	chart, _ := RatioBar(user, nil, Dimensions{Width: 850, Height: 200})

	last := chart.Labels[len(chart.Labels)-1]
	if last.Text != "2.000" {
		t.Errorf("Expected ratio label '2.000', got %q", last.Text)
	}
}

func TestRatioText(t *testing.T) {
	tests := []struct {
		name     string
		up, down float64
		expected string
	}{
		{"even division", 100, 50, "2.000"},
		{"rounds to 3 decimals", 1, 3, "0.333"},
		{"zero down uses sentinel", 100, 0, "—"},
		{"zero up", 0, 50, "0.000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RatioText(tc.up, tc.down); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestRatioBar_ZeroTotalsDrawNoBars(t *testing.T) {
	chart, _ := RatioBar(models.UserProfile{}, nil, Dimensions{Width: 850, Height: 200})
	if len(chart.Rects) != 0 {
		t.Errorf("Expected no bars for zero totals, got %d", len(chart.Rects))
	}
}

func TestRatioBar_AuditRows(t *testing.T) {
	audits := []models.AuditEntry{
		{Attrs: models.AuditAttrs{AuditID: 42}, Type: "up", Path: "/gritlab/school-curriculum/go-reloaded", Amount: 70000, CreatedAt: day(1)},
		{Attrs: models.AuditAttrs{AuditID: 43}, Type: "down", Path: "/gritlab/school-curriculum/ascii-art", Amount: 35000, CreatedAt: day(0)},
	}

	_, rows := RatioBar(models.UserProfile{TotalUp: 1, TotalDown: 1}, audits, Dimensions{Width: 850, Height: 200})

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].AuditID != "42" || rows[0].Down {
		t.Errorf("Unexpected up row: %+v", rows[0])
	}
	if rows[1].Path != "ascii-art" {
		t.Errorf("Expected stripped path 'ascii-art', got %q", rows[1].Path)
	}
	if !rows[1].Down {
		t.Error("Expected down row to be flagged")
	}
}
