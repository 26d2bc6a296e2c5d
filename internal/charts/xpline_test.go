package charts

import (
	"fmt"
	"testing"

	"github.com/AllenLeeyn/graphql/internal/models"
)

func xpEntries() []models.XPEntry {
	return []models.XPEntry{
		{Path: "/gritlab/school-curriculum/c-piscine/ex00", Amount: 100, CreatedAt: day(0)},
		{Path: "/gritlab/school-curriculum/go-reloaded", Amount: 250, CreatedAt: day(3)},
		{Path: "/gritlab/school-curriculum/ascii-art", Amount: 150, CreatedAt: day(7)},
	}
}

func TestXPLine_CumulativeIsMonotonicAndSums(t *testing.T) {
	chart, rows := XPLine(xpEntries(), Dimensions{Width: 800, Height: 600})

	if len(chart.Paths) != 1 {
		t.Fatalf("Expected one polyline, got %d", len(chart.Paths))
	}
	points := chart.Paths[0].Points
	if len(points) != 3 {
		t.Fatalf("Expected 3 path points, got %d", len(points))
	}
	// Higher cumulative XP renders higher on screen, so y never increases.
	for i := 1; i < len(points); i++ {
		if points[i].Y > points[i-1].Y {
			t.Errorf("Expected non-increasing y, got %v after %v", points[i].Y, points[i-1].Y)
		}
		if points[i].X <= points[i-1].X {
			t.Errorf("Expected strictly increasing x, got %v after %v", points[i].X, points[i-1].X)
		}
	}

	total := rows[len(rows)-1]
	if total.Path != "TOTAL" {
		t.Fatalf("Expected trailing TOTAL row, got %q", total.Path)
	}
	if total.Amount != "500 xp" {
		t.Errorf("Expected total of 500 xp, got %q", total.Amount)
	}
}

func TestXPLine_ScaleEndpoints(t *testing.T) {
	chart, _ := XPLine(xpEntries(), Dimensions{Width: 800, Height: 600})

	points := chart.Paths[0].Points
	first, last := points[0], points[len(points)-1]

	if first.X != xpMargin {
		t.Errorf("Expected first point at left margin %d, got %v", xpMargin, first.X)
	}
	if last.X != 800-xpMargin {
		t.Errorf("Expected last point at right margin %v, got %v", 800-xpMargin, last.X)
	}
	if first.Y != 600-xpMargin {
		t.Errorf("Expected first cumulative value on the bottom edge %v, got %v", 600-xpMargin, first.Y)
	}
	if last.Y != xpMargin {
		t.Errorf("Expected final cumulative value on the top edge %d, got %v", xpMargin, last.Y)
	}
}

func TestXPLine_GridlineLabels(t *testing.T) {
	chart, _ := XPLine(xpEntries(), Dimensions{Width: 800, Height: 600})

	var gridLabels []Label
	for _, l := range chart.Labels {
		if l.Anchor == "end" && l.X == xpMargin-10 {
			gridLabels = append(gridLabels, l)
		}
	}
	if len(gridLabels) != 6 {
		t.Fatalf("Expected 6 gridline labels spanning the range, got %d", len(gridLabels))
	}
	if gridLabels[0].Text != "500" {
		t.Errorf("Expected top gridline label '500', got %q", gridLabels[0].Text)
	}
	if gridLabels[5].Text != "100" {
		t.Errorf("Expected bottom gridline label '100', got %q", gridLabels[5].Text)
	}
}

func TestXPLine_RowsNewestFirstWithStrippedPrefix(t *testing.T) {
	_, rows := XPLine(xpEntries(), Dimensions{Width: 800, Height: 600})

	if len(rows) != 4 {
		t.Fatalf("Expected 3 entry rows plus TOTAL, got %d", len(rows))
	}
	if rows[0].Path != "ascii-art" {
		t.Errorf("Expected newest entry first, got %q", rows[0].Path)
	}
	if rows[2].Path != "c-piscine/ex00" {
		t.Errorf("Expected prefix-stripped path 'c-piscine/ex00', got %q", rows[2].Path)
	}
	if rows[2].Amount != "100 xp" {
		t.Errorf("Expected formatted amount '100 xp', got %q", rows[2].Amount)
	}
	if rows[2].Date != "1/1/2024" {
		t.Errorf("Expected formatted date '1/1/2024', got %q", rows[2].Date)
	}
}

func TestXPLine_FinalCumulativeEqualsArithmeticSum(t *testing.T) {
	entries := make([]models.XPEntry, 20)
	sum := 0
	for i := range entries {
		amount := (i * 37) % 500
		sum += amount
		entries[i] = models.XPEntry{Path: "/p", Amount: amount, CreatedAt: day(i)}
	}

	_, rows := XPLine(entries, Dimensions{Width: 800, Height: 600})

	total := rows[len(rows)-1]
	if want := fmt.Sprintf("%d xp", sum); total.Amount != want {
		t.Errorf("Expected total %q, got %q", want, total.Amount)
	}
}

func TestXPLine_EmptyEntries(t *testing.T) {
	chart, rows := XPLine(nil, Dimensions{Width: 800, Height: 600})
	if len(chart.Paths) != 0 || rows != nil {
		t.Error("Expected empty chart and no rows for empty input")
	}
}
