package charts

import (
	"math"
	"testing"

	"github.com/AllenLeeyn/graphql/internal/models"
)

func fourSkills() []models.SkillEntry {
	return []models.SkillEntry{
		{Type: "skill_go", Amount: 60},
		{Type: "skill_js", Amount: 40},
		{Type: "skill_html", Amount: 30},
		{Type: "skill_docker", Amount: 20},
	}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestSkillRadar_EqualAngularSectors(t *testing.T) {
	chart, _ := SkillRadar(fourSkills(), Dimensions{Width: 400, Height: 400})

	if len(chart.Lines) != 4 {
		t.Fatalf("Expected 4 spokes, got %d", len(chart.Lines))
	}

	cx, cy := 200.0, 200.0
	expected := [][2]float64{
		{cx + radarMaxRadius, cy},
		{cx, cy + radarMaxRadius},
		{cx - radarMaxRadius, cy},
		{cx, cy - radarMaxRadius},
	}
	for i, spoke := range chart.Lines {
		if !approx(spoke.X2, expected[i][0]) || !approx(spoke.Y2, expected[i][1]) {
			t.Errorf("Spoke %d: expected endpoint (%v,%v), got (%v,%v)",
				i, expected[i][0], expected[i][1], spoke.X2, spoke.Y2)
		}
	}
}

func TestSkillRadar_ReferenceRings(t *testing.T) {
	chart, _ := SkillRadar(fourSkills(), Dimensions{Width: 400, Height: 400})

	if len(chart.Rings) != radarRingCount {
		t.Fatalf("Expected %d rings, got %d", radarRingCount, len(chart.Rings))
	}
	if !approx(chart.Rings[0].R, 10) {
		t.Errorf("Expected innermost ring at radius 10, got %v", chart.Rings[0].R)
	}
	if !approx(chart.Rings[radarRingCount-1].R, radarMaxRadius) {
		t.Errorf("Expected outermost ring at max radius, got %v", chart.Rings[radarRingCount-1].R)
	}
}

func TestSkillRadar_LabelsStripPrefix(t *testing.T) {
	chart, _ := SkillRadar(fourSkills(), Dimensions{Width: 400, Height: 400})

	var names []string
	for _, l := range chart.Labels {
		if l.Fill == "white" {
			names = append(names, l.Text)
		}
	}
	expected := []string{"go", "js", "html", "docker"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d category labels, got %d", len(expected), len(names))
	}
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("Label %d: expected %q, got %q", i, expected[i], name)
		}
	}
}

func TestSkillRadar_PolygonUsesRawAmounts(t *testing.T) {
	chart, _ := SkillRadar(fourSkills(), Dimensions{Width: 400, Height: 400})

	if len(chart.Paths) != 1 {
		t.Fatalf("Expected one outline polygon, got %d", len(chart.Paths))
	}
	outline := chart.Paths[0]
	if !outline.Closed {
		t.Error("Expected the outline polygon to be closed")
	}
	if len(outline.Points) != 4 {
		t.Fatalf("Expected 4 polygon points, got %d", len(outline.Points))
	}
	// First point sits at angle 0, radius = raw amount 60: no normalization.
	if !approx(outline.Points[0].X, 260) || !approx(outline.Points[0].Y, 200) {
		t.Errorf("Expected first polygon point at (260,200), got (%v,%v)",
			outline.Points[0].X, outline.Points[0].Y)
	}
}

func TestSkillRadar_RowsReverseInputOrder(t *testing.T) {
	_, rows := SkillRadar(fourSkills(), Dimensions{Width: 400, Height: 400})

	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	if rows[0].Name != "docker" || rows[3].Name != "go" {
		t.Errorf("Expected reversed row order, got first=%q last=%q", rows[0].Name, rows[3].Name)
	}
}

func TestSkillRadar_Empty(t *testing.T) {
	chart, rows := SkillRadar(nil, Dimensions{Width: 400, Height: 400})
	if len(chart.Rings) != 0 || rows != nil {
		t.Error("Expected empty chart and no rows for no skills")
	}
}
