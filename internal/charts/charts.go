// Package charts turns fetched profile data into drawing primitives. Every
// renderer is a pure function of its input data and the container dimensions;
// encoding the primitives to SVG lives elsewhere.
package charts

import (
	"strings"
	"time"
)

// Dimensions of the target container in pixels.
type Dimensions struct {
	Width  float64
	Height float64
}

type Coord struct {
	X float64
	Y float64
}

// Point is a filled circle, optionally carrying hover-tooltip text.
type Point struct {
	X, Y, R float64
	Fill    string
	Tooltip string
}

type Label struct {
	X, Y   float64
	Fill   string
	Size   int
	Text   string
	Anchor string // "", "middle" or "end"
}

// Connector is a straight line segment.
type Connector struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	Width          float64
	Dashed         bool
}

type Rect struct {
	X, Y, W, H float64
	Fill       string
}

// Ring is an unfilled reference circle.
type Ring struct {
	CX, CY, R float64
	Stroke    string
}

// Path is a polyline through ordered points; Closed reconnects the last point
// to the first.
type Path struct {
	Points []Coord
	Stroke string
	Fill   string
	Closed bool
}

// Chart is the full primitive set for one container, drawn back to front in
// field order.
type Chart struct {
	Width, Height float64
	Rings         []Ring
	Lines         []Connector
	Rects         []Rect
	Paths         []Path
	Points        []Point
	Labels        []Label
}

const (
	curriculumPrefix = "/gritlab/school-curriculum/"
	skillPrefix      = "skill_"

	colorAccent     = "#b77ac7"
	colorAccentDark = "#975aa7"
)

func stripCurriculum(path string) string {
	return strings.Replace(path, curriculumPrefix, "", 1)
}

func stripSkill(category string) string {
	return strings.Replace(category, skillPrefix, "", 1)
}

func lastSegment(path string) string {
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}

func formatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// scale maps v from [min,max] onto [lo,hi]. A degenerate domain collapses to
// lo instead of dividing by zero.
func scale(v, min, max, lo, hi float64) float64 {
	if max == min {
		return lo
	}
	return lo + (hi-lo)*(v-min)/(max-min)
}
