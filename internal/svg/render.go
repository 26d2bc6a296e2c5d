// Package svg encodes chart primitives as standalone SVG documents.
package svg

import (
	"bytes"
	"fmt"
	"strings"

	svgo "github.com/ajstarks/svgo/float"

	"github.com/AllenLeeyn/graphql/internal/charts"
)

// Render draws a chart's primitives back to front: rings, lines, rects,
// paths, points, labels. Points carrying tooltip text are wrapped in a group
// with a title element so hovering reveals the team list.
func Render(chart charts.Chart) string {
	var buf bytes.Buffer
	canvas := svgo.New(&buf)
	canvas.Start(chart.Width, chart.Height)

	for _, ring := range chart.Rings {
		canvas.Circle(ring.CX, ring.CY, ring.R,
			`fill="transparent"`, fmt.Sprintf(`stroke="%s"`, ring.Stroke))
	}

	for _, line := range chart.Lines {
		attrs := []string{
			fmt.Sprintf(`stroke="%s"`, line.Stroke),
			fmt.Sprintf(`stroke-width="%v"`, line.Width),
		}
		if line.Dashed {
			attrs = append(attrs, `stroke-dasharray="4,4"`)
		}
		canvas.Line(line.X1, line.Y1, line.X2, line.Y2, attrs...)
	}

	for _, rect := range chart.Rects {
		canvas.Rect(rect.X, rect.Y, rect.W, rect.H, fmt.Sprintf(`fill="%s"`, rect.Fill))
	}

	for _, path := range chart.Paths {
		if len(path.Points) == 0 {
			continue
		}
		fill := path.Fill
		if fill == "" {
			fill = "transparent"
		}
		canvas.Path(pathData(path),
			fmt.Sprintf(`fill="%s"`, fill),
			fmt.Sprintf(`stroke="%s"`, path.Stroke),
			`stroke-width="1"`)
	}

	for _, point := range chart.Points {
		fill := fmt.Sprintf(`fill="%s"`, point.Fill)
		if point.Tooltip == "" {
			canvas.Circle(point.X, point.Y, point.R, fill)
			continue
		}
		canvas.Group()
		canvas.Title(point.Tooltip)
		canvas.Circle(point.X, point.Y, point.R, fill)
		canvas.Gend()
	}

	for _, label := range chart.Labels {
		attrs := []string{
			fmt.Sprintf(`fill="%s"`, label.Fill),
			fmt.Sprintf(`font-size="%d"`, label.Size),
		}
		if label.Anchor != "" {
			attrs = append(attrs, fmt.Sprintf(`text-anchor="%s"`, label.Anchor))
		}
		canvas.Text(label.X, label.Y, label.Text, attrs...)
	}

	canvas.End()
	return buf.String()
}

// pathData joins the ordered points with straight segments; closed outlines
// get an explicit Z back to the first point.
func pathData(p charts.Path) string {
	var b strings.Builder
	for i, pt := range p.Points {
		if i == 0 {
			fmt.Fprintf(&b, "M %v %v", pt.X, pt.Y)
		} else {
			fmt.Fprintf(&b, " L %v %v", pt.X, pt.Y)
		}
	}
	if p.Closed {
		b.WriteString(" Z")
	}
	return b.String()
}
