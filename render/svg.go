package render

import (
	"bufio"
	"fmt"
	"io"
)

// SVGRenderer outputs a standalone SVG document.
type SVGRenderer struct{}

// Name returns the name of the renderer.
func (r *SVGRenderer) Name() string { return "svg" }

// Render draws edges first, then nodes, then labels.
func (r *SVGRenderer) Render(w io.Writer, s Scene, opts Options) error {
	if err := s.validate(); err != nil {
		return err
	}
	pathNodes, pathEdges := s.onPath()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background)

	for _, e := range s.Graph.Edges() {
		a, b := s.Positions[e.U], s.Positions[e.V]
		color, width := opts.EdgeColor, 1.0
		if pathEdges[e] {
			color, width = opts.PathColor, 2.5
		}
		fmt.Fprintf(bw, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f"/>
`, a.X, a.Y, b.X, b.Y, color, width)
	}

	for _, id := range s.Graph.Nodes() {
		p := s.Positions[id]
		color := opts.NodeColor
		if pathNodes[id] {
			color = opts.PathColor
		}
		fmt.Fprintf(bw, `<circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s" stroke="rgba(0,0,0,0.3)" stroke-width="0.5"/>
`, p.X, p.Y, opts.NodeRadius, color)
		if opts.ShowLabels {
			fmt.Fprintf(bw, `<text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.0f" fill="#ffffff" text-anchor="middle" dominant-baseline="central">%d</text>
`, p.X, p.Y, opts.FontSize, id)
		}
	}

	bw.WriteString("</svg>\n")

	return bw.Flush()
}
