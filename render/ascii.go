package render

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/graphptol/core"
)

const (
	glyphNode     = 'o'
	glyphPathNode = '*'
	glyphEdge     = '.'
	glyphPathEdge = '#'
)

// ASCIIRenderer draws the scene on a character grid.
// Path nodes are '*', other nodes 'o'; path edges are drawn with '#'.
// Each node is followed by its ID when there is room.
type ASCIIRenderer struct{}

// Name returns the name of the renderer.
func (r *ASCIIRenderer) Name() string { return "ascii" }

// Render writes the grid followed by a one-line legend.
func (r *ASCIIRenderer) Render(w io.Writer, s Scene, opts Options) error {
	if err := s.validate(); err != nil {
		return err
	}
	width := max(opts.ASCIIWidth, 10)
	height := max(opts.ASCIIHeight, 5)
	pathNodes, pathEdges := s.onPath()

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	for i := 0; i < width; i++ {
		grid[0][i] = '-'
		grid[height-1][i] = '-'
	}
	for i := 0; i < height; i++ {
		grid[i][0] = '|'
		grid[i][width-1] = '|'
	}
	grid[0][0], grid[0][width-1] = '+', '+'
	grid[height-1][0], grid[height-1][width-1] = '+', '+'

	cell := func(id core.NodeID) (int, int) {
		p := s.Positions[id]
		x := int(p.X*float64(width-2)/opts.Width) + 1
		y := int(p.Y*float64(height-2)/opts.Height) + 1

		return clampInt(x, 1, width-2), clampInt(y, 1, height-2)
	}

	// plain edges first so path edges win where they cross
	edges := s.Graph.Edges()
	for _, onPath := range []bool{false, true} {
		for _, e := range edges {
			if pathEdges[e] != onPath {
				continue
			}
			glyph := glyphEdge
			if onPath {
				glyph = glyphPathEdge
			}
			x1, y1 := cell(e.U)
			x2, y2 := cell(e.V)
			drawLine(grid, x1, y1, x2, y2, glyph)
		}
	}

	nodes := s.Graph.Nodes()
	for _, id := range nodes {
		x, y := cell(id)
		grid[y][x] = glyphNode
		if pathNodes[id] {
			grid[y][x] = glyphPathNode
		}
	}
	if opts.ShowLabels {
		for _, id := range nodes {
			x, y := cell(id)
			label := strconv.Itoa(int(id))
			if x+len(label) >= width-1 {
				continue
			}
			free := true
			for i := range label {
				if c := grid[y][x+1+i]; c == glyphNode || c == glyphPathNode {
					free = false
					break
				}
			}
			if free {
				for i, c := range label {
					grid[y][x+1+i] = c
				}
			}
		}
	}

	bw := bufio.NewWriter(w)
	for _, row := range grid {
		bw.WriteString(string(row))
		bw.WriteByte('\n')
	}
	bw.WriteString("o node  * path node  # path edge\n")

	return bw.Flush()
}

// drawLine plots a Bresenham line, leaving node glyphs untouched.
func drawLine(grid [][]rune, x1, y1, x2, y2 int, glyph rune) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}
	e := dx + dy

	for {
		if c := grid[y1][x1]; c != glyphNode && c != glyphPathNode {
			grid[y1][x1] = glyph
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
