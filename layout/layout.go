// Package layout computes 2D positions for drawing a core.Graph.
//
// The only algorithm is a Fruchterman–Reingold force-directed layout with
// simulated annealing. Positions are not a compatibility surface: they only
// have to look reasonable. They are, however, reproducible: the initial
// placement comes from seeded OpenSimplex noise and every loop runs in
// ascending NodeID order.
package layout

import (
	"math"

	"github.com/katalvlaran/graphptol/core"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Point is a position in layout space; (0,0) is the top-left corner.
type Point struct {
	X, Y float64
}

// Positions maps every node of a graph to its place.
type Positions map[core.NodeID]Point

// Algorithm is a layout strategy.
type Algorithm interface {
	// Layout returns a position for every node of g.
	Layout(g *core.Graph) Positions
	// Name identifies the algorithm in logs.
	Name() string
}

// Options tunes ForceDirected.
type Options struct {
	Width         float64
	Height        float64
	MaxIterations int
	Seed          int64
	// Threshold stops iterating once the mean displacement per node drops below it.
	Threshold float64
}

// DefaultOptions returns an 800×600 box, 300 iterations, seed 1.
func DefaultOptions() Options {
	return Options{
		Width:         800,
		Height:        600,
		MaxIterations: 300,
		Seed:          1,
		Threshold:     0.01,
	}
}

// ForceDirected implements a Fruchterman-Reingold force-directed layout.
type ForceDirected struct {
	opts        Options
	noise       opensimplex.Noise
	ids         []core.NodeID
	index       map[core.NodeID]int
	edges       [][2]int
	pos         []Point
	disp        []Point
	k           float64 // optimal distance
	temperature float64
	iterations  int
	stable      bool
}

// NewForceDirected creates a layout engine. Non-positive sizes and iteration
// counts fall back to DefaultOptions.
func NewForceDirected(opts Options) *ForceDirected {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = def.MaxIterations
	}
	if opts.Threshold < 0 {
		opts.Threshold = def.Threshold
	}

	return &ForceDirected{opts: opts, noise: opensimplex.New(opts.Seed)}
}

// Name returns the name of the layout algorithm.
func (fd *ForceDirected) Name() string { return "force-directed" }

// Layout runs Initialize and Step until stable or out of iterations.
func (fd *ForceDirected) Layout(g *core.Graph) Positions {
	fd.Initialize(g)
	for !fd.Step() {
	}

	return fd.Positions()
}

// Initialize places every node of g and caches its edges.
func (fd *ForceDirected) Initialize(g *core.Graph) {
	fd.ids = g.Nodes()
	n := len(fd.ids)
	fd.index = make(map[core.NodeID]int, n)
	for i, id := range fd.ids {
		fd.index[id] = i
	}
	fd.edges = fd.edges[:0]
	for _, e := range g.Edges() {
		fd.edges = append(fd.edges, [2]int{fd.index[e.U], fd.index[e.V]})
	}

	fd.pos = make([]Point, n)
	fd.disp = make([]Point, n)
	fd.iterations = 0
	fd.stable = n <= 1
	fd.temperature = math.Min(fd.opts.Width, fd.opts.Height) / 10
	if n > 0 {
		fd.k = math.Sqrt(fd.opts.Width * fd.opts.Height / float64(n))
	}

	cx, cy := fd.opts.Width/2, fd.opts.Height/2
	if n == 1 {
		fd.pos[0] = Point{X: cx, Y: cy}
		return
	}
	for i, id := range fd.ids {
		// Eval2 is roughly in [-1,1]; sample far-apart coordinates so nodes spread.
		t := float64(id)*0.73 + float64(i)*1.91
		nx := fd.noise.Eval2(t, 0.5)
		ny := fd.noise.Eval2(0.5, t+31.7)
		fd.pos[i] = Point{
			X: cx + nx*fd.opts.Width*0.45,
			Y: cy + ny*fd.opts.Height*0.45,
		}
	}
}

// Step performs one iteration; it returns true once the layout is stable.
func (fd *ForceDirected) Step() bool {
	if fd.stable || fd.iterations >= fd.opts.MaxIterations {
		return true
	}
	n := len(fd.pos)
	for i := range fd.disp {
		fd.disp[i] = Point{}
	}

	// repulsion between every pair: k²/d
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := fd.pos[i].X - fd.pos[j].X
			dy := fd.pos[i].Y - fd.pos[j].Y
			d := math.Hypot(dx, dy)
			if d < 0.01 {
				// coincident nodes: push apart along a fixed, index-dependent direction
				angle := float64(i*7+j*13) * 0.618
				dx, dy, d = math.Cos(angle)*0.01, math.Sin(angle)*0.01, 0.01
			}
			f := fd.k * fd.k / d
			fd.disp[i].X += dx / d * f
			fd.disp[i].Y += dy / d * f
			fd.disp[j].X -= dx / d * f
			fd.disp[j].Y -= dy / d * f
		}
	}

	// attraction along edges: d²/k
	for _, e := range fd.edges {
		a, b := e[0], e[1]
		dx := fd.pos[a].X - fd.pos[b].X
		dy := fd.pos[a].Y - fd.pos[b].Y
		d := math.Max(0.01, math.Hypot(dx, dy))
		f := d * d / fd.k
		fd.disp[a].X -= dx / d * f
		fd.disp[a].Y -= dy / d * f
		fd.disp[b].X += dx / d * f
		fd.disp[b].Y += dy / d * f
	}

	// gravity keeps disconnected components on screen
	cx, cy := fd.opts.Width/2, fd.opts.Height/2
	for i := range fd.pos {
		fd.disp[i].X += (cx - fd.pos[i].X) * 0.01 * fd.k / 10
		fd.disp[i].Y += (cy - fd.pos[i].Y) * 0.01 * fd.k / 10
	}

	// move, limited by temperature, and clamp into the box
	padding := math.Min(fd.k*0.5, math.Min(fd.opts.Width, fd.opts.Height)*0.05)
	total := 0.0
	for i := range fd.pos {
		d := math.Hypot(fd.disp[i].X, fd.disp[i].Y)
		if d == 0 {
			continue
		}
		step := math.Min(d, fd.temperature)
		mx, my := fd.disp[i].X/d*step, fd.disp[i].Y/d*step
		fd.pos[i].X = clamp(fd.pos[i].X+mx, padding, fd.opts.Width-padding)
		fd.pos[i].Y = clamp(fd.pos[i].Y+my, padding, fd.opts.Height-padding)
		total += step
	}

	fd.temperature *= 0.95
	fd.iterations++
	fd.stable = total/float64(n) < fd.opts.Threshold

	return fd.stable || fd.iterations >= fd.opts.MaxIterations
}

// Positions returns the current placement.
func (fd *ForceDirected) Positions() Positions {
	out := make(Positions, len(fd.ids))
	for i, id := range fd.ids {
		out[id] = fd.pos[i]
	}

	return out
}

// Iterations reports how many steps the last run took.
func (fd *ForceDirected) Iterations() int { return fd.iterations }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
