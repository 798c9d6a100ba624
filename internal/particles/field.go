package particles

import (
	"math"
	"math/rand/v2"
)

// Stats summarizes the field after the most recent frame.
type Stats struct {
	Nodes  int
	Links  int
	Frames int
}

// Field owns one instance of the simulation. It is not safe for concurrent
// use; the host drives it from a single goroutine.
type Field struct {
	opts    Options
	rng     *rand.Rand
	nodes   []Node
	pointer Pointer

	width, height float64
	ratio         float64
	link, radius  float64

	stats Stats
}

// NewField creates an empty field. Nodes are created by the first Resize.
// A nil rng uses a randomly seeded source.
func NewField(opts Options, rng *rand.Rand) (*Field, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{
		opts:   opts,
		rng:    rng,
		ratio:  1,
		link:   opts.LinkWide,
		radius: opts.RadiusWide,
	}, nil
}

func (f *Field) Options() Options { return f.opts }

// Resize sets the viewport, recomputes the breakpoint-dependent radii and
// regenerates every node.
func (f *Field) Resize(width, height, pixelRatio float64) {
	f.width = math.Max(width, 0)
	f.height = math.Max(height, 0)
	if pixelRatio <= 0 || math.IsNaN(pixelRatio) {
		pixelRatio = 1
	}
	f.ratio = math.Min(pixelRatio, f.opts.MaxPixelRatio)
	f.link = f.opts.LinkDistance(f.width)
	f.radius = f.opts.InteractionRadius(f.width)
	f.nodes = f.spawn(f.opts.NodeCount(f.width, f.height))
	f.stats.Nodes = len(f.nodes)
	f.stats.Links = 0
}

func (f *Field) spawn(count int) []Node {
	nodes := make([]Node, count)
	for i := range nodes {
		nodes[i] = Node{
			X:    f.uniform(0, f.width),
			Y:    f.uniform(0, f.height),
			VX:   f.uniform(-f.opts.SpeedRange, f.opts.SpeedRange),
			VY:   f.uniform(-f.opts.SpeedRange, f.opts.SpeedRange),
			Size: f.uniform(f.opts.SizeMin, f.opts.SizeMax),
		}
	}
	return nodes
}

func (f *Field) uniform(min, max float64) float64 {
	return min + f.rng.Float64()*(max-min)
}

func (f *Field) Viewport() (width, height float64) { return f.width, f.height }

// BackingSize is the device-pixel size of the drawing buffer.
func (f *Field) BackingSize() (int, int) {
	return int(math.Floor(f.width * f.ratio)), int(math.Floor(f.height * f.ratio))
}

func (f *Field) PixelRatio() float64        { return f.ratio }
func (f *Field) LinkDistance() float64      { return f.link }
func (f *Field) InteractionRadius() float64 { return f.radius }
func (f *Field) Pointer() Pointer           { return f.pointer }
func (f *Field) Stats() Stats               { return f.stats }

// Nodes returns the live node slice. Callers must not retain it across a
// Resize.
func (f *Field) Nodes() []Node { return f.nodes }

func (f *Field) PointerMove(x, y float64) {
	f.pointer = Pointer{X: x, Y: y, Active: true}
}

func (f *Field) PointerLeave() {
	f.pointer.Active = false
}

// Frame renders one animation frame onto s.
func (f *Field) Frame(s Surface) {
	s.Gradient(BackgroundFrom, BackgroundTo)
	f.Update()
	f.drawLinks(s)
	f.drawNodes(s)
	f.stats.Frames++
}

// Update advances every node by one tick.
func (f *Field) Update() {
	p := f.pointer
	for i := range f.nodes {
		n := &f.nodes[i]
		n.X += n.VX
		n.Y += n.VY

		if n.X <= 0 || n.X >= f.width {
			n.VX = -n.VX
			n.X = clamp(n.X, 0, f.width)
		}
		if n.Y <= 0 || n.Y >= f.height {
			n.VY = -n.VY
			n.Y = clamp(n.Y, 0, f.height)
		}

		if !p.Active {
			continue
		}
		dx := n.X - p.X
		dy := n.Y - p.Y
		d := math.Hypot(dx, dy)
		push := Repulsion(d, f.radius, f.opts.RepelStrength)
		if push == 0 {
			continue
		}
		// displacement only; velocity is untouched
		n.X = clamp(n.X+dx/d*push, 0, f.width)
		n.Y = clamp(n.Y+dy/d*push, 0, f.height)
	}
}

func (f *Field) pointerDistance(n *Node) float64 {
	return math.Hypot(n.X-f.pointer.X, n.Y-f.pointer.Y)
}

func (f *Field) drawLinks(s Surface) {
	links := 0
	for i := 0; i < len(f.nodes); i++ {
		a := &f.nodes[i]
		for j := i + 1; j < len(f.nodes); j++ {
			b := &f.nodes[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d > f.link {
				continue
			}

			boost := 0.0
			if f.pointer.Active {
				nearest := math.Min(f.pointerDistance(a), f.pointerDistance(b))
				if nearest < f.radius {
					boost = (1 - nearest/f.radius) * f.opts.PointerBoost
				}
			}

			alpha := math.Min(LinkAlpha(d, f.link, f.opts.LinkAlpha)+boost, f.opts.MaxLinkAlpha)
			if alpha <= f.opts.MinLinkAlpha {
				continue
			}
			s.Line(a.X, a.Y, b.X, b.Y, 0.6+boost*1.4, withAlpha(LinkColor, alpha))
			links++
		}
	}
	f.stats.Links = links
}

func (f *Field) drawNodes(s Surface) {
	for i := range f.nodes {
		n := &f.nodes[i]
		h := 0.0
		if f.pointer.Active {
			h = Highlight(f.pointerDistance(n), f.radius, true)
		}
		s.Circle(n.X, n.Y, n.Size+h*1.3, withAlpha(NodeColor, 0.52+h*0.42))
	}
}
