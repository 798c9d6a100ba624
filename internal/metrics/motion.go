package metrics

import (
	"math"

	"github.com/san-kum/folio/internal/particles"
)

// MeanSpeed averages node speed in viewport units per tick.
type MeanSpeed struct {
	sum     float64
	samples int
}

func NewMeanSpeed() *MeanSpeed { return &MeanSpeed{} }

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) Observe(f *particles.Field) {
	for _, n := range f.Nodes() {
		m.sum += math.Hypot(n.VX, n.VY)
		m.samples++
	}
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.sum = 0
	m.samples = 0
}

// PointerCoverage is the average fraction of nodes inside the interaction
// radius while the pointer is active. Frames without a pointer count as 0.
type PointerCoverage struct {
	sum     float64
	samples int
}

func NewPointerCoverage() *PointerCoverage { return &PointerCoverage{} }

func (p *PointerCoverage) Name() string { return "pointer_coverage" }

func (p *PointerCoverage) Observe(f *particles.Field) {
	p.samples++
	ptr := f.Pointer()
	nodes := f.Nodes()
	if !ptr.Active || len(nodes) == 0 {
		return
	}
	r := f.InteractionRadius()
	inside := 0
	for _, n := range nodes {
		if math.Hypot(n.X-ptr.X, n.Y-ptr.Y) < r {
			inside++
		}
	}
	p.sum += float64(inside) / float64(len(nodes))
}

func (p *PointerCoverage) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.sum / float64(p.samples)
}

func (p *PointerCoverage) Reset() {
	p.sum = 0
	p.samples = 0
}
