package metrics

import "github.com/san-kum/folio/internal/particles"

type MeanLinks struct {
	sum     int
	samples int
}

func NewMeanLinks() *MeanLinks { return &MeanLinks{} }

func (m *MeanLinks) Name() string { return "mean_links" }

func (m *MeanLinks) Observe(f *particles.Field) {
	m.sum += f.Stats().Links
	m.samples++
}

func (m *MeanLinks) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.samples)
}

func (m *MeanLinks) Reset() {
	m.sum = 0
	m.samples = 0
}

type PeakLinks struct {
	peak int
}

func NewPeakLinks() *PeakLinks { return &PeakLinks{} }

func (p *PeakLinks) Name() string { return "peak_links" }

func (p *PeakLinks) Observe(f *particles.Field) {
	if l := f.Stats().Links; l > p.peak {
		p.peak = l
	}
}

func (p *PeakLinks) Value() float64 { return float64(p.peak) }
func (p *PeakLinks) Reset()         { p.peak = 0 }
