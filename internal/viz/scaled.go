package viz

import (
	"image/color"

	"github.com/san-kum/folio/internal/particles"
)

// Scaled maps viewport units onto a surface with a different resolution,
// the way a browser canvas maps CSS pixels onto device pixels.
type Scaled struct {
	Surface particles.Surface
	Factor  float64
}

func (s Scaled) Gradient(from, to color.NRGBA) { s.Surface.Gradient(from, to) }

func (s Scaled) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	k := s.Factor
	s.Surface.Line(x0*k, y0*k, x1*k, y1*k, width*k, c)
}

func (s Scaled) Circle(x, y, r float64, c color.NRGBA) {
	k := s.Factor
	s.Surface.Circle(x*k, y*k, r*k, c)
}
