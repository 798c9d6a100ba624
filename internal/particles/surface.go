package particles

import "image/color"

// Surface receives the drawing calls of one frame. Coordinates are viewport
// units; colours are non-premultiplied.
type Surface interface {
	// Gradient fills the whole surface with a linear gradient from the top
	// left corner to the bottom right one, erasing the previous frame.
	Gradient(from, to color.NRGBA)
	Line(x0, y0, x1, y1, width float64, c color.NRGBA)
	Circle(x, y, r float64, c color.NRGBA)
}

var (
	BackgroundFrom = color.NRGBA{R: 0x01, G: 0x0a, B: 0x22, A: 0xff}
	BackgroundTo   = color.NRGBA{R: 0x02, G: 0x06, B: 0x17, A: 0xff}
	LinkColor      = color.NRGBA{R: 255, G: 255, B: 255}
	NodeColor      = color.NRGBA{R: 37, G: 99, B: 235}
)

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha*255 + 0.5)
	return c
}
