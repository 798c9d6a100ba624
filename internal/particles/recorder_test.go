package particles

import "image/color"

type line struct {
	x0, y0, x1, y1, width float64
	c                     color.NRGBA
}

type circle struct {
	x, y, r float64
	c       color.NRGBA
}

// recorder keeps the calls of the most recent frame.
type recorder struct {
	gradients int
	lines     []line
	circles   []circle
}

func (r *recorder) Gradient(from, to color.NRGBA) {
	r.gradients++
	r.lines = r.lines[:0]
	r.circles = r.circles[:0]
}

func (r *recorder) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.lines = append(r.lines, line{x0, y0, x1, y1, width, c})
}

func (r *recorder) Circle(x, y, rad float64, c color.NRGBA) {
	r.circles = append(r.circles, circle{x, y, rad, c})
}
