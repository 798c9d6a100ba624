package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/folio/internal/viz"
)

// SVG is a particles.Surface that records one frame as SVG markup.
type SVG struct {
	Width, Height float64
	body          strings.Builder
}

func NewSVG(width, height float64) *SVG {
	return &SVG{Width: width, Height: height}
}

func (s *SVG) Gradient(from, to color.NRGBA) {
	s.body.Reset()
	s.body.WriteString(fmt.Sprintf(`<defs>
<linearGradient id="bg" x1="0" y1="0" x2="1" y2="1">
<stop offset="0" stop-color="%s"/>
<stop offset="1" stop-color="%s"/>
</linearGradient>
</defs>
<rect width="100%%" height="100%%" fill="url(#bg)"/>
`, rgb(from), rgb(to)))
}

func (s *SVG) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f"/>
`, x0, y0, x1, y1, rgb(c), opacity(c), width))
}

func (s *SVG) Circle(x, y, r float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" fill-opacity="%.3f"/>
`, x, y, r, rgb(c), opacity(c)))
}

func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.Width, s.Height, s.Width, s.Height))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

// Braille renders a terminal canvas as SVG, one dot per lit sub-pixel
// coloured with its cell's ink. pitch is the distance between dots.
func Braille(canvas *viz.Canvas, pitch float64, background color.NRGBA) string {
	if canvas == nil {
		return ""
	}
	sw, sh := canvas.SubSize()
	width, height := float64(sw)*pitch, float64(sh)*pitch

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, rgb(background)))

	r := pitch * 0.4
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			ink := canvas.InkAt(x/2, y/4)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" fill-opacity="%.3f"/>
`, (float64(x)+0.5)*pitch, (float64(y)+0.5)*pitch, r, rgb(ink), opacity(ink)))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
