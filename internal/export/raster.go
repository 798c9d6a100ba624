package export

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
)

// Raster is a particles.Surface backed by an RGBA image. Viewport units are
// multiplied by Ratio, like a canvas transform for device pixel ratio.
type Raster struct {
	Img   *image.RGBA
	Ratio float64
}

func NewRaster(width, height int, ratio float64) *Raster {
	if ratio <= 0 {
		ratio = 1
	}
	return &Raster{Img: image.NewRGBA(image.Rect(0, 0, width, height)), Ratio: ratio}
}

// Gradient paints along the top-left → bottom-right diagonal.
func (r *Raster) Gradient(from, to color.NRGBA) {
	b := r.Img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	den := w*w + h*h
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t := 0.0
			if den > 0 {
				t = (float64(x)*w + float64(y)*h) / den
			}
			r.Img.SetRGBA(x, y, color.RGBA{
				R: lerp(from.R, to.R, t),
				G: lerp(from.G, to.G, t),
				B: lerp(from.B, to.B, t),
				A: 255,
			})
		}
	}
}

func (r *Raster) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	k := r.Ratio
	x0, y0, x1, y1 = x0*k, y0*k, x1*k, y1*k
	half := math.Max(width*k/2, 0.5)
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		r.disc(x0, y0, half, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.blend(int(x0+(x1-x0)*t), int(y0+(y1-y0)*t), c)
		if half > 1 {
			r.blend(int(x0+(x1-x0)*t), int(y0+(y1-y0)*t)+1, c)
		}
	}
}

func (r *Raster) Circle(x, y, rad float64, c color.NRGBA) {
	k := r.Ratio
	r.disc(x*k, y*k, rad*k, c)
}

func (r *Raster) disc(cx, cy, rad float64, c color.NRGBA) {
	ir := int(math.Ceil(rad))
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			if float64(dx*dx+dy*dy) <= rad*rad {
				r.blend(int(cx)+dx, int(cy)+dy, c)
			}
		}
	}
}

// blend composites c over the pixel at (x, y).
func (r *Raster) blend(x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(r.Img.Bounds()) {
		return
	}
	a := float64(c.A) / 255
	dst := r.Img.RGBAAt(x, y)
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	r.Img.SetRGBA(x, y, color.RGBA{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: 255})
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// GIFRecorder collects frames into an animated GIF.
type GIFRecorder struct {
	// Delay between frames in 100ths of a second
	Delay  int
	frames []*image.Paletted
}

func (g *GIFRecorder) Capture(img image.Image) {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	g.frames = append(g.frames, p)
}

func (g *GIFRecorder) Len() int { return len(g.frames) }

func (g *GIFRecorder) Encode(w io.Writer) error {
	delay := g.Delay
	if delay <= 0 {
		delay = 2
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
