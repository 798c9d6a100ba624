package export

import (
	"bytes"
	"image/color"
	"image/gif"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/san-kum/folio/internal/particles"
	"github.com/san-kum/folio/internal/viz"
)

func newField(t *testing.T) *particles.Field {
	t.Helper()
	f, err := particles.NewField(particles.DefaultOptions(), rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatal(err)
	}
	f.Resize(320, 200, 1)
	return f
}

func TestSVGFrame(t *testing.T) {
	f := newField(t)
	s := NewSVG(320, 200)
	f.Frame(s)
	out := s.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Fatal("malformed svg document")
	}
	if n := strings.Count(out, "<circle"); n != len(f.Nodes()) {
		t.Errorf("expected %d circles, got %d", len(f.Nodes()), n)
	}
	if n := strings.Count(out, "<line "); n != f.Stats().Links {
		t.Errorf("expected %d lines, got %d", f.Stats().Links, n)
	}

	f.Frame(s)
	if strings.Count(s.String(), "<linearGradient") != 1 {
		t.Error("each frame should replace the previous one")
	}
}

func TestRasterBlend(t *testing.T) {
	r := NewRaster(4, 4, 1)
	r.Gradient(color.NRGBA{A: 255}, color.NRGBA{A: 255})
	r.Circle(1, 1, 0.5, color.NRGBA{R: 255, A: 255})
	if got := r.Img.RGBAAt(1, 1); got.R != 255 {
		t.Errorf("opaque circle not painted: %+v", got)
	}
	r.Circle(3, 3, 0.5, color.NRGBA{R: 200, A: 0})
	if got := r.Img.RGBAAt(3, 3); got.R != 0 {
		t.Errorf("transparent ink changed pixel: %+v", got)
	}
	r.Line(-10, -10, 100, 100, 1, color.NRGBA{G: 255, A: 255})
}

func TestGradientEndpoints(t *testing.T) {
	r := NewRaster(11, 11, 1)
	r.Gradient(color.NRGBA{R: 0, A: 255}, color.NRGBA{R: 200, A: 255})
	if r.Img.RGBAAt(0, 0).R != 0 {
		t.Error("top-left should be the start colour")
	}
	if got := r.Img.RGBAAt(10, 10).R; got < 180 {
		t.Errorf("bottom-right should approach the end colour, got %d", got)
	}
}

func TestGIFRecorder(t *testing.T) {
	f := newField(t)
	r := NewRaster(320, 200, 1)
	rec := &GIFRecorder{Delay: 4}
	for i := 0; i < 3; i++ {
		f.Frame(r)
		rec.Capture(r.Img)
	}

	var buf bytes.Buffer
	if err := rec.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 3 || g.Delay[0] != 4 {
		t.Errorf("frames=%d delay=%v", len(g.Image), g.Delay)
	}
}

func TestBraille(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	node := color.NRGBA{R: 37, G: 99, B: 235, A: 255}
	c.Circle(0, 0, 0.5, node)
	c.Circle(3, 3, 0.5, color.NRGBA{R: 255, G: 255, B: 255, A: 51})
	out := Braille(c, 2, particles.BackgroundFrom)

	if n := strings.Count(out, "<circle"); n != 2 {
		t.Fatalf("expected 2 dots, got %d: %s", n, out)
	}
	if !strings.Contains(out, `width="8" height="8"`) {
		t.Errorf("size should be sub-pixels times pitch: %s", out)
	}
	if !strings.Contains(out, `cx="1.0" cy="1.0" r="0.80" fill="rgb(37,99,235)" fill-opacity="1.000"`) {
		t.Errorf("node dot missing: %s", out)
	}
	if !strings.Contains(out, `cx="7.0" cy="7.0" r="0.80" fill="rgb(255,255,255)" fill-opacity="0.200"`) {
		t.Errorf("link dot missing: %s", out)
	}
	if Braille(nil, 1, color.NRGBA{}) != "" {
		t.Error("nil canvas should yield empty output")
	}
}

func TestBrailleFieldFrame(t *testing.T) {
	f := newField(t)
	c := viz.NewCanvas(80, 25)
	f.Frame(viz.Scaled{Surface: c, Factor: 0.5})
	out := Braille(c, 2, particles.BackgroundFrom)
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Fatal("malformed svg document")
	}
	if strings.Count(out, "<circle") < len(f.Nodes())/2 {
		t.Errorf("too few dots for %d nodes", len(f.Nodes()))
	}
}
