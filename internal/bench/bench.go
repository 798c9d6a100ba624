// Package bench renders a particle field headlessly on a virtual clock and
// records what every frame cost.
package bench

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/san-kum/folio/internal/metrics"
	"github.com/san-kum/folio/internal/particles"
	"github.com/san-kum/folio/internal/sched"
)

var ErrInvalidConfig = errors.New("bench: invalid config")

// PointerPath moves a synthetic pointer across the viewport.
type PointerPath string

const (
	PointerNone  PointerPath = "none"
	PointerOrbit PointerPath = "orbit"
	PointerSweep PointerPath = "sweep"
)

type Config struct {
	Preset     string
	Width      float64
	Height     float64
	PixelRatio float64
	Frames     int
	Seed       uint64
	Interval   time.Duration
	Pointer    PointerPath
	Options    particles.Options
}

func DefaultConfig() Config {
	return Config{
		Preset:     "default",
		Width:      1440,
		Height:     900,
		PixelRatio: 1,
		Frames:     600,
		Seed:       1,
		Interval:   particles.DefaultFrameInterval,
		Pointer:    PointerOrbit,
		Options:    particles.DefaultOptions(),
	}
}

type Frame struct {
	Index   int
	Time    float64
	Nodes   int
	Links   int
	Lines   int
	Circles int
	Micros  float64
}

type Result struct {
	Config  Config
	Frames  []Frame
	Metrics map[string]float64
	Elapsed time.Duration
}

// counter is a Surface that only tallies draw calls.
type counter struct {
	lines, circles int
}

func (c *counter) Gradient(_, _ color.NRGBA) {
	c.lines = 0
	c.circles = 0
}
func (c *counter) Line(_, _, _, _, _ float64, _ color.NRGBA) { c.lines++ }
func (c *counter) Circle(_, _, _ float64, _ color.NRGBA)     { c.circles++ }

func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("%w: frames must be positive", ErrInvalidConfig)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: viewport %gx%g", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = particles.DefaultFrameInterval
	}
	if cfg.Pointer == "" {
		cfg.Pointer = PointerNone
	}

	field, err := particles.NewField(cfg.Options, rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)))
	if err != nil {
		return nil, err
	}
	field.Resize(cfg.Width, cfg.Height, cfg.PixelRatio)

	clock := sched.NewManual()
	surface := &counter{}
	observers := metrics.Standard()
	res := &Result{Config: cfg, Frames: make([]Frame, 0, cfg.Frames)}

	record := func(d time.Duration) {
		for _, m := range observers {
			m.Observe(field)
		}
		res.Frames = append(res.Frames, Frame{
			Index:   len(res.Frames),
			Time:    clock.Now().Seconds(),
			Nodes:   len(field.Nodes()),
			Links:   field.Stats().Links,
			Lines:   surface.lines,
			Circles: surface.circles,
			Micros:  float64(d.Nanoseconds()) / 1e3,
		})
	}

	start := time.Now()
	movePointer(field, cfg, 0)
	mount := particles.NewMount(field, func() (particles.Surface, bool) { return surface, true }, clock, cfg.Interval)
	defer mount.Unmount()
	record(time.Since(start))

	for len(res.Frames) < cfg.Frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		movePointer(field, cfg, len(res.Frames))
		t0 := time.Now()
		if !clock.Step() {
			break
		}
		record(time.Since(t0))
	}
	res.Elapsed = time.Since(start)

	res.Metrics = metrics.Collect(observers)
	mean, p95 := frameTimes(res.Frames)
	res.Metrics["mean_frame_us"] = mean
	res.Metrics["p95_frame_us"] = p95
	return res, nil
}

// PointerAt is where the synthetic pointer sits on frame i.
func (c Config) PointerAt(i int) (x, y float64, ok bool) {
	w, h := c.Width, c.Height
	switch c.Pointer {
	case PointerOrbit:
		a := float64(i) * 2 * math.Pi / 240
		r := math.Min(w, h) / 3
		return w/2 + r*math.Cos(a), h/2 + r*math.Sin(a), true
	case PointerSweep:
		period := 180
		p := float64(i%period) / float64(period)
		return p * w, h / 2, true
	}
	return 0, 0, false
}

func movePointer(f *particles.Field, cfg Config, i int) {
	x, y, ok := cfg.PointerAt(i)
	if !ok {
		f.PointerLeave()
		return
	}
	f.PointerMove(x, y)
}

func frameTimes(frames []Frame) (mean, p95 float64) {
	if len(frames) == 0 {
		return 0, 0
	}
	us := make([]float64, len(frames))
	sum := 0.0
	for i, fr := range frames {
		us[i] = fr.Micros
		sum += fr.Micros
	}
	sort.Float64s(us)
	idx := int(math.Ceil(0.95*float64(len(us)))) - 1
	if idx < 0 {
		idx = 0
	}
	return sum / float64(len(us)), us[idx]
}

// Series extracts one column of the frame table by name.
func (r *Result) Series(name string) ([]float64, error) {
	out := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		switch name {
		case "links":
			out[i] = float64(f.Links)
		case "nodes":
			out[i] = float64(f.Nodes)
		case "lines":
			out[i] = float64(f.Lines)
		case "circles":
			out[i] = float64(f.Circles)
		case "us":
			out[i] = f.Micros
		default:
			return nil, fmt.Errorf("unknown series %q", name)
		}
	}
	return out, nil
}
