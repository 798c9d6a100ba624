package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/folio/internal/particles"
	"github.com/san-kum/folio/internal/typewriter"
)

const (
	DefaultTheme = "midnight"
	DefaultFPS   = 30
	// DefaultScale is how many viewport units one braille sub-pixel covers.
	DefaultScale = 4.0
)

type Config struct {
	Theme       string         `yaml:"theme"`
	FPS         int            `yaml:"fps"`
	Seed        uint64         `yaml:"seed"`
	Scale       float64        `yaml:"scale"`
	ContentFile string         `yaml:"content_file,omitempty"`
	Field       FieldConfig    `yaml:"field"`
	Headline    HeadlineConfig `yaml:"headline"`
}

// FieldConfig overrides particle field tuning; zero values keep the default.
type FieldConfig struct {
	MinNodes      int     `yaml:"min_nodes,omitempty"`
	MaxNodes      int     `yaml:"max_nodes,omitempty"`
	SpeedRange    float64 `yaml:"speed_range,omitempty"`
	LinkWide      float64 `yaml:"link_wide,omitempty"`
	LinkNarrow    float64 `yaml:"link_narrow,omitempty"`
	RadiusWide    float64 `yaml:"radius_wide,omitempty"`
	RadiusNarrow  float64 `yaml:"radius_narrow,omitempty"`
	RepelStrength float64 `yaml:"repel_strength,omitempty"`
	LinkAlpha     float64 `yaml:"link_alpha,omitempty"`
	PointerBoost  float64 `yaml:"pointer_boost,omitempty"`
}

// HeadlineConfig sets the rotating phrases and their timing in milliseconds.
// An empty phrase list uses the profile headlines.
type HeadlineConfig struct {
	Phrases  []string `yaml:"phrases,omitempty"`
	TypeMS   int      `yaml:"type_ms"`
	DeleteMS int      `yaml:"delete_ms"`
	HoldMS   int      `yaml:"hold_ms"`
	GapMS    int      `yaml:"gap_ms"`
}

func DefaultConfig() *Config {
	t := typewriter.DefaultTiming()
	return &Config{
		Theme: DefaultTheme,
		FPS:   DefaultFPS,
		Scale: DefaultScale,
		Headline: HeadlineConfig{
			TypeMS:   int(t.Type / time.Millisecond),
			DeleteMS: int(t.Delete / time.Millisecond),
			HoldMS:   int(t.HoldTyped / time.Millisecond),
			GapMS:    int(t.HoldDeleted / time.Millisecond),
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FrameInterval converts FPS into a render period.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return particles.DefaultFrameInterval
	}
	return time.Second / time.Duration(c.FPS)
}

// Options merges the field overrides onto the default tuning.
func (c *Config) Options() particles.Options {
	return c.Field.Apply(particles.DefaultOptions())
}

func (f FieldConfig) Apply(o particles.Options) particles.Options {
	setInt(&o.MinNodes, f.MinNodes)
	setInt(&o.MaxNodes, f.MaxNodes)
	setFloat(&o.SpeedRange, f.SpeedRange)
	setFloat(&o.LinkWide, f.LinkWide)
	setFloat(&o.LinkNarrow, f.LinkNarrow)
	setFloat(&o.RadiusWide, f.RadiusWide)
	setFloat(&o.RadiusNarrow, f.RadiusNarrow)
	setFloat(&o.RepelStrength, f.RepelStrength)
	setFloat(&o.LinkAlpha, f.LinkAlpha)
	setFloat(&o.PointerBoost, f.PointerBoost)
	return o
}

func (h HeadlineConfig) Timing() typewriter.Timing {
	t := typewriter.DefaultTiming()
	ms := func(dst *time.Duration, v int) {
		if v > 0 {
			*dst = time.Duration(v) * time.Millisecond
		}
	}
	ms(&t.Type, h.TypeMS)
	ms(&t.Delete, h.DeleteMS)
	ms(&t.HoldTyped, h.HoldMS)
	ms(&t.HoldDeleted, h.GapMS)
	return t
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
