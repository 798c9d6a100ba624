package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/folio/internal/particles"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "midnight" {
		t.Errorf("expected theme midnight, got %s", cfg.Theme)
	}
	if cfg.FrameInterval() != time.Second/30 {
		t.Errorf("unexpected frame interval %v", cfg.FrameInterval())
	}
	if cfg.Options() != particles.DefaultOptions() {
		t.Error("empty field config should keep default options")
	}
	if cfg.Headline.Timing().HoldTyped != 1200*time.Millisecond {
		t.Errorf("unexpected hold %v", cfg.Headline.Timing().HoldTyped)
	}
}

func TestFieldOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Field = FieldConfig{MaxNodes: 200, RepelStrength: 3}
	o := cfg.Options()
	if o.MaxNodes != 200 || o.RepelStrength != 3 {
		t.Errorf("overrides not applied: %+v", o)
	}
	if o.MinNodes != 30 {
		t.Errorf("untouched fields should keep defaults, got min %d", o.MinNodes)
	}
	if err := o.Validate(); err != nil {
		t.Errorf("merged options invalid: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "retro"
	cfg.Headline.Phrases = []string{"Gopher"}
	cfg.Headline.TypeMS = 50
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Theme != "retro" || got.Headline.Phrases[0] != "Gopher" {
		t.Errorf("round trip lost values: %+v", got)
	}
	if got.Headline.Timing().Type != 50*time.Millisecond {
		t.Errorf("type delay = %v", got.Headline.Timing().Type)
	}
}

func TestGetPreset(t *testing.T) {
	p, ok := GetPreset("dense")
	if !ok {
		t.Fatal("expected preset")
	}
	if p.MaxNodes != 180 {
		t.Errorf("expected max nodes 180, got %d", p.MaxNodes)
	}
	if _, ok := GetPreset("nope"); ok {
		t.Error("unknown preset should miss")
	}
	for _, name := range ListPresets() {
		p, _ := GetPreset(name)
		if err := p.Apply(particles.DefaultOptions()).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestLoadServer(t *testing.T) {
	t.Setenv("FOLIO_ADDR", ":9090")
	t.Setenv("FOLIO_CONTACT_DELAY", "20ms")
	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("load server: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.ContactDelay != 20*time.Millisecond {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Model == "" || cfg.KeepAlive != 15*time.Second {
		t.Errorf("defaults missing: %+v", cfg)
	}
}
