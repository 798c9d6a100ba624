package particles

import "fmt"

// Options holds the tuning constants of the field. Distances are in
// viewport units (CSS pixels in a browser, scaled sub-pixels in a terminal).
type Options struct {
	MinNodes         int
	MaxNodes         int
	NarrowBreakpoint float64
	DensityNarrow    float64
	DensityWide      float64

	SpeedRange float64
	SizeMin    float64
	SizeMax    float64

	LinkWide     float64
	LinkNarrow   float64
	RadiusWide   float64
	RadiusNarrow float64

	RepelStrength float64
	LinkAlpha     float64
	PointerBoost  float64
	MaxLinkAlpha  float64
	MinLinkAlpha  float64

	MaxPixelRatio float64
}

func DefaultOptions() Options {
	return Options{
		MinNodes:         30,
		MaxNodes:         110,
		NarrowBreakpoint: 768,
		DensityNarrow:    0.00005,
		DensityWide:      0.000065,
		SpeedRange:       0.28,
		SizeMin:          1.1,
		SizeMax:          2.8,
		LinkWide:         155,
		LinkNarrow:       105,
		RadiusWide:       220,
		RadiusNarrow:     140,
		RepelStrength:    1.8,
		LinkAlpha:        0.42,
		PointerBoost:     0.45,
		MaxLinkAlpha:     0.78,
		MinLinkAlpha:     0.02,
		MaxPixelRatio:    2,
	}
}

func (o Options) Validate() error {
	switch {
	case o.MinNodes < 0 || o.MaxNodes < o.MinNodes:
		return fmt.Errorf("%w: node band [%d, %d]", ErrInvalidOptions, o.MinNodes, o.MaxNodes)
	case o.DensityNarrow < 0 || o.DensityWide < 0:
		return fmt.Errorf("%w: negative density", ErrInvalidOptions)
	case o.SpeedRange < 0:
		return fmt.Errorf("%w: negative speed range", ErrInvalidOptions)
	case o.SizeMin <= 0 || o.SizeMax < o.SizeMin:
		return fmt.Errorf("%w: size range [%g, %g]", ErrInvalidOptions, o.SizeMin, o.SizeMax)
	case o.LinkWide <= 0 || o.LinkNarrow <= 0:
		return fmt.Errorf("%w: link distance must be positive", ErrInvalidOptions)
	case o.RadiusWide <= 0 || o.RadiusNarrow <= 0:
		return fmt.Errorf("%w: interaction radius must be positive", ErrInvalidOptions)
	case o.MaxPixelRatio < 1:
		return fmt.Errorf("%w: max pixel ratio %g", ErrInvalidOptions, o.MaxPixelRatio)
	}
	return nil
}

func (o Options) narrow(width float64) bool {
	return width < o.NarrowBreakpoint
}

// NodeCount returns clamp(floor(w*h*density(w)), MinNodes, MaxNodes).
func (o Options) NodeCount(width, height float64) int {
	density := o.DensityWide
	if o.narrow(width) {
		density = o.DensityNarrow
	}
	n := int(width * height * density)
	if n < o.MinNodes {
		return o.MinNodes
	}
	if n > o.MaxNodes {
		return o.MaxNodes
	}
	return n
}

func (o Options) LinkDistance(width float64) float64 {
	if o.narrow(width) {
		return o.LinkNarrow
	}
	return o.LinkWide
}

func (o Options) InteractionRadius(width float64) float64 {
	if o.narrow(width) {
		return o.RadiusNarrow
	}
	return o.RadiusWide
}
