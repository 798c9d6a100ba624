// Package metrics observes a particle field frame by frame and reduces what
// it sees to a single number per metric.
package metrics

import "github.com/san-kum/folio/internal/particles"

type Metric interface {
	Name() string
	Observe(f *particles.Field)
	Value() float64
	Reset()
}

// Standard returns the metrics recorded for every bench run.
func Standard() []Metric {
	return []Metric{
		NewMeanLinks(),
		NewPeakLinks(),
		NewMeanSpeed(),
		NewPointerCoverage(),
	}
}

// Collect maps each metric name to its current value.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
