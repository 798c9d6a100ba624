package particles

// Node is one simulated point.
type Node struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

// Pointer is the last known pointer position. X, Y and Active are always
// written together.
type Pointer struct {
	X, Y   float64
	Active bool
}

// LinkAlpha is the distance-only opacity of a link: (1 - d/link) * base.
func LinkAlpha(d, link, base float64) float64 {
	if d >= link {
		return 0
	}
	return (1 - d/link) * base
}

// Repulsion is the displacement applied to a node at distance d from the
// pointer: ((r-d)/r)² * strength inside the radius, 0 outside.
func Repulsion(d, r, strength float64) float64 {
	if d >= r || d <= 0.001 {
		return 0
	}
	force := (r - d) / r
	return force * force * strength
}

// Highlight is 1 - d/r for nodes within r of an active pointer, else 0.
func Highlight(d, r float64, active bool) float64 {
	if !active || d >= r {
		return 0
	}
	return 1 - d/r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
