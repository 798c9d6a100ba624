package particles

import "errors"

var (
	// ErrInvalidOptions indicates field options outside their valid ranges.
	ErrInvalidOptions = errors.New("particles: invalid options")
)
