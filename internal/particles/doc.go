// Package particles implements the animated network backdrop: drifting
// nodes, distance-faded links between near pairs, and a pointer that pushes
// nodes away and brightens what it is close to.
//
//   - [Field]: the simulation state and per-frame update/draw
//   - [Mount]: the render loop lifecycle (visibility, resize, teardown)
//   - [Surface]: whatever the frame is drawn onto
//
// # Frame
//
// Each frame repaints the background gradient, integrates node positions
// with reflective bounds, applies pointer repulsion, draws links and then
// nodes:
//
//	f, _ := particles.NewField(particles.DefaultOptions(), rng)
//	f.Resize(1280, 720, 2)
//	f.Frame(surface)
package particles
