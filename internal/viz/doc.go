// Package viz provides the terminal drawing surface and styling.
//
//   - [Canvas]: braille raster (2x4 dots per cell) that the particle field
//     draws into, with text labels rendered on top
//   - [Scaled]: maps viewport units onto the canvas resolution
//   - Themes: five colour schemes for the chrome around the canvas
package viz
