package viz

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille raster. Each cell holds 2x4 sub-pixels and remembers
// the most opaque colour drawn into it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	ink           [][]color.NRGBA
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid in place so existing references stay valid.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.ink = make([][]color.NRGBA, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.ink[i] = make([]color.NRGBA, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// SubSize is the canvas size in sub-pixels.
func (c *Canvas) SubSize() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) plot(x, y int, ink color.NRGBA) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if ink.A >= c.ink[row][col].A {
		c.ink[row][col] = ink
	}
}

// Lit reports whether the sub-pixel at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

// InkAt is the colour a cell was last drawn with at the highest opacity.
func (c *Canvas) InkAt(col, row int) color.NRGBA {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return color.NRGBA{}
	}
	return c.ink[row][col]
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.ink[i][j] = color.NRGBA{}
		}
	}
}

// Gradient erases the previous frame. The terminal background stands in for
// the gradient itself.
func (c *Canvas) Gradient(from, to color.NRGBA) { c.Clear() }

// Line draws a one sub-pixel wide line with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, ink color.NRGBA) {
	c.drawLine(round(x0), round(y0), round(x1), round(y1), ink)
}

// Circle fills a disc; anything smaller than a sub-pixel is one dot.
func (c *Canvas) Circle(x, y, r float64, ink color.NRGBA) {
	cx, cy := round(x), round(y)
	ir := int(r)
	if ir < 1 {
		c.plot(cx, cy, ink)
		return
	}
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			if dx*dx+dy*dy <= ir*ir {
				c.plot(cx+dx, cy+dy, ink)
			}
		}
	}
}

func (c *Canvas) drawLine(x0, y0, x1, y1 int, ink color.NRGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.plot(x0, y0, ink)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Label is text printed over the canvas at a cell position.
type Label struct {
	Col, Row int
	Text     string
	Style    lipgloss.Style
}

// Render returns the canvas coloured by ink, with labels drawn on top.
// Runs of cells sharing a colour are styled together.
func (c *Canvas) Render(labels ...Label) string {
	type cell struct {
		r     rune
		label int
	}
	overlay := make(map[[2]int]cell)
	keys := make([]string, len(labels))
	for i := range labels {
		l := &labels[i]
		keys[i] = "label" + strconv.Itoa(i)
		col := l.Col
		for _, r := range l.Text {
			if col >= 0 && col < c.Width && l.Row >= 0 && l.Row < c.Height {
				overlay[[2]int{l.Row, col}] = cell{r: r, label: i}
			}
			col++
		}
	}

	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		var run strings.Builder
		var runStyle *lipgloss.Style
		var runKey string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle != nil {
				b.WriteString(runStyle.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}

		for col := 0; col < c.Width; col++ {
			var (
				r     rune
				style *lipgloss.Style
				key   string
			)
			if o, ok := overlay[[2]int{row, col}]; ok {
				r, style, key = o.r, &labels[o.label].Style, keys[o.label]
			} else {
				r = c.Grid[row][col]
				if r == blank {
					r = ' '
					key = "blank"
				} else {
					hex := inkHex(c.ink[row][col])
					s := inkStyle(hex)
					style, key = &s, hex
				}
			}
			if key != runKey {
				flush()
				runKey, runStyle = key, style
			}
			run.WriteRune(r)
		}
		flush()
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

var inkStyles = map[string]lipgloss.Style{}

func inkStyle(hex string) lipgloss.Style {
	if s, ok := inkStyles[hex]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	inkStyles[hex] = s
	return s
}

// inkHex blends the ink over black by its alpha and quantizes to 16 levels
// per channel so neighbouring cells share styles.
func inkHex(ink color.NRGBA) string {
	a := float64(ink.A) / 255
	q := func(v uint8) int {
		x := int(float64(v)*a) / 16 * 17
		if x > 255 {
			x = 255
		}
		return x
	}
	return hexColor(q(ink.R), q(ink.G), q(ink.B))
}

func round(v float64) int { return int(math.Round(v)) }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
