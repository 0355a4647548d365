package viz

import (
	"errors"
	"math"
	"strings"

	"github.com/san-kum/entropic/internal/render"
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

const brailleBlank = 0x2800

var errNonFinite = errors.New("non-finite coordinate")

// Grid is a braille dot matrix. Its resolution in sub-pixels is
// (Width*2) x (Height*4).
type Grid struct {
	Width, Height int
	cells         [][]rune
}

func NewGrid(w, h int) *Grid {
	g := &Grid{Width: w, Height: h, cells: make([][]rune, h)}
	for i := range g.cells {
		g.cells[i] = make([]rune, w)
	}
	g.Clear()
	return g
}

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= g.Width || row >= g.Height {
		return
	}
	g.cells[row][col] |= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the sub-pixel at (x, y) is lit.
func (g *Grid) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= g.Width || y/4 >= g.Height {
		return false
	}
	return g.cells[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (g *Grid) Clear() {
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (g *Grid) DrawLine(x0, y0, x1, y1 int) {
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
		g.Set(x0, y0)
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

func (g *Grid) String() string {
	var b strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// Surface adapts a Grid to render.Canvas. Frame coordinates in the source
// space (the simulator's screen size) are scaled onto the grid's sub-pixels.
// Text is collected rather than rasterised; the sidebar shows it.
type Surface struct {
	grid           *Grid
	srcW, srcH     float64
	scaleX, scaleY float64
	lines          []string
}

func NewSurface(cols, rows int, srcW, srcH float64) *Surface {
	s := &Surface{srcW: srcW, srcH: srcH}
	s.Resize(cols, rows)
	return s
}

// Resize replaces the grid with one of cols x rows cells.
func (s *Surface) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.grid = NewGrid(cols, rows)
	s.scaleX = float64(cols*2) / s.srcW
	s.scaleY = float64(rows*4) / s.srcH
}

func (s *Surface) Grid() *Grid     { return s.grid }
func (s *Surface) Lines() []string { return s.lines }

func (s *Surface) Size() (float64, float64) { return s.srcW, s.srcH }

// Clear blanks the grid. Braille cells have no background colour.
func (s *Surface) Clear(render.Color) {
	s.grid.Clear()
	s.lines = s.lines[:0]
}

func (s *Surface) FillCircle(c render.Point, radius float64, _ render.Color) error {
	if !render.Finite(c) {
		return errNonFinite
	}
	x, y := s.sub(c)
	s.grid.Set(x, y)
	return nil
}

func (s *Surface) Polyline(pts []render.Point, _ float64, _ render.Color) error {
	if !render.Finite(pts...) {
		return errNonFinite
	}
	for i := 1; i < len(pts); i++ {
		x0, y0 := s.sub(pts[i-1])
		x1, y1 := s.sub(pts[i])
		if offGrid(x0, y0, s.grid) || offGrid(x1, y1, s.grid) {
			continue
		}
		s.grid.DrawLine(x0, y0, x1, y1)
	}
	return nil
}

func (s *Surface) Text(str string, _ render.Point, _ float64, _ render.Color) error {
	s.lines = append(s.lines, str)
	return nil
}

func (s *Surface) sub(p render.Point) (int, int) {
	return int(math.Floor(p.X * s.scaleX)), int(math.Floor(p.Y * s.scaleY))
}

// offGrid reports whether a sub-pixel lies well outside the grid. Segments
// touching such points are dropped instead of walked pixel by pixel.
func offGrid(x, y int, g *Grid) bool {
	const margin = 64
	return x < -margin || y < -margin || x > g.Width*2+margin || y > g.Height*4+margin
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
