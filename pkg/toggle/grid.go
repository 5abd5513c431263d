package toggle

import (
	"fmt"
	"slices"
)

// Point is a cell coordinate. Row 0 is the top of the field.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p displaced by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

var orthogonal = [4]Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is an immutable rectangular field of binary features.
// Every mutation returns a new Grid; the receiver is never modified.
type Grid struct {
	width  int
	height int
	cells  []bool // row-major
}

// NewGrid builds a grid from rows of 0/1 values. Rows must be non-empty and of equal length.
func NewGrid(rows [][]int) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: empty grid", ErrInvalidBoard)
	}

	g := Grid{
		width:  len(rows[0]),
		height: len(rows),
		cells:  make([]bool, 0, len(rows)*len(rows[0])),
	}
	for y, row := range rows {
		if len(row) != g.width {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, y, len(row), g.width)
		}
		for x, v := range row {
			switch v {
			case 0:
				g.cells = append(g.cells, false)
			case 1:
				g.cells = append(g.cells, true)
			default:
				return Grid{}, fmt.Errorf("%w: cell (%d,%d) has value %d, want 0 or 1", ErrInvalidBoard, x, y, v)
			}
		}
	}
	return g, nil
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

// Contains reports whether p lies inside the field.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// At reports whether the feature at p is raised. Points outside the field are lowered.
func (g Grid) At(p Point) bool {
	if !g.Contains(p) {
		return false
	}
	return g.cells[p.Y*g.width+p.X]
}

// Neighbors returns the in-bounds orthogonal neighbours of p.
func (g Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(orthogonal))
	for _, d := range orthogonal {
		n := p.Add(d.X, d.Y)
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Flip returns a copy of g with the features at points inverted.
// Points outside the field are ignored.
func (g Grid) Flip(points ...Point) Grid {
	next := Grid{width: g.width, height: g.height, cells: slices.Clone(g.cells)}
	for _, p := range points {
		if g.Contains(p) {
			i := p.Y*g.width + p.X
			next.cells[i] = !next.cells[i]
		}
	}
	return next
}

// Equal reports whether both grids have the same size and features.
func (g Grid) Equal(other Grid) bool {
	return g.width == other.width && g.height == other.height && slices.Equal(g.cells, other.cells)
}

// Rows returns the grid as rows of 0/1 values.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := range rows {
		rows[y] = make([]int, g.width)
		for x := range rows[y] {
			if g.cells[y*g.width+x] {
				rows[y][x] = 1
			}
		}
	}
	return rows
}

// appendBits packs the features into buf, eight cells per byte.
func (g Grid) appendBits(buf []byte) []byte {
	var b byte
	for i, raised := range g.cells {
		if raised {
			b |= 1 << (i % 8)
		}
		if i%8 == 7 {
			buf = append(buf, b)
			b = 0
		}
	}
	if len(g.cells)%8 != 0 {
		buf = append(buf, b)
	}
	return buf
}
