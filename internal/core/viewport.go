package core

import "math"

// Viewport maps arena coordinates onto a block of screen cells. Arena space
// is y-up with the origin at the bottom-left; cells are y-down with the
// origin at the top-left, so the mapping flips the vertical axis. The arena
// is stretched to the full cell block; terminal cells are non-square anyway,
// so preserving the arena's aspect ratio in cell counts would not preserve
// it visually.
type Viewport struct {
	arenaW float64
	arenaH float64
	cols   int
	rows   int
}

// NewViewport creates a viewport mapping an arenaW x arenaH arena to a
// cols x rows cell block.
func NewViewport(arenaW, arenaH float64, cols, rows int) Viewport {
	return Viewport{
		arenaW: arenaW,
		arenaH: arenaH,
		cols:   Max(cols, 1),
		rows:   Max(rows, 1),
	}
}

// Cols returns the width of the cell block.
func (v Viewport) Cols() int { return v.cols }

// Rows returns the height of the cell block.
func (v Viewport) Rows() int { return v.rows }

// CellX converts an arena x-coordinate to a column index.
func (v Viewport) CellX(x float64) int {
	col := int(math.Round(x / v.arenaW * float64(v.cols-1)))
	return Clamp(col, 0, v.cols-1)
}

// CellY converts an arena y-coordinate to a row index, flipping the axis:
// arena y=0 is the bottom row, y=arenaH the top row.
func (v Viewport) CellY(y float64) int {
	row := int(math.Round((v.arenaH - y) / v.arenaH * float64(v.rows-1)))
	return Clamp(row, 0, v.rows-1)
}

// Cell converts an arena point to (column, row).
func (v Viewport) Cell(p Vec2) (int, int) {
	return v.CellX(p.X), v.CellY(p.Y)
}

// CellRect converts an arena rect to a cell rectangle: top-left column and
// row plus width and height in cells, each at least 1 so thin shapes stay
// visible.
func (v Viewport) CellRect(r Rect) (x, y, w, h int) {
	x0 := v.CellX(r.Left())
	x1 := v.CellX(r.Right())
	y0 := v.CellY(r.Top()) // arena top maps to the smaller row index
	y1 := v.CellY(r.Bottom())
	return x0, y0, x1 - x0 + 1, y1 - y0 + 1
}
