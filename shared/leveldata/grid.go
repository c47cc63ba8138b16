package leveldata

import "math"

// Grid answers solidity queries for a level. It is built once from a Source
// and never mutated afterwards, so it is safe to share between goroutines.
type Grid struct {
	cols, rows int
	cellW      float64
	cellH      float64
	solid      []bool
}

// NewGrid resolves every cell of src into a solid bitmap.
// A cell is solid when any layer, topmost first, holds a tile that resolves
// through the tileset and carries the solid property.
func NewGrid(src Source) *Grid {
	g := &Grid{
		cols:  src.Width(),
		rows:  src.Height(),
		cellW: src.TileWidth(),
		cellH: src.TileHeight(),
	}
	g.solid = make([]bool, g.cols*g.rows)

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.solid[row*g.cols+col] = cellSolid(src, col, row)
		}
	}
	return g
}

func cellSolid(src Source, col, row int) bool {
	for layer := src.LayerCount() - 1; layer >= 0; layer-- {
		id := src.TileID(layer, col, row)
		if id == 0 {
			continue
		}
		if info, ok := src.Tile(id); ok && info.Solid {
			return true
		}
	}
	return false
}

// IsSolid reports whether the cell at (col, row) blocks movement.
// Out-of-range cells are never solid.
func (g *Grid) IsSolid(col, row int) bool {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return false
	}
	return g.solid[row*g.cols+col]
}

// CellAt returns the cell containing the point (x, y). The result may be out
// of range.
func (g *Grid) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / g.cellW)), int(math.Floor(y / g.cellH))
}

// SurfaceBelow scans down the column containing x, starting at the row
// containing y, and returns the top edge of the first solid row. With no
// solid row below, the bottom of the grid is the floor.
func (g *Grid) SurfaceBelow(x, y float64) float64 {
	col, row := g.CellAt(x, y)
	if row < 0 {
		row = 0
	}
	for ; row < g.rows; row++ {
		if g.IsSolid(col, row) {
			return float64(row) * g.cellH
		}
	}
	return g.PixelHeight()
}

// SurfaceAbove scans up the column containing x, starting at the row
// containing y, and returns the bottom edge of the first solid row. With no
// solid row above, the top of the grid is the ceiling.
func (g *Grid) SurfaceAbove(x, y float64) float64 {
	col, row := g.CellAt(x, y)
	if row >= g.rows {
		row = g.rows - 1
	}
	for ; row >= 0; row-- {
		if g.IsSolid(col, row) {
			return float64(row+1) * g.cellH
		}
	}
	return 0
}

func (g *Grid) Cols() int            { return g.cols }
func (g *Grid) Rows() int            { return g.rows }
func (g *Grid) CellWidth() float64   { return g.cellW }
func (g *Grid) CellHeight() float64  { return g.cellH }
func (g *Grid) PixelWidth() float64  { return float64(g.cols) * g.cellW }
func (g *Grid) PixelHeight() float64 { return float64(g.rows) * g.cellH }

func (g *Grid) CellLeft(col int) float64 { return float64(col) * g.cellW }
func (g *Grid) CellTop(row int) float64  { return float64(row) * g.cellH }
