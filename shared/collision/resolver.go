package collision

import (
	"fmt"
	"math"

	"github.com/automoto/ninja/shared/gamemath"
)

const (
	// DefaultRadius is how many cells a probe scans along its direction of
	// travel, counting the cell it starts in.
	DefaultRadius = 3

	// probeInset moves probes off the body's corners so a corner lying
	// exactly on a cell boundary still falls strictly inside one cell.
	probeInset = 1e-6

	maxPasses = 2
)

// Grid is the level geometry the resolver and scanner query. It is satisfied
// by *leveldata.Grid.
type Grid interface {
	IsSolid(col, row int) bool
	CellWidth() float64
	CellHeight() float64
	SurfaceBelow(x, y float64) float64
	SurfaceAbove(x, y float64) float64
}

// Resolver sweeps bodies through a Grid.
type Resolver struct {
	Grid   Grid
	Radius int
}

func NewResolver(g Grid) *Resolver {
	return &Resolver{Grid: g, Radius: DefaultRadius}
}

type hit struct {
	t      float64
	normal gamemath.Vec
}

var miss = hit{t: gamemath.NoHit}

func (h hit) found() bool { return h.t >= 0 }

// Resolve finds the earliest contact of b moving at (DX, DY) for dt against
// solid cells. On contact the velocity component on the normal's axis is cut
// so the body stops at the surface, and the contact is returned. Without a
// contact b is left untouched and NoContact is returned.
func (r *Resolver) Resolve(b *Body, dt float64) (Contact, error) {
	if dt <= 0 || (b.DX == 0 && b.DY == 0) {
		return NoContact(), nil
	}

	hx, hy := miss, miss
	var err error
	if b.DX != 0 {
		if hx, err = r.sweepX(b, dt); err != nil {
			return NoContact(), err
		}
	}
	if b.DY != 0 {
		if hy, err = r.sweepY(b, dt); err != nil {
			return NoContact(), err
		}
	}

	h := earliest(hx, hy, b.DX, b.DY)
	if !h.found() {
		return NoContact(), nil
	}

	if h.normal.X != 0 {
		b.DX = gamemath.TruncateToward(b.DX, h.t)
	} else {
		b.DY = gamemath.TruncateToward(b.DY, h.t)
	}
	return Contact{TimeToImpact: h.t * dt, Normal: h.normal}, nil
}

// ResolveAll resolves up to two contacts. The second pass picks up the other
// axis once the first contact has cut one velocity component, which is what
// lets a diagonal move land on a floor and stop at a wall in the same step.
func (r *Resolver) ResolveAll(b *Body, dt float64) (Contacts, error) {
	var cs Contacts
	for i := 0; i < maxPasses; i++ {
		c, err := r.Resolve(b, dt)
		if err != nil {
			return cs, err
		}
		if !c.Found() {
			break
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// earliest picks the sooner of the per-axis hits. Equal times on both axes
// mean a concave corner; the faster axis wins, and vertical wins a full tie.
func earliest(hx, hy hit, dx, dy float64) hit {
	switch {
	case !hx.found():
		return hy
	case !hy.found():
		return hx
	case hx.t < hy.t:
		return hx
	case hy.t < hx.t:
		return hy
	case math.Abs(dx) > math.Abs(dy):
		return hx
	default:
		return hy
	}
}

// sweepX tests the leading vertical side against the near edges of solid
// cells ahead of it.
func (r *Resolver) sweepX(b *Body, dt float64) (hit, error) {
	cw, ch := r.Grid.CellWidth(), r.Grid.CellHeight()

	x, step, normal := b.Right(), 1, gamemath.NormalLeft
	if b.DX < 0 {
		x, step, normal = b.Left(), -1, gamemath.NormalRight
	}
	reach := r.reach(b.DX*dt, cw)

	best := miss
	for _, y := range probes(b.Top(), b.Bottom(), ch) {
		p := gamemath.Point{X: x, Y: y}
		col0 := cellIndex(p.X, cw)
		rowA, rowB := span(p.Y, p.Y+b.DY*dt, ch)

		for i := 0; i < reach; i++ {
			col := col0 + i*step
			ex := float64(col) * cw
			if step < 0 {
				ex += cw
			}
			for row := rowA; row <= rowB; row++ {
				if !r.Grid.IsSolid(col, row) || (row > rowA && r.Grid.IsSolid(col, row-1)) {
					continue
				}
				top, bottom := r.columnRun(col, row)
				t, err := gamemath.IntersectVertical(p, b.DX, b.DY, dt, gamemath.VerticalEdge(ex, top*ch, bottom*ch))
				if err != nil {
					return miss, fmt.Errorf("sweep x at col %d row %d: %w", col, row, err)
				}
				if t >= 0 && (!best.found() || t < best.t) {
					best = hit{t: t, normal: normal}
				}
			}
		}
	}
	return best, nil
}

// sweepY mirrors sweepX for the leading horizontal side.
func (r *Resolver) sweepY(b *Body, dt float64) (hit, error) {
	cw, ch := r.Grid.CellWidth(), r.Grid.CellHeight()

	y, step, normal := b.Bottom(), 1, gamemath.NormalUp
	if b.DY < 0 {
		y, step, normal = b.Top(), -1, gamemath.NormalDown
	}
	reach := r.reach(b.DY*dt, ch)

	best := miss
	for _, x := range probes(b.Left(), b.Right(), cw) {
		p := gamemath.Point{X: x, Y: y}
		row0 := cellIndex(p.Y, ch)
		colA, colB := span(p.X, p.X+b.DX*dt, cw)

		for i := 0; i < reach; i++ {
			row := row0 + i*step
			ey := float64(row) * ch
			if step < 0 {
				ey += ch
			}
			for col := colA; col <= colB; col++ {
				if !r.Grid.IsSolid(col, row) || (col > colA && r.Grid.IsSolid(col-1, row)) {
					continue
				}
				left, right := r.rowRun(col, row)
				t, err := gamemath.IntersectHorizontal(p, b.DX, b.DY, dt, gamemath.HorizontalEdge(ey, left*cw, right*cw))
				if err != nil {
					return miss, fmt.Errorf("sweep y at col %d row %d: %w", col, row, err)
				}
				if t >= 0 && (!best.found() || t < best.t) {
					best = hit{t: t, normal: normal}
				}
			}
		}
	}
	return best, nil
}

// reach is the number of cells to scan: the configured radius, widened when
// the step travels further than it covers.
func (r *Resolver) reach(travel, cell float64) int {
	n := r.Radius
	if n <= 0 {
		n = DefaultRadius
	}
	if need := int(math.Ceil(math.Abs(travel)/cell)) + 1; need > n {
		n = need
	}
	return n
}

// columnRun returns the row extent [top, bottom) of the run of solid cells in
// col that contains row. Adjacent solid cells form one edge so a probe
// crossing exactly on the seam between them still hits.
func (r *Resolver) columnRun(col, row int) (top, bottom float64) {
	r0, r1 := row, row
	for r.Grid.IsSolid(col, r0-1) {
		r0--
	}
	for r.Grid.IsSolid(col, r1+1) {
		r1++
	}
	return float64(r0), float64(r1 + 1)
}

func (r *Resolver) rowRun(col, row int) (left, right float64) {
	c0, c1 := col, col
	for r.Grid.IsSolid(c0-1, row) {
		c0--
	}
	for r.Grid.IsSolid(c1+1, row) {
		c1++
	}
	return float64(c0), float64(c1 + 1)
}

// probes places points along a side from lo to hi, inset from both ends and
// no further apart than one cell so no row or column is skipped.
func probes(lo, hi, cell float64) []float64 {
	lo, hi = lo+probeInset, hi-probeInset
	if hi <= lo {
		return []float64{(lo + hi) / 2}
	}
	ps := []float64{lo}
	for v := lo + cell; v < hi; v += cell {
		ps = append(ps, v)
	}
	return append(ps, hi)
}

func cellIndex(v, cell float64) int {
	return int(math.Floor(v / cell))
}

// span returns the cell range covering a and b in ascending order.
func span(a, b, cell float64) (int, int) {
	i, j := cellIndex(a, cell), cellIndex(b, cell)
	if i > j {
		i, j = j, i
	}
	return i, j
}
