package collision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/ninja/shared/gamemath"
	"github.com/automoto/ninja/shared/leveldata"
)

// gridOf builds a 32x32-cell grid from rows of '#' (solid) and '.' (empty).
func gridOf(t *testing.T, rows ...string) *leveldata.Grid {
	t.Helper()
	src, err := leveldata.NewMemorySource(32, 32, leveldata.SolidTiles(), leveldata.ParseRows(rows...))
	require.NoError(t, err)
	return leveldata.NewGrid(src)
}

// floorGrid is 10x10 with only the bottom row solid.
func floorGrid(t *testing.T) *leveldata.Grid {
	rows := make([]string, 10)
	for i := range rows {
		rows[i] = strings.Repeat(".", 10)
	}
	rows[9] = strings.Repeat("#", 10)
	return gridOf(t, rows...)
}

// cornerGrid is 12x10 with a solid bottom row and a wall in column 10.
func cornerGrid(t *testing.T) *leveldata.Grid {
	rows := make([]string, 10)
	for i := range rows {
		rows[i] = strings.Repeat(".", 10) + "#."
	}
	rows[9] = strings.Repeat("#", 12)
	return gridOf(t, rows...)
}

func TestResolveLandsOnFloor(t *testing.T) {
	r := NewResolver(floorGrid(t))
	b := &Body{X: 100, Y: 0, W: 42, H: 50, DY: 500}
	const dt = 0.1

	c := NoContact()
	for frame := 0; frame < 10 && !c.Found(); frame++ {
		var err error
		c, err = r.Resolve(b, dt)
		require.NoError(t, err)
		b.Integrate(dt)
	}

	require.True(t, c.Found())
	assert.Equal(t, gamemath.NormalUp, c.Normal)
	assert.InDelta(t, 0.076, c.TimeToImpact, 1e-12)
	assert.Equal(t, 380.0, b.DY)
	assert.InDelta(t, 288.0, b.Bottom(), 1e-9)
}

func TestResolveStopsAtWall(t *testing.T) {
	r := NewResolver(cornerGrid(t))
	b := &Body{X: 258, Y: 200, W: 42, H: 50, DX: 500}

	c, err := r.Resolve(b, 0.1)
	require.NoError(t, err)

	require.True(t, c.Found())
	assert.Equal(t, gamemath.NormalLeft, c.Normal)
	assert.Equal(t, 200.0, b.DX)
	assert.Equal(t, 0.0, b.DY)

	b.Integrate(0.1)
	assert.InDelta(t, 320.0, b.Right(), 1e-9)
}

func TestResolveMovingLeft(t *testing.T) {
	r := NewResolver(gridOf(t,
		"..#.....",
		"..#.....",
		"..#.....",
	))
	b := &Body{X: 110, Y: 10, W: 20, H: 40, DX: -280}

	c, err := r.Resolve(b, 0.1)
	require.NoError(t, err)
	assert.Equal(t, gamemath.NormalRight, c.Normal)
	assert.InDelta(t, 0.05, c.TimeToImpact, 1e-12)
	assert.Equal(t, -140.0, b.DX)
}

func TestResolveCeiling(t *testing.T) {
	r := NewResolver(gridOf(t,
		"....",
		"####",
		"....",
		"....",
		"....",
	))
	b := &Body{X: 40, Y: 80, W: 20, H: 30, DY: -320}

	c, err := r.Resolve(b, 0.1)
	require.NoError(t, err)
	assert.Equal(t, gamemath.NormalDown, c.Normal)
	assert.Equal(t, -160.0, b.DY)
}

func TestResolveRestingOnFloor(t *testing.T) {
	r := NewResolver(floorGrid(t))

	for _, x := range []float64{0, 13.5, 96, 100, 250} {
		for _, dt := range []float64{0.001, 1.0 / 60, 0.1} {
			b := &Body{X: x, Y: 288 - 50, W: 42, H: 50, DY: 3000 * dt}

			c, err := r.Resolve(b, dt)
			require.NoError(t, err)
			assert.True(t, c.Found(), "x=%v dt=%v", x, dt)
			assert.Equal(t, 0.0, c.TimeToImpact)
			assert.Equal(t, gamemath.NormalUp, c.Normal)
			assert.True(t, c.OnFloor(0))
			assert.Equal(t, 0.0, b.DY)
		}
	}
}

func TestResolveNoContactLeavesVelocity(t *testing.T) {
	r := NewResolver(floorGrid(t))

	tests := []struct {
		name string
		body Body
		dt   float64
	}{
		{"floor beyond radius", Body{X: 100, Y: 0, W: 42, H: 50, DY: 100}, 0.1},
		{"rising", Body{X: 100, Y: 200, W: 42, H: 50, DX: 300, DY: -400}, 0.016},
		{"sideways in the open", Body{X: 100, Y: 100, W: 42, H: 50, DX: -600}, 0.05},
		{"leaving the grid", Body{X: 0, Y: 0, W: 42, H: 50, DX: -600, DY: -600}, 0.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.body
			c, err := r.Resolve(&b, tc.dt)
			require.NoError(t, err)
			assert.False(t, c.Found())
			assert.Equal(t, NoContact(), c)
			assert.Equal(t, tc.body, b)
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r := NewResolver(floorGrid(t))

	tests := []struct {
		bottom, dy, dt float64
	}{
		{250, 500, 0.1},
		{251.3, 500, 0.1},
		{260.7, 500, 0.1},
		{287.5, 500, 0.016},
		{270, 2000, 0.016},
	}

	for _, tc := range tests {
		b := &Body{X: 100, W: 42, H: 50, DY: tc.dy}
		b.SetBottom(tc.bottom)

		first, err := r.Resolve(b, tc.dt)
		require.NoError(t, err)
		require.True(t, first.Found(), "bottom=%v", tc.bottom)
		truncated := b.DY

		second, err := r.Resolve(b, tc.dt)
		require.NoError(t, err)
		if second.Found() {
			assert.GreaterOrEqual(t, second.TimeToImpact, first.TimeToImpact, "bottom=%v", tc.bottom)
		}
		assert.Equal(t, truncated, b.DY)

		b.Integrate(tc.dt)
		assert.LessOrEqual(t, b.Bottom(), 288.0+1e-9)
	}
}

func TestResolveWideBodyHitsMiddleCell(t *testing.T) {
	r := NewResolver(gridOf(t,
		"..........",
		"..........",
		"..........",
		".....#....",
	))
	b := &Body{X: 130, W: 100, H: 50, DY: 500}
	b.SetBottom(78)

	c, err := r.Resolve(b, 0.1)
	require.NoError(t, err)
	require.True(t, c.Found())
	assert.Equal(t, gamemath.NormalUp, c.Normal)
	assert.InDelta(t, 0.036, c.TimeToImpact, 1e-12)
}

func TestResolveWidensRadiusForLongSteps(t *testing.T) {
	r := &Resolver{Grid: floorGrid(t), Radius: 3}
	b := &Body{X: 100, Y: 0, W: 42, H: 50, DY: 3000}

	c, err := r.Resolve(b, 0.1)
	require.NoError(t, err)
	require.True(t, c.Found())
	assert.Equal(t, gamemath.NormalUp, c.Normal)

	b.Integrate(0.1)
	assert.InDelta(t, 288.0, b.Bottom(), 1e-9)
}

func TestResolveConcaveCorner(t *testing.T) {
	t.Run("faster axis wins a tie", func(t *testing.T) {
		r := NewResolver(cornerGrid(t))
		b := &Body{W: 42, H: 50, DX: 600, DY: 500}
		b.SetRight(296)
		b.SetBottom(268)

		c, err := r.Resolve(b, 0.1)
		require.NoError(t, err)
		assert.Equal(t, gamemath.NormalLeft, c.Normal)
		assert.Equal(t, 240.0, b.DX)
		assert.Equal(t, 500.0, b.DY)
	})

	t.Run("vertical wins a full tie", func(t *testing.T) {
		r := NewResolver(cornerGrid(t))
		b := &Body{W: 42, H: 50, DX: 500, DY: 500}
		b.SetRight(300)
		b.SetBottom(268)

		c, err := r.Resolve(b, 0.1)
		require.NoError(t, err)
		assert.Equal(t, gamemath.NormalUp, c.Normal)
	})

	t.Run("second pass resolves the other axis", func(t *testing.T) {
		r := NewResolver(cornerGrid(t))
		b := &Body{W: 42, H: 50, DX: 600, DY: 500}
		b.SetRight(296)
		b.SetBottom(268)

		cs, err := r.ResolveAll(b, 0.1)
		require.NoError(t, err)
		require.Len(t, cs, 2)
		assert.True(t, cs.Has(gamemath.NormalLeft))
		assert.True(t, cs.Has(gamemath.NormalUp))
		assert.Equal(t, 240.0, b.DX)
		assert.Equal(t, 200.0, b.DY)

		b.Integrate(0.1)
		assert.InDelta(t, 320.0, b.Right(), 1e-9)
		assert.InDelta(t, 288.0, b.Bottom(), 1e-9)
	})
}

func TestResolveSmallestTimeWins(t *testing.T) {
	// The ledge under the right half is reached before the floor.
	r := NewResolver(gridOf(t,
		"......",
		"......",
		"....#.",
		"######",
	))
	b := &Body{X: 100, W: 40, H: 20, DX: 100, DY: 400}
	b.SetBottom(60)

	c, err := r.Resolve(b, 0.1)
	require.NoError(t, err)
	require.True(t, c.Found())
	assert.Equal(t, gamemath.NormalUp, c.Normal)
	assert.InDelta(t, 0.01, c.TimeToImpact, 1e-12)
}

func TestResolveIgnoresDegenerateSteps(t *testing.T) {
	r := NewResolver(floorGrid(t))

	b := &Body{X: 100, Y: 238, W: 42, H: 50}
	c, err := r.Resolve(b, 0.1)
	require.NoError(t, err)
	assert.False(t, c.Found())

	b.DY = 100
	c, err = r.Resolve(b, 0)
	require.NoError(t, err)
	assert.False(t, c.Found())
	assert.Equal(t, 100.0, b.DY)
}

func TestContacts(t *testing.T) {
	floor := Contact{TimeToImpact: 0, Normal: gamemath.NormalUp}
	landing := Contact{TimeToImpact: 0.05, Normal: gamemath.NormalUp}
	wall := Contact{TimeToImpact: 0, Normal: gamemath.NormalLeft}

	assert.True(t, floor.OnFloor(0.001))
	assert.False(t, landing.OnFloor(0.001))
	assert.False(t, wall.OnFloor(0.001))
	assert.False(t, NoContact().OnFloor(1))

	assert.True(t, Contacts{wall, floor}.OnFloor(0.001))
	assert.False(t, Contacts{wall}.OnFloor(0.001))
	assert.Equal(t, NoContact(), Contacts(nil).First())
	assert.Equal(t, "none", NoContact().String())

	// A zero Contact carries no surface, so it is not a hit.
	assert.False(t, Contact{}.Found())
	assert.False(t, Contacts{{}}.Has(gamemath.Vec{}))
	assert.False(t, Contacts{{}}.OnFloor(1))
}
