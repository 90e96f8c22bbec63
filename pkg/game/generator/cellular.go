package generator

import (
	"dungeondaily/pkg/engine/rng"
	"dungeondaily/pkg/engine/world"
)

// CellularGenerator builds a cave-like maze: a solid border, random interior
// walls, then several cellular-automata smoothing passes.
type CellularGenerator struct {
	Size             int
	WallChance       float64 // interior cell becomes Wall when its draw is below this
	SmoothingPasses  int
	SurviveThreshold int // a Wall with at least this many wall neighbours stays
	BirthThreshold   int // an Empty cell with at least this many wall neighbours fills in
}

// NewCellularGenerator returns the generator used for the daily dungeon
func NewCellularGenerator() *CellularGenerator {
	return &CellularGenerator{
		Size:             world.DefaultSize,
		WallChance:       0.3,
		SmoothingPasses:  3,
		SurviveThreshold: 4,
		BirthThreshold:   5,
	}
}

// Name returns the generator name
func (c *CellularGenerator) Name() string {
	return "Cellular"
}

// Generate draws exactly one value per interior cell, in row-major order,
// and returns a grid containing only Empty and Wall cells.
func (c *CellularGenerator) Generate(r *rng.LCG) *world.Grid {
	grid := world.NewGrid(c.Size)

	// Border walls
	grid.ForEachCell(func(p world.Position, _ world.CellType) {
		if grid.IsOnPerimeter(p) {
			grid.Set(p, world.Wall)
		}
	})

	// Random interior walls
	c.forEachInterior(grid, func(p world.Position) {
		if r.Next() < c.WallChance {
			grid.Set(p, world.Wall)
		}
	})

	for i := 0; i < c.SmoothingPasses; i++ {
		grid = c.smooth(grid)
	}

	return grid
}

// smooth runs one automata pass. Neighbour counts are read from the previous
// grid only, never from cells already rewritten in this pass.
func (c *CellularGenerator) smooth(prev *world.Grid) *world.Grid {
	next := prev.Clone()

	c.forEachInterior(prev, func(p world.Position) {
		walls := prev.CountNeighbors(p, world.Wall)
		if prev.Is(p, world.Wall) {
			if walls < c.SurviveThreshold {
				next.Set(p, world.Empty)
			}
			return
		}
		if walls >= c.BirthThreshold {
			next.Set(p, world.Wall)
		}
	})

	return next
}

func (c *CellularGenerator) forEachInterior(grid *world.Grid, fn func(p world.Position)) {
	n := grid.Size()
	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			fn(world.Pos(x, y))
		}
	}
}
