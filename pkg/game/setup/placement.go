package setup

import (
	"errors"
	"fmt"

	"dungeondaily/pkg/engine/rng"
	"dungeondaily/pkg/engine/world"
)

// MaxPlacementAttempts bounds the rejection sampling loop of one category
const MaxPlacementAttempts = 10000

var (
	// ErrNoFreeCell is returned when the player or exit has nowhere to go
	ErrNoFreeCell = errors.New("no free cell")
	// ErrPlacementExhausted is returned when a category cannot be fully placed
	ErrPlacementExhausted = errors.New("placement attempts exhausted")
)

// CountRange describes a random count: floor(draw*Span) + Min
type CountRange struct {
	Min  int
	Span int
}

// Draw takes one value from r and returns a count in [Min, Min+Span-1]
func (c CountRange) Draw(r *rng.LCG) int {
	return r.Intn(c.Span) + c.Min
}

// Max returns the largest count Draw can return
func (c CountRange) Max() int {
	return c.Min + c.Span - 1
}

// Category is a kind of entity scattered over the interior
type Category struct {
	Name  string
	Cell  world.CellType
	Count CountRange
}

// Scattered entity categories in placement order
var (
	Enemies       = Category{Name: "enemies", Cell: world.Enemy, Count: CountRange{Min: 3, Span: 3}}
	HealthPotions = Category{Name: "health potions", Cell: world.HealthPotion, Count: CountRange{Min: 2, Span: 2}}
	Traps         = Category{Name: "traps", Cell: world.Trap, Count: CountRange{Min: 3, Span: 3}}
	Coins         = Category{Name: "coins", Cell: world.Coin, Count: CountRange{Min: 5, Span: 4}}
)

// PlacementOrder is the order categories draw from the stream
var PlacementOrder = []Category{Enemies, HealthPotions, Traps, Coins}

// PlacePlayer puts the player on the first Empty cell of the top-left 3x3
// interior block, falling back to the first Empty interior cell.
func PlacePlayer(grid *world.Grid) (world.Position, error) {
	n := grid.Size()
	p, ok := firstEmpty(grid, 1, 3, 1, 3)
	if !ok {
		p, ok = firstEmpty(grid, 1, n-2, 1, n-2)
	}
	if !ok {
		return world.Position{}, fmt.Errorf("placing player: %w", ErrNoFreeCell)
	}
	grid.Set(p, world.Player)
	return p, nil
}

// PlaceExit puts the exit on the first Empty cell of the bottom-right 3x3
// interior block, falling back to a reverse row-major scan of the interior.
func PlaceExit(grid *world.Grid) (world.Position, error) {
	n := grid.Size()
	p, ok := firstEmpty(grid, n-4, n-2, n-4, n-2)
	if !ok {
		p, ok = lastEmpty(grid, 1, n-2, 1, n-2)
	}
	if !ok {
		return world.Position{}, fmt.Errorf("placing exit: %w", ErrNoFreeCell)
	}
	grid.Set(p, world.Exit)
	return p, nil
}

// firstEmpty scans rows y0..y1 and columns x0..x1 (inclusive) row-major
func firstEmpty(grid *world.Grid, y0, y1, x0, x1 int) (world.Position, bool) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := world.Pos(x, y)
			if grid.Is(p, world.Empty) {
				return p, true
			}
		}
	}
	return world.Position{}, false
}

// lastEmpty scans rows y1..y0 and columns x1..x0 (inclusive), both descending
func lastEmpty(grid *world.Grid, y0, y1, x0, x1 int) (world.Position, bool) {
	for y := y1; y >= y0; y-- {
		for x := x1; x >= x0; x-- {
			p := world.Pos(x, y)
			if grid.Is(p, world.Empty) {
				return p, true
			}
		}
	}
	return world.Position{}, false
}

// randomInterior draws x then y, each uniform over the interior
func randomInterior(grid *world.Grid, r *rng.LCG) world.Position {
	span := grid.Size() - 2
	x := r.Intn(span) + 1
	y := r.Intn(span) + 1
	return world.Pos(x, y)
}

// hasEmptyInterior reports whether any interior cell is still Empty
func hasEmptyInterior(grid *world.Grid) bool {
	n := grid.Size()
	_, ok := firstEmpty(grid, 1, n-2, 1, n-2)
	return ok
}

// PlaceScattered draws count's value from r, then places that many entities
// by rejection sampling: every attempt draws a coordinate pair and only Empty
// cells are accepted. place performs the write and reports success.
// Returns the number placed.
func PlaceScattered(grid *world.Grid, r *rng.LCG, cat Category, place func(p world.Position) bool) (int, error) {
	want := cat.Count.Draw(r)

	placed := 0
	for attempts := 0; placed < want; attempts++ {
		if attempts >= MaxPlacementAttempts || !hasEmptyInterior(grid) {
			return placed, fmt.Errorf("placing %s: %d of %d after %d attempts: %w",
				cat.Name, placed, want, attempts, ErrPlacementExhausted)
		}

		p := randomInterior(grid, r)
		if !grid.Is(p, world.Empty) {
			continue
		}
		if place(p) {
			placed++
		}
	}

	return placed, nil
}

// setCell returns a place function that writes a plain cell type
func setCell(grid *world.Grid, t world.CellType) func(p world.Position) bool {
	return func(p world.Position) bool {
		return grid.Set(p, t)
	}
}
