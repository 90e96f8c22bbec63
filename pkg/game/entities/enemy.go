// Package entities holds the tracked enemies and the single mutation path
// that keeps them in step with the grid.
package entities

import (
	"github.com/zyedidia/generic/mapset"

	"dungeondaily/pkg/engine/world"
)

// Enemy is a tracked enemy. Its grid cell is normally world.Enemy.
type Enemy struct {
	ID       int // spawn order, stable for the life of the game
	Position world.Position
}

// Roster is the ordered list of tracked enemies. All enemy writes to the
// grid go through it so the list and the grid change together.
type Roster struct {
	enemies []*Enemy
	nextID  int
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{}
}

// Spawn places a new enemy at p if the cell is Empty.
// Returns nil if the cell is not available.
func (r *Roster) Spawn(grid *world.Grid, p world.Position) *Enemy {
	if !grid.Is(p, world.Empty) {
		return nil
	}

	grid.Set(p, world.Enemy)
	e := &Enemy{ID: r.nextID, Position: p}
	r.nextID++
	r.enemies = append(r.enemies, e)
	return e
}

// MoveTo moves a tracked enemy: its current cell becomes Empty, then the
// target cell becomes Enemy. The caller decides whether the move is legal.
func (r *Roster) MoveTo(grid *world.Grid, e *Enemy, to world.Position) {
	grid.Set(e.Position, world.Empty)
	grid.Set(to, world.Enemy)
	e.Position = to
}

// RemoveAt stops tracking every enemy at p. The grid is left alone: the
// caller is about to overwrite the cell. Returns how many were removed.
func (r *Roster) RemoveAt(p world.Position) int {
	kept := r.enemies[:0]
	removed := 0
	for _, e := range r.enemies {
		if e.Position == p {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so removed enemies can be collected
	for i := len(kept); i < len(r.enemies); i++ {
		r.enemies[i] = nil
	}
	r.enemies = kept
	return removed
}

// At returns the first tracked enemy at p
func (r *Roster) At(p world.Position) *Enemy {
	for _, e := range r.enemies {
		if e.Position == p {
			return e
		}
	}
	return nil
}

// All returns the tracked enemies in list order. The slice is a copy but the
// enemies are shared.
func (r *Roster) All() []*Enemy {
	return append([]*Enemy(nil), r.enemies...)
}

// Positions returns the tracked enemy positions in list order
func (r *Roster) Positions() []world.Position {
	out := make([]world.Position, len(r.enemies))
	for i, e := range r.enemies {
		out[i] = e.Position
	}
	return out
}

// Len returns the number of tracked enemies
func (r *Roster) Len() int {
	return len(r.enemies)
}

// Orphans returns tracked enemies whose grid cell is no longer Enemy
func (r *Roster) Orphans(grid *world.Grid) []*Enemy {
	var out []*Enemy
	for _, e := range r.enemies {
		if !grid.Is(e.Position, world.Enemy) {
			out = append(out, e)
		}
	}
	return out
}

// Untracked returns Enemy cells with no tracked enemy on them, row-major
func (r *Roster) Untracked(grid *world.Grid) []world.Position {
	tracked := mapset.New[world.Position]()
	for _, e := range r.enemies {
		tracked.Put(e.Position)
	}

	var out []world.Position
	grid.ForEachCell(func(p world.Position, c world.CellType) {
		if c == world.Enemy && !tracked.Has(p) {
			out = append(out, p)
		}
	})
	return out
}

// Consistent reports whether the roster and grid agree exactly
func (r *Roster) Consistent(grid *world.Grid) bool {
	return len(r.Orphans(grid)) == 0 && len(r.Untracked(grid)) == 0
}

// Clone returns a deep copy of the roster
func (r *Roster) Clone() *Roster {
	c := &Roster{nextID: r.nextID, enemies: make([]*Enemy, len(r.enemies))}
	for i, e := range r.enemies {
		cp := *e
		c.enemies[i] = &cp
	}
	return c
}
