package setup

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"dungeondaily/pkg/engine/world"
)

// ErrUnsolvable is returned when the exit cannot be reached even after repair
var ErrUnsolvable = errors.New("dungeon is not solvable")

// pathNode is an entry in the A* open set
type pathNode struct {
	pos world.Position
	g   int // steps from the start
	f   int // g + Manhattan distance to the goal
	seq int // insertion order, breaks ties on f
}

// FindPath runs A* over 4-neighbour moves with unit cost. Walls are
// impassable, every other cell is passable. The returned path excludes start
// and includes end. ok is false when no path exists.
func FindPath(grid *world.Grid, start, end world.Position) (path []world.Position, ok bool) {
	if !grid.IsValidPosition(start) || !grid.IsValidPosition(end) {
		return nil, false
	}

	open := heap.New[pathNode](func(a, b pathNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})
	closed := mapset.New[world.Position]()
	best := map[world.Position]int{start: 0}
	parent := make(map[world.Position]world.Position)

	seq := 0
	open.Push(pathNode{pos: start, g: 0, f: start.Manhattan(end), seq: seq})

	for open.Size() > 0 {
		current, _ := open.Pop()

		// Stale entry for a node already expanded via a cheaper route
		if closed.Has(current.pos) {
			continue
		}

		if current.pos == end {
			return buildPath(parent, start, end), true
		}

		closed.Put(current.pos)

		for _, n := range grid.PassableNeighbors(current.pos) {
			if closed.Has(n) {
				continue
			}

			g := current.g + 1
			if known, seen := best[n]; seen && g >= known {
				continue
			}

			best[n] = g
			parent[n] = current.pos
			seq++
			open.Push(pathNode{pos: n, g: g, f: g + n.Manhattan(end), seq: seq})
		}
	}

	return nil, false
}

// buildPath walks parent links back from end
func buildPath(parent map[world.Position]world.Position, start, end world.Position) []world.Position {
	var path []world.Position
	for p := end; p != start; p = parent[p] {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Reachable flood-fills from start over passable cells and reports whether
// end was reached. It shares no code with FindPath so it can check it.
func Reachable(grid *world.Grid, start, end world.Position) bool {
	if !grid.IsValidPosition(start) || grid.At(start) == world.Wall {
		return false
	}

	visited := mapset.New[world.Position]()
	visited.Put(start)
	queue := []world.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == end {
			return true
		}

		for _, dir := range world.AllDirections() {
			n := current.Step(dir)
			t, ok := grid.Get(n)
			if !ok || t == world.Wall || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	return false
}

// CarveCorridor clears an L-shaped corridor: the walls on start's row between
// the two columns, then the walls on end's column between the two rows.
// Returns how many walls were removed.
func CarveCorridor(grid *world.Grid, start, end world.Position) int {
	cleared := 0

	for x := min(start.X, end.X); x <= max(start.X, end.X); x++ {
		p := world.Pos(x, start.Y)
		if grid.Is(p, world.Wall) {
			grid.Set(p, world.Empty)
			cleared++
		}
	}

	for y := min(start.Y, end.Y); y <= max(start.Y, end.Y); y++ {
		p := world.Pos(end.X, y)
		if grid.Is(p, world.Wall) {
			grid.Set(p, world.Empty)
			cleared++
		}
	}

	return cleared
}

// EnsureSolvable makes sure the exit can be reached from player. If A* finds
// no path an L-shaped corridor is carved, then reachability is checked again
// by flood fill. repaired reports whether the grid was changed.
func EnsureSolvable(grid *world.Grid, player world.Position) (repaired bool, err error) {
	exit, ok := grid.Find(world.Exit)
	if !ok {
		return false, fmt.Errorf("checking solvability: no exit: %w", ErrUnsolvable)
	}

	if _, ok := FindPath(grid, player, exit); ok {
		return false, nil
	}

	CarveCorridor(grid, player, exit)

	if !Reachable(grid, player, exit) {
		return true, fmt.Errorf("exit %v unreachable from %v after repair: %w", exit, player, ErrUnsolvable)
	}
	return true, nil
}
