package world

import (
	"fmt"
	"strings"
)

// DefaultSize is the width and height of the daily dungeon
const DefaultSize = 10

// Position is a grid coordinate. X is the column, Y is the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos is shorthand for Position{X: x, Y: y}
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Step returns the position one cell away in the given direction
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance between two positions
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is the square dungeon map with encapsulated cell storage
type Grid struct {
	size  int
	cells [][]CellType // indexed [y][x]
}

// NewGrid creates a size x size grid filled with Empty cells
func NewGrid(size int) *Grid {
	g := &Grid{}
	g.Build(size)
	return g
}

// ParseGrid builds a grid from rows of compact cell runes (see CellType).
// All rows must have the same length as the number of rows.
func ParseGrid(rows ...string) (*Grid, error) {
	g := NewGrid(len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != len(rows) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(runes), len(rows))
		}
		for x, r := range runes {
			t, ok := ParseCellType(r)
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown cell %q", y, x, r)
			}
			g.cells[y][x] = t
		}
	}
	return g, nil
}

// Build (re)initialises the grid with the given size, all cells Empty
func (g *Grid) Build(size int) {
	if size <= 0 {
		panic("Grid size must be positive")
	}

	g.size = size
	g.cells = make([][]CellType, size)
	for y := 0; y < size; y++ {
		g.cells[y] = make([]CellType, size)
		for x := 0; x < size; x++ {
			g.cells[y][x] = Empty
		}
	}
}

// Size returns the width (and height) of the grid
func (g *Grid) Size() int {
	return g.size
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// IsInterior checks if a position is inside the border ring
func (g *Grid) IsInterior(p Position) bool {
	return p.X >= 1 && p.X < g.size-1 && p.Y >= 1 && p.Y < g.size-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(p Position) bool {
	return g.IsValidPosition(p) && !g.IsInterior(p)
}

// Get returns the cell at p; ok is false when p is out of bounds
func (g *Grid) Get(p Position) (t CellType, ok bool) {
	if !g.IsValidPosition(p) {
		return Wall, false
	}
	return g.cells[p.Y][p.X], true
}

// At returns the cell at p, treating out-of-bounds positions as Wall
func (g *Grid) At(p Position) CellType {
	t, _ := g.Get(p)
	return t
}

// Is reports whether the in-bounds cell at p has type t
func (g *Grid) Is(p Position, t CellType) bool {
	got, ok := g.Get(p)
	return ok && got == t
}

// Set writes a cell. Returns false if p is out of bounds.
func (g *Grid) Set(p Position, t CellType) bool {
	if !g.IsValidPosition(p) {
		return false
	}
	g.cells[p.Y][p.X] = t
	return true
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(p Position, t CellType)) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			fn(Position{X: x, Y: y}, g.cells[y][x])
		}
	}
}

// Find returns the first cell of type t in row-major order
func (g *Grid) Find(t CellType) (Position, bool) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x] == t {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// Count returns how many cells have type t
func (g *Grid) Count(t CellType) int {
	n := 0
	g.ForEachCell(func(_ Position, c CellType) {
		if c == t {
			n++
		}
	})
	return n
}

// CountNeighbors counts the in-bounds cells of type t among the 8 neighbours of p
func (g *Grid) CountNeighbors(p Position, t CellType) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Is(Position{X: p.X + dx, Y: p.Y + dy}, t) {
				count++
			}
		}
	}
	return count
}

// PassableNeighbors returns the in-bounds, non-wall neighbours of p in
// Up, Right, Down, Left order
func (g *Grid) PassableNeighbors(p Position) []Position {
	var out []Position
	for _, dir := range AllDirections() {
		n := p.Step(dir)
		if t, ok := g.Get(n); ok && t.IsPassable() {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, cells: make([][]CellType, g.size)}
	for y := range g.cells {
		c.cells[y] = append([]CellType(nil), g.cells[y]...)
	}
	return c
}

// Equal reports whether two grids have the same size and cells
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.size != o.size {
		return false
	}
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Rows returns the grid as one string of compact runes per row
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	for y := 0; y < g.size; y++ {
		var sb strings.Builder
		for x := 0; x < g.size; x++ {
			sb.WriteRune(g.cells[y][x].Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the grid with one line per row
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Validate checks that the grid is a playable dungeon: exactly one player and one exit
func (g *Grid) Validate() error {
	if g.size <= 0 {
		return fmt.Errorf("grid has invalid size %d", g.size)
	}
	if n := g.Count(Player); n != 1 {
		return fmt.Errorf("grid has %d player cells, want 1", n)
	}
	if n := g.Count(Exit); n != 1 {
		return fmt.Errorf("grid has %d exit cells, want 1", n)
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
