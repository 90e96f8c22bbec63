// Package world provides the 2D grid primitives the dungeon is built from.
package world

// CellType is the content of a single grid cell. The rune values double as
// the compact text form used by dumps and the remote adapter.
type CellType rune

// Cell types. The set is closed.
const (
	Empty        CellType = '.'
	Wall         CellType = '#'
	Player       CellType = '@'
	Enemy        CellType = 'E'
	HealthPotion CellType = '+'
	Exit         CellType = 'X'
	Trap         CellType = '^'
	Coin         CellType = '$'
	Explored     CellType = ' '
)

// AllCellTypes returns every cell type in legend order
func AllCellTypes() []CellType {
	return []CellType{Empty, Wall, Player, Enemy, HealthPotion, Exit, Trap, Coin, Explored}
}

// IsValid returns true if t is one of the known cell types
func (t CellType) IsValid() bool {
	switch t {
	case Empty, Wall, Player, Enemy, HealthPotion, Exit, Trap, Coin, Explored:
		return true
	default:
		return false
	}
}

// IsPassable returns true for everything except walls
func (t CellType) IsPassable() bool {
	return t != Wall
}

// Rune returns the compact text form of the cell
func (t CellType) Rune() rune {
	return rune(t)
}

// String returns the name of the cell type
func (t CellType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Player:
		return "Player"
	case Enemy:
		return "Enemy"
	case HealthPotion:
		return "HealthPotion"
	case Exit:
		return "Exit"
	case Trap:
		return "Trap"
	case Coin:
		return "Coin"
	case Explored:
		return "Explored"
	default:
		return "Unknown"
	}
}

// Symbol returns the display glyph used by graphical frontends
func (t CellType) Symbol() string {
	switch t {
	case Empty:
		return "·"
	case Wall:
		return "■"
	case Player:
		return "@"
	case Enemy:
		return "👹"
	case HealthPotion:
		return "❤️"
	case Exit:
		return "🚪"
	case Trap:
		return "⚡"
	case Coin:
		return "💰"
	default:
		return " "
	}
}

// Title returns the translation key describing the cell (tooltip / legend text)
func (t CellType) Title() string {
	switch t {
	case Empty:
		return "CELL_EMPTY"
	case Wall:
		return "CELL_WALL"
	case Player:
		return "CELL_PLAYER"
	case Enemy:
		return "CELL_ENEMY"
	case HealthPotion:
		return "CELL_HEALTH"
	case Exit:
		return "CELL_EXIT"
	case Trap:
		return "CELL_TRAP"
	case Coin:
		return "CELL_COIN"
	case Explored:
		return "CELL_EXPLORED"
	default:
		return "CELL_UNKNOWN"
	}
}

// ParseCellType converts a compact rune back into a cell type
func ParseCellType(r rune) (CellType, bool) {
	t := CellType(r)
	return t, t.IsValid()
}
