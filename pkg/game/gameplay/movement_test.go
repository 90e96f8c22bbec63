package gameplay

import (
	"errors"
	"reflect"
	"testing"

	"dungeondaily/pkg/engine/rng"
	"dungeondaily/pkg/engine/world"
	"dungeondaily/pkg/game/setup"
	"dungeondaily/pkg/game/state"
)

// newTestGame builds a game from compact rows. Enemy cells are spawned
// through the roster in row-major order.
func newTestGame(t *testing.T, policy state.EnemyPolicy, rows ...string) *state.Game {
	t.Helper()
	grid, err := world.ParseGrid(rows...)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}

	g := state.NewGame(1, grid, policy)
	player, ok := grid.Find(world.Player)
	if !ok {
		t.Fatal("test grid has no player")
	}
	g.Player = player

	var enemies []world.Position
	grid.ForEachCell(func(p world.Position, c world.CellType) {
		if c == world.Enemy {
			enemies = append(enemies, p)
		}
	})
	for _, p := range enemies {
		grid.Set(p, world.Empty)
		if g.Enemies.Spawn(grid, p) == nil {
			t.Fatalf("could not spawn enemy at %v", p)
		}
	}
	return g
}

func mustGenerate(t *testing.T, seed int64, policy state.EnemyPolicy) *state.Game {
	t.Helper()
	g, err := GenerateDungeon(seed, policy)
	if err != nil {
		t.Fatalf("GenerateDungeon(%d): %v", seed, err)
	}
	return g
}

func TestApplyMove_WallIsNoop(t *testing.T) {
	g := newTestGame(t, state.PolicyCompat,
		"#####",
		"#@..#",
		"#.E.#",
		"#..X#",
		"#####",
	)
	before := g.Snapshot()

	for _, dir := range []world.Direction{world.Left, world.Up} {
		if got := ApplyMove(g, dir); got != MoveBlocked {
			t.Errorf("ApplyMove(%v) = %v, want blocked", dir, got)
		}
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Errorf("wall move changed state:\n%+v\nwant\n%+v", g.Snapshot(), before)
	}
}

func TestApplyMove_OutOfBoundsIsNoop(t *testing.T) {
	g := newTestGame(t, state.PolicyCompat,
		"@..",
		"...",
		"..X",
	)
	before := g.Snapshot()

	if got := ApplyMove(g, world.Left); got != MoveIgnored {
		t.Errorf("ApplyMove(Left) at the edge = %v, want ignored", got)
	}
	if got := ApplyMove(g, world.Up); got != MoveIgnored {
		t.Errorf("ApplyMove(Up) at the edge = %v, want ignored", got)
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("out of bounds move changed state")
	}
}

func TestApplyMove_Coin(t *testing.T) {
	g := newTestGame(t, state.PolicyCompat,
		"######",
		"#@$..#",
		"#....#",
		"#....#",
		"#...X#",
		"######",
	)

	if got := ApplyMove(g, world.Right); got != MoveCoin {
		t.Fatalf("ApplyMove(Right) = %v, want coin", got)
	}
	if g.Score != state.CoinValue || g.Moves != 1 {
		t.Errorf("score %d moves %d, want %d and 1", g.Score, g.Moves, state.CoinValue)
	}
	if g.Player != world.Pos(2, 1) || g.Grid.At(world.Pos(2, 1)) != world.Player {
		t.Errorf("player at %v, cell %v", g.Player, g.Grid.At(world.Pos(2, 1)))
	}
	if got := g.Grid.At(world.Pos(1, 1)); got != world.Explored {
		t.Errorf("previous cell = %v, want explored", got)
	}
}

func TestApplyMove_HealthPotion(t *testing.T) {
	tests := []struct {
		health int
		want   int
	}{
		{1, 2},
		{2, 3},
		{3, 3},
	}

	for _, tt := range tests {
		g := newTestGame(t, state.PolicyCompat,
			"#####",
			"#@+.#",
			"#...#",
			"#..X#",
			"#####",
		)
		g.Health = tt.health

		if got := ApplyMove(g, world.Right); got != MoveHealed {
			t.Errorf("ApplyMove onto potion = %v, want healed", got)
		}
		if g.Health != tt.want {
			t.Errorf("health %d after potion = %d, want %d", tt.health, g.Health, tt.want)
		}
		if g.Moves != 1 {
			t.Errorf("moves = %d, want 1", g.Moves)
		}
	}
}

func TestApplyMove_TrapDamagesAndRelocates(t *testing.T) {
	g := newTestGame(t, state.PolicyCompat,
		"#####",
		"#@..#",
		"#^..#",
		"#..X#",
		"#####",
	)

	if got := ApplyMove(g, world.Down); got != MoveDamaged {
		t.Fatalf("ApplyMove onto trap = %v, want damaged", got)
	}
	if g.Health != state.InitialHealth-1 || g.Moves != 1 || g.Player != world.Pos(1, 2) {
		t.Errorf("health %d moves %d player %v", g.Health, g.Moves, g.Player)
	}
	if g.Grid.Count(world.Trap) != 0 {
		t.Error("the player should overwrite the trap cell")
	}
}

func TestApplyMove_DefeatFreezesState(t *testing.T) {
	g := newTestGame(t, state.PolicyCompat,
		"######",
		"#@^..#",
		"#....#",
		"#....#",
		"#..EX#",
		"######",
	)
	g.Health = 1

	if got := ApplyMove(g, world.Right); got != MoveDefeat {
		t.Fatalf("lethal move = %v, want defeat", got)
	}
	if !g.GameOver || g.Victory || g.Health != 0 {
		t.Errorf("GameOver %v Victory %v Health %d", g.GameOver, g.Victory, g.Health)
	}
	if g.Player != world.Pos(2, 1) || g.Moves != 1 {
		t.Errorf("lethal move should still relocate: player %v moves %d", g.Player, g.Moves)
	}
	if got := g.Enemies.Positions(); len(got) != 1 || got[0] != world.Pos(3, 4) {
		t.Errorf("enemies moved after a lethal hit: %v", got)
	}
	if g.Status() != state.StatusDefeat {
		t.Errorf("Status() = %v, want defeat", g.Status())
	}

	frozen := g.Snapshot()
	for _, dir := range world.AllDirections() {
		if got := ApplyMove(g, dir); got != MoveIgnored {
			t.Errorf("ApplyMove(%v) after defeat = %v, want ignored", dir, got)
		}
	}
	if !reflect.DeepEqual(frozen, g.Snapshot()) {
		t.Error("state changed after defeat")
	}
}

func TestApplyMove_Victory(t *testing.T) {
	g := newTestGame(t, state.PolicyCompat,
		"#####",
		"#@X.#",
		"#...#",
		"#..E#",
		"#####",
	)
	rows := g.Grid.Rows()

	if got := ApplyMove(g, world.Right); got != MoveVictory {
		t.Fatalf("ApplyMove onto exit = %v, want victory", got)
	}
	if !g.GameOver || !g.Victory {
		t.Error("exit should end the game in victory")
	}
	if g.Moves != 0 || g.Player != world.Pos(1, 1) {
		t.Errorf("victory should not move the player: moves %d player %v", g.Moves, g.Player)
	}
	if !reflect.DeepEqual(rows, g.Grid.Rows()) {
		t.Error("victory changed the grid")
	}
	if got := g.Enemies.Positions(); got[0] != world.Pos(3, 3) {
		t.Errorf("enemies moved on victory: %v", got)
	}
	if got := ApplyMove(g, world.Down); got != MoveIgnored {
		t.Errorf("move after victory = %v, want ignored", got)
	}
}

func TestApplyMove_FourUpMovesIntoBorder(t *testing.T) {
	g := mustGenerate(t, 2026919, state.PolicyCompat)
	if g.Player != world.Pos(2, 1) {
		t.Fatalf("player at %v, want (2,1)", g.Player)
	}
	before := g.Snapshot()

	for i := 0; i < 4; i++ {
		if got := ApplyMove(g, world.Up); got != MoveBlocked {
			t.Errorf("Up #%d = %v, want blocked", i+1, got)
		}
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("moves into the border changed state")
	}
}

func TestApplyMove_EnemyPolicies(t *testing.T) {
	rows := []string{
		"#######",
		"#@E...#",
		"#.....#",
		"#.....#",
		"#....X#",
		"#.....#",
		"#######",
	}

	t.Run("compat keeps an orphan that can return", func(t *testing.T) {
		g := newTestGame(t, state.PolicyCompat, rows...)

		if got := ApplyMove(g, world.Right); got != MoveDamaged {
			t.Fatalf("ApplyMove onto enemy = %v, want damaged", got)
		}
		if g.Enemies.Len() != 1 || len(g.Enemies.Orphans(g.Grid)) != 1 {
			t.Fatalf("roster %v should keep the orphan", g.Enemies.Positions())
		}

		// The orphan sits on explored ground once the player leaves
		ApplyMove(g, world.Down)
		if got := g.Grid.At(world.Pos(2, 1)); got != world.Explored {
			t.Fatalf("orphan cell = %v, want explored", got)
		}

		// Next turn it steps onto an Empty cell and clears the one it left
		ApplyMove(g, world.Right)
		if got := g.Enemies.Positions(); got[0] != world.Pos(3, 1) {
			t.Fatalf("orphan at %v, want (3,1)", got[0])
		}
		if g.Grid.At(world.Pos(2, 1)) != world.Empty || g.Grid.At(world.Pos(3, 1)) != world.Enemy {
			t.Errorf("grid after revival:\n%s", g.Grid)
		}
		if !g.Enemies.Consistent(g.Grid) {
			t.Error("revived enemy should be back in step with the grid")
		}
	})

	t.Run("remove drops the enemy", func(t *testing.T) {
		g := newTestGame(t, state.PolicyRemove, rows...)

		if got := ApplyMove(g, world.Right); got != MoveDamaged {
			t.Fatalf("ApplyMove onto enemy = %v, want damaged", got)
		}
		if g.Enemies.Len() != 0 {
			t.Errorf("roster = %v, want empty", g.Enemies.Positions())
		}
		if !g.Enemies.Consistent(g.Grid) || g.Health != state.InitialHealth-1 {
			t.Errorf("consistent %v health %d", g.Enemies.Consistent(g.Grid), g.Health)
		}
	})
}

func TestGenerateDungeon_ExhaustedSeed(t *testing.T) {
	_, err := GenerateDungeon(2020129, state.PolicyCompat)
	if !errors.Is(err, setup.ErrPlacementExhausted) {
		t.Errorf("GenerateDungeon(2020129) = %v, want ErrPlacementExhausted", err)
	}
}

// Random walks over real dungeons, checking the turn rules after every move
func TestApplyMove_RandomWalks(t *testing.T) {
	seeds := []int64{2026919, 2026101, 2025115, 202015, 2020630}
	policies := []state.EnemyPolicy{state.PolicyCompat, state.PolicyRemove}

	for _, seed := range seeds {
		for _, policy := range policies {
			g := mustGenerate(t, seed, policy)
			dirs := rng.New(seed + 1)

			for step := 0; step < 200; step++ {
				before := g.Snapshot()
				enemiesBefore := make(map[int]world.Position)
				for _, e := range g.Enemies.All() {
					enemiesBefore[e.ID] = e.Position
				}

				dir := world.AllDirections()[dirs.Intn(4)]
				result := ApplyMove(g, dir)

				switch {
				case !result.Consumed():
					if !reflect.DeepEqual(before, g.Snapshot()) {
						t.Fatalf("seed %d %v step %d: %v move changed state", seed, policy, step, result)
					}
				case result == MoveVictory:
					if g.Moves != before.Moves {
						t.Fatalf("seed %d: victory counted a move", seed)
					}
				default:
					if g.Moves != before.Moves+1 {
						t.Fatalf("seed %d: moves %d after %d", seed, g.Moves, before.Moves)
					}
				}

				if n := g.Grid.Count(world.Player); n != 1 {
					t.Fatalf("seed %d step %d: %d player cells", seed, step, n)
				}
				if g.Health < 0 || g.Health > state.InitialHealth {
					t.Fatalf("seed %d: health %d out of range", seed, g.Health)
				}

				// Cells left by an enemy this turn were Empty when the next one moved
				vacated := make(map[world.Position]bool)
				for _, e := range g.Enemies.All() {
					if old, tracked := enemiesBefore[e.ID]; tracked && old != e.Position {
						vacated[old] = true
					}
				}

				for _, e := range g.Enemies.All() {
					old, tracked := enemiesBefore[e.ID]
					if !tracked || old == e.Position {
						continue
					}
					if got := before.Cell(e.Position); got != world.Empty && !vacated[e.Position] {
						t.Fatalf("seed %d step %d: enemy %d entered %v cell at %v", seed, step, e.ID, got, e.Position)
					}
					if old.Manhattan(e.Position) != 1 {
						t.Fatalf("seed %d: enemy %d jumped from %v to %v", seed, e.ID, old, e.Position)
					}
				}

				if policy == state.PolicyRemove && !g.Enemies.Consistent(g.Grid) {
					t.Fatalf("seed %d step %d: roster out of step with grid", seed, step)
				}

				if g.GameOver {
					break
				}
			}
		}
	}
}
