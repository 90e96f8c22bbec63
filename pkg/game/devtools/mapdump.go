// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dungeondaily/pkg/engine/world"
	"dungeondaily/pkg/game/setup"
	"dungeondaily/pkg/game/state"
)

// Dump writes a debug dump of g: metadata, legend, the map, entity
// positions, cell counts and the current route to the exit.
// Format is human-readable (sections, key: value, consistent structure).
func Dump(w io.Writer, g *state.Game) error {
	if g == nil || g.Grid == nil {
		return errors.New("no grid")
	}

	exit, hasExit := g.Grid.Find(world.Exit)

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, entities, route) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "run_id: %s\n", g.RunID)
	fmt.Fprintf(w, "grid_size: %d\n", g.Grid.Size())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "player: %s\n", g.Player)
	if hasExit {
		fmt.Fprintf(w, "exit: %s\n", exit)
	} else {
		fmt.Fprintln(w, "exit: none")
	}
	fmt.Fprintf(w, "enemy_policy: %s\n", g.Policy)
	fmt.Fprintf(w, "status: %s\n", g.Status())
	fmt.Fprintf(w, "health: %d\n", g.Health)
	fmt.Fprintf(w, "moves: %d\n", g.Moves)
	fmt.Fprintf(w, "score: %d\n", g.Score)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	var legend []string
	for _, t := range world.AllCellTypes() {
		legend = append(legend, fmt.Sprintf("%c = %s", t.Rune(), t))
	}
	fmt.Fprintln(w, strings.Join(legend, "  "))
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	fmt.Fprintln(w, g.Grid.String())
	fmt.Fprintln(w, "")

	// --- Entities ---
	fmt.Fprintln(w, "--- Entities ---")
	fmt.Fprintln(w, "Enemies:")
	orphans := make(map[int]bool)
	for _, e := range g.Enemies.Orphans(g.Grid) {
		orphans[e.ID] = true
	}
	for _, e := range g.Enemies.All() {
		fmt.Fprintf(w, "  id: %d pos: %s on_grid: %v\n", e.ID, e.Position, !orphans[e.ID])
	}
	if untracked := g.Enemies.Untracked(g.Grid); len(untracked) > 0 {
		fmt.Fprintf(w, "  untracked_enemy_cells: %v\n", untracked)
	}
	fmt.Fprintln(w, "")

	// --- Counts ---
	fmt.Fprintln(w, "--- Counts ---")
	for _, t := range world.AllCellTypes() {
		fmt.Fprintf(w, "%s: %d\n", strings.ToLower(t.String()), g.Grid.Count(t))
	}
	fmt.Fprintln(w, "")

	// --- Route ---
	fmt.Fprintln(w, "--- Route (player to exit) ---")
	if !hasExit {
		fmt.Fprintln(w, "reachable: false")
		return nil
	}
	path, ok := setup.FindPath(g.Grid, g.Player, exit)
	fmt.Fprintf(w, "reachable: %v\n", ok)
	if ok {
		fmt.Fprintf(w, "length: %d\n", len(path))
		steps := []string{g.Player.String()}
		for _, p := range path {
			steps = append(steps, p.String())
		}
		fmt.Fprintf(w, "path: %s\n", strings.Join(steps, " "))
	}
	return nil
}

// DumpToFile writes the dump to path and returns its absolute path
func DumpToFile(g *state.Game, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Dump(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
