package generator

import (
	"dungeondaily/pkg/engine/rng"
	"dungeondaily/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms.
// Generate must only draw from r in a fixed order so the same seed
// always produces the same grid.
type GridGenerator interface {
	Generate(r *rng.LCG) *world.Grid
	Name() string
}

// Available generators
var (
	Cellular = NewCellularGenerator()
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = Cellular
