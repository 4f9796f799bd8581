package relocator

import (
	"math"

	"github.com/katalvlaran/ddrelocator/seismic"
)

// SearchGrid holds explicit candidate sequences for a geographic grid
// search. Every axis must be non-empty, finite, and strictly ascending.
type SearchGrid struct {
	Ddeps []float64 // Δdepth candidates, km
	Dlats []float64 // Δlat candidates, degrees
	Dlons []float64 // Δlon candidates, degrees
}

// validate checks the grid axes (ErrEmptyGrid, ErrBadGridAxis).
func (g SearchGrid) validate() error {
	for _, axis := range [...][]float64{g.Ddeps, g.Dlats, g.Dlons} {
		if err := validateAxis(axis); err != nil {
			return err
		}
	}

	return nil
}

// validateAxis enforces non-empty, finite, strictly ascending values.
func validateAxis(vals []float64) error {
	if len(vals) == 0 {
		return ErrEmptyGrid
	}
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadGridAxis
		}
		if i > 0 && v <= vals[i-1] {
			return ErrBadGridAxis
		}
	}

	return nil
}

// GridSearch enumerates the full Cartesian product Ddeps×Dlats×Dlons in
// that order, evaluates a geographic Solution at every node, and returns
// the first strict minimizer together with the evaluation count and, when
// opts.KeepSurface is set, the full misfit surface.
//
// Exactly len(Ddeps)·len(Dlats)·len(Dlons) evaluations are performed. The
// observation set is validated once and never mutated. Configuration
// errors (empty or unsorted axes) surface before any evaluation; a
// non-finite misfit aborts the whole sweep.
//
// Complexity: O(N₁·N₂·N₃·n) time, n = len(obs); O(N₁·N₂·N₃) extra memory
// only when the surface is retained.
func GridSearch(master seismic.Event, obs seismic.ObsSet, grid SearchGrid, opts Options) (Result, error) {
	if err := grid.validate(); err != nil {
		return Result{}, err
	}

	return sweep(master, obs, Geographic, [3][]float64{grid.Ddeps, grid.Dlats, grid.Dlons}, opts)
}
