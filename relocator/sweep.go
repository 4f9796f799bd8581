package relocator

import (
	"fmt"

	"github.com/katalvlaran/ddrelocator/seismic"
	"golang.org/x/sync/errgroup"
)

// Options configures a sweep.
//
//   - Workers     — number of concurrent evaluation workers. Values ≤ 1 run
//     the sweep serially. Parallel sweeps return bit-identical results to
//     serial ones: selection always scans enumeration order.
//   - KeepSurface — retain the full misfit/tmean surface for diagnostics
//     and plotting. Off by default; the cubes cost O(N₁·N₂·N₃) memory.
type Options struct {
	Workers     int
	KeepSurface bool
}

// DefaultOptions returns the defaults: serial sweep, no surface retention.
func DefaultOptions() Options {
	return Options{Workers: 1, KeepSurface: false}
}

// Result is the outcome of a sweep.
type Result struct {
	// Best is the first strict minimizer in enumeration order, evaluated
	// (TMean/Misfit filled).
	Best *Solution

	// Evaluations counts evaluator calls; always the product of the three
	// axis lengths.
	Evaluations int

	// Surface holds the full misfit surface when Options.KeepSurface is
	// set, nil otherwise.
	Surface *Surface
}

// Surface is the rectilinear misfit surface of a sweep, for external
// plotting. Axes[0] is the depth-offset axis; Axes[1] and Axes[2] are the
// two horizontal parameters in enumeration order — (Δlat°, Δlon°) for
// Geographic sweeps, (Δdist m, azimuth°) for Cylindrical ones. Misfit and
// TMean are indexed [i][j][k] matching Axes[0][i], Axes[1][j], Axes[2][k].
type Surface struct {
	Mode   SolutionType  `json:"mode"`
	Axes   [3][]float64  `json:"axes"`
	Misfit [][][]float64 `json:"misfit"`
	TMean  [][][]float64 `json:"tmean"`
}

// sweep enumerates the Cartesian product of the three axes in
// (axes[0], axes[1], axes[2]) order, evaluates every combination, and
// returns the first strict minimum. axes must be validated by the caller;
// obs is validated once here and then shared read-only by all workers.
func sweep(master seismic.Event, obs seismic.ObsSet, mode SolutionType, axes [3][]float64, opts Options) (Result, error) {
	if err := obs.Validate(); err != nil {
		return Result{}, err
	}

	var surface *Surface
	if opts.KeepSurface {
		surface = newSurface(mode, axes)
	}

	var (
		bests []*Solution
		err   error
	)
	if opts.Workers > 1 {
		bests, err = sweepParallel(master, obs, mode, axes, surface, opts.Workers)
	} else {
		bests, err = sweepSerial(master, obs, mode, axes, surface)
	}
	if err != nil {
		return Result{}, err
	}

	// Per-slab minima are already first-wins within their slab; scanning
	// slabs in ascending depth order keeps the global tie-break
	// deterministic regardless of scheduling.
	best := bests[0]
	for _, b := range bests[1:] {
		if b.misfit < best.misfit {
			best = b
		}
	}

	return Result{
		Best:        best,
		Evaluations: len(axes[0]) * len(axes[1]) * len(axes[2]),
		Surface:     surface,
	}, nil
}

// sweepSerial evaluates all combinations on the calling goroutine.
func sweepSerial(master seismic.Event, obs seismic.ObsSet, mode SolutionType, axes [3][]float64, surface *Surface) ([]*Solution, error) {
	buf := make([]float64, len(obs))
	best := make([]*Solution, 1)
	for i := range axes[0] {
		if err := sweepSlab(master, obs, mode, axes, i, surface, buf, &best[0]); err != nil {
			return nil, err
		}
	}

	return best, nil
}

// sweepParallel fans depth-slabs out to a bounded worker group. Each worker
// owns its scratch buffer and candidate solutions; the observation set is
// shared read-only, and surface rows of distinct slabs never overlap.
func sweepParallel(master seismic.Event, obs seismic.ObsSet, mode SolutionType, axes [3][]float64, surface *Surface, workers int) ([]*Solution, error) {
	bests := make([]*Solution, len(axes[0]))

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range axes[0] {
		i := i
		g.Go(func() error {
			buf := make([]float64, len(obs))

			return sweepSlab(master, obs, mode, axes, i, surface, buf, &bests[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Drop empty slab slots so the caller's ordered scan sees only minima.
	out := bests[:0]
	for _, b := range bests {
		if b != nil {
			out = append(out, b)
		}
	}

	return out, nil
}

// sweepSlab evaluates one depth-slab (fixed axes[0][i]) in (j, k) order,
// updating *best with strict-less-than comparison so the first minimum in
// enumeration order wins exact ties.
func sweepSlab(master seismic.Event, obs seismic.ObsSet, mode SolutionType, axes [3][]float64, i int, surface *Surface, buf []float64, best **Solution) error {
	a1 := axes[0][i]
	for j, a2 := range axes[1] {
		for k, a3 := range axes[2] {
			sol, err := newSweepSolution(mode, master, a1, a2, a3)
			if err != nil {
				return err
			}
			if err = trySolution(obs, sol, buf); err != nil {
				return fmt.Errorf("%w (grid node ddepth=%g, %g, %g)", err, a1, a2, a3)
			}
			if surface != nil {
				surface.Misfit[i][j][k] = sol.misfit
				surface.TMean[i][j][k] = sol.tmean
			}
			if *best == nil || sol.misfit < (*best).misfit {
				*best = sol
			}
		}
	}

	return nil
}

// newSweepSolution maps one grid node to a Solution of the sweep's mode.
// Axis order is (Δdepth, horizontal₁, horizontal₂).
func newSweepSolution(mode SolutionType, master seismic.Event, a1, a2, a3 float64) (*Solution, error) {
	if mode == Cylindrical {
		// a1 = Δdepth m, a2 = Δdist m, a3 = azimuth°.
		return NewCylindricalSolution(master, a2, a3, a1)
	}

	// a1 = Δdepth km, a2 = Δlat°, a3 = Δlon°.
	return NewGeographicSolution(master, a2, a3, a1)
}

// newSurface allocates the misfit/tmean cubes and snapshots the axes.
func newSurface(mode SolutionType, axes [3][]float64) *Surface {
	s := &Surface{Mode: mode}
	for d := range axes {
		s.Axes[d] = append([]float64(nil), axes[d]...)
	}
	s.Misfit = make([][][]float64, len(axes[0]))
	s.TMean = make([][][]float64, len(axes[0]))
	for i := range s.Misfit {
		s.Misfit[i] = make([][]float64, len(axes[1]))
		s.TMean[i] = make([][]float64, len(axes[1]))
		for j := range s.Misfit[i] {
			s.Misfit[i][j] = make([]float64, len(axes[2]))
			s.TMean[i][j] = make([]float64, len(axes[2]))
		}
	}

	return s
}
