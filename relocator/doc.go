// Package relocator implements the master-event relocation core: the
// travel-time-residual evaluator and the grid-search drivers built on it.
//
// Model:
//
//	Each observation carries the epicentral distance from the master event
//	to a station and the local slownesses dtdd (s/deg) and dtdh (s/km) of
//	the observed phase, evaluated at the master location. For a trial
//	offset (Δlat, Δlon, Δdepth) the predicted differential time is
//
//	    dtPre = dtdd·(dist(trial, station) − dist(master, station)) + dtdh·Δdepth
//
//	The reference distance stays anchored at the master; only the
//	trial-to-station distance is recomputed. The weighted mean of the
//	residuals dt − dtPre is the origin-time correction (TMean); the
//	weighted RMS of the mean-corrected residuals is the misfit the search
//	minimizes.
//
// Solutions:
//
//	A Solution is a tagged variant with exactly two parameterizations —
//	Geographic (Δlat°, Δlon°, Δdepth km) and Cylindrical (Δdist m,
//	azimuth°, Δdepth m), the latter converted to an equivalent linear
//	offset at construction. Unrecognized tags fail at construction, never
//	at evaluation. Parameters are immutable once constructed; only the
//	derived TMean/Misfit change, and only through an evaluation call.
//
// Searches:
//
//	GridSearch enumerates explicit candidate sequences; Search expands
//	bounded start/stop/step ranges into the same sweep. Both enumerate the
//	full Cartesian product in (Δdepth, horizontal₁, horizontal₂) order,
//	perform exactly N₁·N₂·N₃ evaluations, and return the first strict
//	minimum on exact ties. A non-finite misfit aborts the whole sweep:
//	a NaN must never win a minimization by accident of comparison.
//
// Concurrency:
//
//	The sweep is embarrassingly parallel. Options.Workers > 1 fans
//	depth-slabs out to a bounded errgroup; every worker owns its private
//	solutions and scratch buffer while the observation set is shared
//	read-only. Parallel results are bit-identical to serial runs.
//
// Errors are strict sentinels declared in types.go (construction and
// range errors) plus the validation sentinels of package seismic
// (ErrEmptyObsSet, ErrNoUsableObs, ErrBadObservation), all errors.Is-able.
package relocator
