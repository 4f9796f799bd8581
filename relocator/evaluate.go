package relocator

import (
	"math"

	"github.com/katalvlaran/ddrelocator/geodesy"
	"github.com/katalvlaran/ddrelocator/seismic"
)

// TrySolution scores one trial solution against an observation set:
//
//  1. Trial epicenter = master + (Δlat, Δlon); for every observation the
//     trial-to-station distance is recomputed while the master-anchored
//     reference distance stays fixed.
//  2. Predicted differential time: dtPre = dtdd·(dist − refDist) + dtdh·Δdepth.
//  3. Weighted mean of the residuals dt − dtPre over observations with
//     weight > 0 becomes the origin-time correction TMean.
//  4. Weighted RMS of the mean-corrected residuals becomes Misfit.
//
// The observation set is validated first (ErrEmptyObsSet, ErrNoUsableObs,
// ErrBadObservation from package seismic) and is never mutated, so one set
// may back many concurrent evaluations. A NaN/Inf mean or RMS returns
// ErrNonFiniteMisfit and leaves the solution's derived fields untouched.
//
// Complexity: O(n) time, O(n) scratch, n = len(obs).
func TrySolution(obs seismic.ObsSet, sol *Solution) error {
	if sol == nil {
		return ErrNilSolution
	}
	if err := obs.Validate(); err != nil {
		return err
	}

	return trySolution(obs, sol, make([]float64, len(obs)))
}

// Residuals evaluates sol against obs and returns the per-observation
// bookkeeping: predicted differential times and tmean-corrected residuals,
// including weight-0 observations (tagged with their weight) for reporting
// and plotting. The solution's TMean/Misfit are filled as by TrySolution.
//
// This is the serial companion to a sweep: compute it once for the chosen
// minimizer, never inside the parallel loop.
func Residuals(obs seismic.ObsSet, sol *Solution) ([]Residual, error) {
	if sol == nil {
		return nil, ErrNilSolution
	}
	if err := obs.Validate(); err != nil {
		return nil, err
	}

	raw := make([]float64, len(obs))
	if err := trySolution(obs, sol, raw); err != nil {
		return nil, err
	}

	out := make([]Residual, len(obs))
	for i := range obs {
		ob := &obs[i]
		out[i] = Residual{
			Station: ob.Station,
			Phase:   ob.Phase,
			Weight:  ob.Weight,
			CC:      ob.CC,
			DtPre:   ob.Dt - raw[i],
			Value:   raw[i] - sol.tmean,
		}
	}

	return out, nil
}

// trySolution is the validation-free core shared by TrySolution, Residuals
// and the sweep drivers. resid must have len(obs) entries; it receives the
// raw (uncorrected) residuals. Assumes obs.Validate() has already passed.
func trySolution(obs seismic.ObsSet, sol *Solution, resid []float64) error {
	lat := sol.master.Latitude + sol.dlat
	lon := sol.master.Longitude + sol.dlon

	var sumW, sumWR float64
	for i := range obs {
		ob := &obs[i]
		dist, _ := geodesy.DistAz(lat, lon, ob.Latitude, ob.Longitude)
		dtPre := ob.Dtdd*(dist-ob.Distance) + ob.Dtdh*sol.ddepth
		r := ob.Dt - dtPre
		resid[i] = r
		if ob.Weight > 0 {
			sumW += ob.Weight
			sumWR += ob.Weight * r
		}
	}

	// Validate guarantees sumW > 0.
	tmean := sumWR / sumW

	var sumWSq float64
	for i := range obs {
		if w := obs[i].Weight; w > 0 {
			d := resid[i] - tmean
			sumWSq += w * d * d
		}
	}
	misfit := math.Sqrt(sumWSq / sumW)

	if math.IsNaN(tmean) || math.IsInf(tmean, 0) || math.IsNaN(misfit) || math.IsInf(misfit, 0) {
		return ErrNonFiniteMisfit
	}

	sol.tmean = tmean
	sol.misfit = misfit
	sol.evaluated = true

	return nil
}
