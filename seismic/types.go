// Package seismic - events, stations, observations and their invariants.
package seismic

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors for observation-set validation.
var (
	// ErrEmptyObsSet indicates an observation set with no observations.
	ErrEmptyObsSet = errors.New("seismic: observation set is empty")

	// ErrNoUsableObs indicates that no observation carries a positive weight,
	// so neither a mean residual nor an RMS misfit is defined.
	ErrNoUsableObs = errors.New("seismic: no observation with positive weight")

	// ErrBadObservation indicates a malformed observation record: a
	// non-finite numeric field or a negative weight.
	ErrBadObservation = errors.New("seismic: malformed observation record")
)

// eventIDLayout formats an origin time as YYYYMMDDHHMMSS.
const eventIDLayout = "20060102150405"

// Event is an earthquake hypocenter with origin time.
//
// Depth is in kilometers, positive down. Magnitude is carried through for
// reporting only; no computation in this module reads it.
type Event struct {
	Origin    time.Time // origin time (UTC)
	Latitude  float64   // degrees
	Longitude float64   // degrees
	Depth     float64   // km
	Magnitude float64
}

// ID returns the event identifier in YYYYMMDDHHMMSS form, derived from the
// UTC origin time.
func (e Event) ID() string {
	return e.Origin.UTC().Format(eventIDLayout)
}

// String renders the event as "origin latitude longitude depth".
func (e Event) String() string {
	return fmt.Sprintf("%s %.5f %.5f %.4f",
		e.Origin.UTC().Format(time.RFC3339), e.Latitude, e.Longitude, e.Depth)
}

// Station is a seismic station. Elevation (meters) is carried through for
// completeness; the spherical model treats receivers as surface points.
type Station struct {
	Code      string
	Latitude  float64 // degrees
	Longitude float64 // degrees
	Elevation float64 // m
}

// Obs is one differential-time observation: one phase arrival at one
// station, with master-anchored reference geometry and slownesses.
//
// Distance and Azimuth are the epicentral distance (degrees) and azimuth
// (degrees) from the master event to the station, fixed at construction.
// Dtdd (s/deg) and Dtdh (s/km) linearize the travel time around the master
// location. Dt is the observed slave-minus-master differential time in
// seconds. CC is an optional cross-correlation coefficient (0 when no
// cross-correlation was applied). Weight ≥ 0; a weight of 0 excludes the
// observation from all fit statistics without removing it from the set.
type Obs struct {
	Station   string
	Latitude  float64
	Longitude float64
	Distance  float64
	Azimuth   float64
	Phase     string
	Time      float64 // predicted master travel time, s
	Dtdd      float64 // horizontal slowness, s/deg
	Dtdh      float64 // vertical slowness, s/km
	Dt        float64 // observed differential time, s
	CC        float64
	Weight    float64
}

// ObsSet is an ordered collection of observations. Order is significant
// only for reporting; the fit statistics are order-independent.
type ObsSet []Obs

// Validate checks the invariants the evaluator depends on:
//
//   - the set is non-empty (ErrEmptyObsSet),
//   - every numeric field of every observation is finite and every weight
//     is non-negative (ErrBadObservation, wrapped with station and phase),
//   - at least one observation has a positive weight (ErrNoUsableObs).
//
// Complexity: O(n). Validate never mutates the set.
func (s ObsSet) Validate() error {
	if len(s) == 0 {
		return ErrEmptyObsSet
	}

	usable := false
	for i := range s {
		ob := &s[i]
		for _, v := range [...]float64{
			ob.Latitude, ob.Longitude, ob.Distance, ob.Azimuth,
			ob.Time, ob.Dtdd, ob.Dtdh, ob.Dt, ob.CC, ob.Weight,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s %s (index %d): non-finite field",
					ErrBadObservation, ob.Station, ob.Phase, i)
			}
		}
		if ob.Weight < 0 {
			return fmt.Errorf("%w: %s %s (index %d): negative weight %g",
				ErrBadObservation, ob.Station, ob.Phase, i, ob.Weight)
		}
		if ob.Weight > 0 {
			usable = true
		}
	}
	if !usable {
		return ErrNoUsableObs
	}

	return nil
}
