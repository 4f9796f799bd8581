// Package relocator - solution parameterizations and sentinel errors.
package relocator

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/ddrelocator/geodesy"
	"github.com/katalvlaran/ddrelocator/seismic"
)

// Sentinel errors for solution construction and search configuration.
var (
	// ErrNilSolution indicates a nil *Solution passed to an evaluator.
	ErrNilSolution = errors.New("relocator: solution is nil")

	// ErrUnknownSolutionType indicates an unrecognized parameterization tag.
	ErrUnknownSolutionType = errors.New("relocator: unrecognized solution type")

	// ErrBadParameter indicates a non-finite solution parameter.
	ErrBadParameter = errors.New("relocator: solution parameter is not finite")

	// ErrEmptyGrid indicates a search-grid axis with no candidate values.
	ErrEmptyGrid = errors.New("relocator: search grid axis is empty")

	// ErrBadGridAxis indicates a grid axis that is not finite and strictly
	// ascending.
	ErrBadGridAxis = errors.New("relocator: search grid axis must be finite and strictly ascending")

	// ErrBadRange indicates a search range with non-finite bounds, a
	// non-positive step, or start > stop.
	ErrBadRange = errors.New("relocator: search range must be finite with positive step and start ≤ stop")

	// ErrNonFiniteMisfit indicates that an evaluation produced a NaN or Inf
	// misfit, e.g. from degenerate sensitivities. The sweep that hit it is
	// aborted rather than letting the value compete in the minimization.
	ErrNonFiniteMisfit = errors.New("relocator: evaluation produced a non-finite misfit")
)

// SolutionType tags the two supported parameterizations of a trial offset.
type SolutionType int

const (
	// Geographic parameterizes the offset as (Δlat°, Δlon°, Δdepth km),
	// added linearly to the master coordinates.
	Geographic SolutionType = iota

	// Cylindrical parameterizes the offset as (Δdist m, azimuth°, Δdepth m),
	// a polar offset around the master epicenter.
	Cylindrical
)

// String returns the lowercase tag used in files and CLIs.
func (t SolutionType) String() string {
	switch t {
	case Geographic:
		return "geographic"
	case Cylindrical:
		return "cylindrical"
	default:
		return fmt.Sprintf("SolutionType(%d)", int(t))
	}
}

// ParseSolutionType maps a tag string to its SolutionType.
// Unknown tags return ErrUnknownSolutionType.
func ParseSolutionType(s string) (SolutionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "geographic":
		return Geographic, nil
	case "cylindrical":
		return Cylindrical, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSolutionType, s)
	}
}

// Solution is one trial relative offset from the master event.
//
// The parameter triple and its parameterization are fixed at construction;
// evaluation only fills the derived origin-time correction (TMean) and RMS
// misfit. A Solution may be re-evaluated against a different observation
// set; the derived fields are overwritten as a pair on every call.
type Solution struct {
	typ    SolutionType
	master seismic.Event

	// Raw constructor parameters, in the units of the parameterization.
	p1, p2, p3 float64

	// Canonical linear offsets used by the evaluator.
	dlat   float64 // degrees
	dlon   float64 // degrees
	ddepth float64 // km

	tmean     float64
	misfit    float64
	evaluated bool
}

// NewSolution constructs a trial offset of the given parameterization.
// For Geographic the parameters are (Δlat°, Δlon°, Δdepth km); for
// Cylindrical they are (Δdist m, azimuth°, Δdepth m). Unrecognized types
// fail here with ErrUnknownSolutionType, never later at evaluation.
func NewSolution(typ SolutionType, master seismic.Event, p1, p2, p3 float64) (*Solution, error) {
	switch typ {
	case Geographic:
		return NewGeographicSolution(master, p1, p2, p3)
	case Cylindrical:
		return NewCylindricalSolution(master, p1, p2, p3)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSolutionType, int(typ))
	}
}

// NewGeographicSolution constructs a trial offset of (Δlat°, Δlon°,
// Δdepth km) added linearly to the master coordinates.
func NewGeographicSolution(master seismic.Event, dlatDeg, dlonDeg, ddepthKm float64) (*Solution, error) {
	if err := checkFinite(dlatDeg, dlonDeg, ddepthKm); err != nil {
		return nil, err
	}

	return &Solution{
		typ:    Geographic,
		master: master,
		p1:     dlatDeg,
		p2:     dlonDeg,
		p3:     ddepthKm,
		dlat:   dlatDeg,
		dlon:   dlonDeg,
		ddepth: ddepthKm,
	}, nil
}

// NewCylindricalSolution constructs a trial offset of (Δdist m, azimuth°,
// Δdepth m) around the master epicenter. The polar offset is converted once
// to an equivalent (Δlat, Δlon) via the local flat-Earth approximation on
// the 6371 km sphere:
//
//	Δlat = (d/R)·cos(az),  Δlon = (d/R)·sin(az)/cos(lat)
//
// Depth is normalized to kilometers internally so both parameterizations
// evaluate with identical units.
func NewCylindricalSolution(master seismic.Event, ddistM, azDeg, ddepthM float64) (*Solution, error) {
	if err := checkFinite(ddistM, azDeg, ddepthM); err != nil {
		return nil, err
	}

	ddistDeg := geodesy.Kilometers2Degrees(ddistM / 1000.0)
	azRad := azDeg * math.Pi / 180

	return &Solution{
		typ:    Cylindrical,
		master: master,
		p1:     ddistM,
		p2:     azDeg,
		p3:     ddepthM,
		dlat:   ddistDeg * math.Cos(azRad),
		dlon:   ddistDeg * math.Sin(azRad) / math.Cos(master.Latitude*math.Pi/180),
		ddepth: ddepthM / 1000.0,
	}, nil
}

// checkFinite rejects NaN/Inf parameters with ErrBadParameter.
func checkFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %g", ErrBadParameter, v)
		}
	}

	return nil
}

// Type returns the parameterization tag.
func (s *Solution) Type() SolutionType { return s.typ }

// Master returns the anchoring master event.
func (s *Solution) Master() seismic.Event { return s.master }

// Params returns the raw constructor parameters in the units of the
// parameterization: (Δlat°, Δlon°, Δdepth km) for Geographic, (Δdist m,
// azimuth°, Δdepth m) for Cylindrical.
func (s *Solution) Params() (p1, p2, p3 float64) { return s.p1, s.p2, s.p3 }

// Offsets returns the canonical linear offsets the evaluator uses:
// Δlat (degrees), Δlon (degrees), Δdepth (km). For Geographic solutions
// these equal the constructor parameters; for Cylindrical they are the
// flat-Earth equivalent.
func (s *Solution) Offsets() (dlatDeg, dlonDeg, ddepthKm float64) {
	return s.dlat, s.dlon, s.ddepth
}

// Evaluated reports whether TMean and Misfit have been filled by an
// evaluation call.
func (s *Solution) Evaluated() bool { return s.evaluated }

// TMean returns the weighted mean residual of the last evaluation — the
// origin-time correction between slave and master. Zero until evaluated.
func (s *Solution) TMean() float64 { return s.tmean }

// Misfit returns the weighted RMS of the mean-corrected residuals from the
// last evaluation. Zero until evaluated; never negative or non-finite on a
// successfully evaluated solution.
func (s *Solution) Misfit() float64 { return s.misfit }

// ToEvent applies the offsets and origin-time correction to the master,
// yielding the absolute relocated event. The magnitude is carried over from
// the master for reporting.
func (s *Solution) ToEvent() seismic.Event {
	return seismic.Event{
		Origin:    s.master.Origin.Add(time.Duration(s.tmean * float64(time.Second))),
		Latitude:  s.master.Latitude + s.dlat,
		Longitude: s.master.Longitude + s.dlon,
		Depth:     s.master.Depth + s.ddepth,
		Magnitude: s.master.Magnitude,
	}
}

// String renders the parameters and, once evaluated, tmean and misfit.
func (s *Solution) String() string {
	var b strings.Builder
	switch s.typ {
	case Geographic:
		fmt.Fprintf(&b, "dlat: %g°\ndlon: %g°\nddepth: %g km", s.p1, s.p2, s.p3)
	case Cylindrical:
		fmt.Fprintf(&b, "ddist: %g m\naz: %g°\nddepth: %g m", s.p1, s.p2, s.p3)
	}
	if s.evaluated {
		fmt.Fprintf(&b, "\ntmean: %.3f\nmisfit: %.3f", s.tmean, s.misfit)
	}

	return b.String()
}

// Residual is the per-observation bookkeeping of one evaluated solution,
// returned as an explicit scratch record instead of being written back into
// the observation set. Weight-0 observations are included for reporting.
type Residual struct {
	Station string
	Phase   string
	Weight  float64
	CC      float64
	DtPre   float64 // predicted differential time, s
	Value   float64 // tmean-corrected residual, s
}
