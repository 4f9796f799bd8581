package relocator

import (
	"math"

	"github.com/katalvlaran/ddrelocator/seismic"
)

// Axis is a bounded 1-D search range expanded into Start, Start+Step, …
// up to and including Stop (within a small tolerance against accumulated
// rounding). Step must be positive and Start ≤ Stop; a zero-length range
// (Start == Stop) expands to a single candidate.
type Axis struct {
	Start float64
	Stop  float64
	Step  float64
}

// stepTol absorbs floating-point drift when deciding whether Stop lands on
// the last grid node.
const stepTol = 1e-9

// sequence expands the axis into its candidate values.
func (a Axis) sequence() ([]float64, error) {
	for _, v := range [...]float64{a.Start, a.Stop, a.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrBadRange
		}
	}
	if a.Step <= 0 || a.Start > a.Stop {
		return nil, ErrBadRange
	}

	n := int(math.Floor((a.Stop-a.Start)/a.Step+stepTol)) + 1
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = a.Start + float64(i)*a.Step
	}

	return vals, nil
}

// Region is a bounded 3-D search range in one of the two solution
// parameterizations. The two implementations are GeographicRegion and
// CylindricalRegion.
type Region interface {
	// axes returns the expanded candidate sequences in enumeration order
	// (Δdepth first) and the parameterization they belong to.
	axes() (SolutionType, [3][]float64, error)
}

// GeographicRegion is a bounded range over (Δlat°, Δlon°, Δdepth km).
type GeographicRegion struct {
	Dlat Axis // degrees
	Dlon Axis // degrees
	Ddep Axis // km
}

func (r GeographicRegion) axes() (SolutionType, [3][]float64, error) {
	var out [3][]float64
	for d, a := range [...]Axis{r.Ddep, r.Dlat, r.Dlon} {
		vals, err := a.sequence()
		if err != nil {
			return Geographic, out, err
		}
		out[d] = vals
	}

	return Geographic, out, nil
}

// CylindricalRegion is a bounded range over (Δdist m, azimuth°, Δdepth m)
// around the master epicenter.
type CylindricalRegion struct {
	Ddist Axis // m
	Az    Axis // degrees, clockwise from north
	Ddep  Axis // m
}

func (r CylindricalRegion) axes() (SolutionType, [3][]float64, error) {
	var out [3][]float64
	for d, a := range [...]Axis{r.Ddep, r.Ddist, r.Az} {
		vals, err := a.sequence()
		if err != nil {
			return Cylindrical, out, err
		}
		out[d] = vals
	}

	return Cylindrical, out, nil
}

// Search expands a bounded region into candidate sequences and runs the
// same exhaustive sweep as GridSearch — brute force over the full product,
// first strict minimum wins, exact evaluation count in Result. Range
// errors (ErrBadRange) surface before any evaluation.
//
// Every grid node is independent, so opts.Workers > 1 evaluates
// depth-slabs concurrently with private solutions and a read-only
// observation set; the result is identical to a serial run.
func Search(master seismic.Event, obs seismic.ObsSet, region Region, opts Options) (Result, error) {
	mode, axes, err := region.axes()
	if err != nil {
		return Result{}, err
	}

	return sweep(master, obs, mode, axes, opts)
}
