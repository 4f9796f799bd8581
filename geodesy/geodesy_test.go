package geodesy_test

import (
	"testing"

	"github.com/katalvlaran/ddrelocator/geodesy"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

// TestDistAz_Coincident verifies the documented convention for coincident
// points: distance 0, azimuth 0.
func TestDistAz_Coincident(t *testing.T) {
	dist, az := geodesy.DistAz(35.2, -120.7, 35.2, -120.7)
	assert.Equal(t, 0.0, dist, "coincident points must have zero distance")
	assert.Equal(t, 0.0, az, "coincident points must have zero azimuth by convention")
}

// TestDistAz_CardinalDirections checks distance and azimuth along the
// equator and a meridian, where both have closed-form values.
func TestDistAz_CardinalDirections(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantDist, wantAz       float64
	}{
		{"north along meridian", 0, 0, 10, 0, 10, 0},
		{"east along equator", 0, 0, 0, 10, 10, 90},
		{"south along meridian", 10, 0, 0, 0, 10, 180},
		{"west along equator", 0, 10, 0, 0, 10, 270},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dist, az := geodesy.DistAz(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			assert.InDelta(t, tc.wantDist, dist, tol, "distance")
			assert.InDelta(t, tc.wantAz, az, tol, "azimuth")
		})
	}
}

// TestDistAz_Oblique checks an oblique pair against hand-derived spherical
// trigonometry: (0,0)→(45,45) spans exactly 60° of arc at azimuth
// atan2(sin45·cos45, sin45) ≈ 35.264390°.
func TestDistAz_Oblique(t *testing.T) {
	dist, az := geodesy.DistAz(0, 0, 45, 45)
	assert.InDelta(t, 60.0, dist, 1e-9, "central angle of (0,0)→(45,45)")
	assert.InDelta(t, 35.264389682754654, az, 1e-9, "forward azimuth of (0,0)→(45,45)")
}

// TestDistAz_Antipodal verifies the antipodal distance is 180° and the
// azimuth stays inside [0, 360).
func TestDistAz_Antipodal(t *testing.T) {
	dist, az := geodesy.DistAz(0, 0, 0, 180)
	assert.InDelta(t, 180.0, dist, 1e-6, "antipodal distance")
	assert.GreaterOrEqual(t, az, 0.0, "azimuth lower bound")
	assert.Less(t, az, 360.0, "azimuth upper bound")
}

// TestDistAz_AzimuthRange sweeps a ring of targets around a fixed origin
// and asserts every azimuth is normalized into [0, 360).
func TestDistAz_AzimuthRange(t *testing.T) {
	for lon := -170.0; lon <= 170.0; lon += 10 {
		for lat := -80.0; lat <= 80.0; lat += 10 {
			if lat == 42.0 && lon == 13.0 {
				continue
			}
			_, az := geodesy.DistAz(42, 13, lat, lon)
			assert.GreaterOrEqual(t, az, 0.0)
			assert.Less(t, az, 360.0)
		}
	}
}

// TestConversions_RoundTrip checks km↔degree conversions are exact inverses
// and pin the 6371 km radius (1° ≈ 111.195 km).
func TestConversions_RoundTrip(t *testing.T) {
	assert.InDelta(t, 111.19492664455873, geodesy.Degrees2Kilometers(1), tol, "one degree of arc in km")
	for _, km := range []float64{0, 0.5, 12.34, 1000} {
		assert.InDelta(t, km, geodesy.Degrees2Kilometers(geodesy.Kilometers2Degrees(km)), tol)
	}
}

// TestDistAz_Symmetry verifies that distance is symmetric while azimuth is
// direction-dependent.
func TestDistAz_Symmetry(t *testing.T) {
	d1, a1 := geodesy.DistAz(10, 20, 30, 40)
	d2, a2 := geodesy.DistAz(30, 40, 10, 20)
	assert.InDelta(t, d1, d2, tol, "distance must be symmetric")
	assert.NotEqual(t, a1, a2, "forward azimuths of opposite directions differ")
}
