package seismic

import (
	"math"

	"github.com/katalvlaran/ddrelocator/geodesy"
)

// TravelTime is one arrival from an external 1-D travel-time model,
// reduced to the fields the relocation model needs.
type TravelTime struct {
	Phase string
	Time  float64 // travel time, s
	Dtdd  float64 // horizontal slowness, s/deg
	Dtdh  float64 // vertical slowness, s/km
}

// VerticalSlowness derives the vertical slowness (s/km) from a model
// arrival's horizontal slowness and takeoff angle:
//
//	η = −p / (R − h) / tan(θ)
//
// with p the horizontal slowness in s/rad, R the Earth radius, h the source
// depth in km, and θ the takeoff angle in degrees (0 for a vertically
// down-going ray, 180 for up-going). The sign makes travel time decrease
// with source depth for down-going rays, e.g. a 60° P arrival from 50 km
// arrives earlier than the same arrival from 49 km.
//
// A takeoff of exactly 90° (horizontally leaving ray) yields 0. Vertical
// rays (0° or 180°) also yield 0 rather than dividing by zero; their
// horizontal slowness vanishes with them.
func VerticalSlowness(dtdd, takeoffDeg, depthKm float64) float64 {
	if takeoffDeg == 90 {
		return 0
	}
	tan := math.Tan(takeoffDeg * math.Pi / 180)
	if tan == 0 || math.IsInf(tan, 0) {
		return 0
	}

	// dtdd is s/deg; convert to s/rad before dividing by the radius.
	return -dtdd * 180 / math.Pi / (geodesy.EarthRadiusKm - depthKm) / tan
}

// NewObs assembles an observation from the master event, a station, an
// external model arrival, and the measured differential time. The
// master-to-station distance and azimuth are computed here once and stay
// fixed for the lifetime of the observation.
func NewObs(master Event, sta Station, tt TravelTime, dt, cc, weight float64) Obs {
	dist, az := geodesy.DistAz(master.Latitude, master.Longitude, sta.Latitude, sta.Longitude)

	return Obs{
		Station:   sta.Code,
		Latitude:  sta.Latitude,
		Longitude: sta.Longitude,
		Distance:  dist,
		Azimuth:   az,
		Phase:     tt.Phase,
		Time:      tt.Time,
		Dtdd:      tt.Dtdd,
		Dtdh:      tt.Dtdh,
		Dt:        dt,
		CC:        cc,
		Weight:    weight,
	}
}
