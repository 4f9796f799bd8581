package relocator_test

import (
	"time"

	"github.com/katalvlaran/ddrelocator/geodesy"
	"github.com/katalvlaran/ddrelocator/seismic"
)

// Shared synthetic fixtures: a master event, a small station network, and
// observation sets manufactured from a known "true" offset so that the
// evaluator and the searches have an exact answer to recover.

const (
	synDtdd = 10.0 // horizontal slowness, s/deg
	synDtdh = -0.2 // vertical slowness, s/km
)

// testMaster returns the anchoring master event used across the tests.
func testMaster() seismic.Event {
	return seismic.Event{
		Origin:    time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC),
		Latitude:  35.0,
		Longitude: -117.0,
		Depth:     10.0,
		Magnitude: 4.0,
	}
}

// testStations returns three azimuthally distributed stations.
func testStations() []seismic.Station {
	return []seismic.Station{
		{Code: "STA1", Latitude: 36.2, Longitude: -117.1},
		{Code: "STA2", Latitude: 34.5, Longitude: -115.9},
		{Code: "STA3", Latitude: 34.3, Longitude: -118.0},
	}
}

// syntheticObs builds one observation per station with the differential
// time a slave at master+(dlat, dlon, ddep) would produce under uniform
// slownesses, plus a uniform origin-time shift. All weights are 1.
func syntheticObs(master seismic.Event, dlat, dlon, ddep, shift float64) seismic.ObsSet {
	obs := make(seismic.ObsSet, 0, len(testStations()))
	for _, sta := range testStations() {
		refDist, az := geodesy.DistAz(master.Latitude, master.Longitude, sta.Latitude, sta.Longitude)
		trialDist, _ := geodesy.DistAz(master.Latitude+dlat, master.Longitude+dlon, sta.Latitude, sta.Longitude)
		obs = append(obs, seismic.Obs{
			Station:  sta.Code,
			Latitude: sta.Latitude, Longitude: sta.Longitude,
			Distance: refDist, Azimuth: az,
			Phase: "P", Time: 25.0,
			Dtdd: synDtdd, Dtdh: synDtdh,
			Dt:     synDtdd*(trialDist-refDist) + synDtdh*ddep + shift,
			Weight: 1.0,
		})
	}

	return obs
}
