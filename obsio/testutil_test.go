package obsio_test

import (
	"time"

	"github.com/katalvlaran/ddrelocator/geodesy"
	"github.com/katalvlaran/ddrelocator/seismic"
)

// seismicMaster returns the master event used by the surface tests.
func seismicMaster() seismic.Event {
	return seismic.Event{
		Origin:    time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC),
		Latitude:  35.0,
		Longitude: -117.0,
		Depth:     10.0,
		Magnitude: 4.0,
	}
}

// seismicObs builds a small self-consistent observation set around master.
func seismicObs(master seismic.Event) seismic.ObsSet {
	stations := []seismic.Station{
		{Code: "STA1", Latitude: 36.2, Longitude: -117.1},
		{Code: "STA2", Latitude: 34.5, Longitude: -115.9},
		{Code: "STA3", Latitude: 34.3, Longitude: -118.0},
	}

	obs := make(seismic.ObsSet, 0, len(stations))
	for _, sta := range stations {
		dist, az := geodesy.DistAz(master.Latitude, master.Longitude, sta.Latitude, sta.Longitude)
		obs = append(obs, seismic.Obs{
			Station:  sta.Code,
			Latitude: sta.Latitude, Longitude: sta.Longitude,
			Distance: dist, Azimuth: az,
			Phase: "P", Time: 25.0,
			Dtdd: 10.0, Dtdh: -0.2,
			Dt:     0.05,
			Weight: 1.0,
		})
	}

	return obs
}
