package relocator_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/ddrelocator/geodesy"
	"github.com/katalvlaran/ddrelocator/relocator"
	"github.com/katalvlaran/ddrelocator/seismic"
)

// ExampleSearch relocates a synthetic slave event: three stations observe
// the differential times a slave at (+0.001°, −0.002°, +0.5 km) with a
// 0.3 s origin-time shift would produce, and an exhaustive sweep recovers
// that offset.
func ExampleSearch() {
	master := seismic.Event{
		Origin:   time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC),
		Latitude: 35.0, Longitude: -117.0, Depth: 10.0, Magnitude: 4.0,
	}
	stations := []seismic.Station{
		{Code: "STA1", Latitude: 36.2, Longitude: -117.1},
		{Code: "STA2", Latitude: 34.5, Longitude: -115.9},
		{Code: "STA3", Latitude: 34.3, Longitude: -118.0},
	}

	// Synthesize observations from the "true" offset (dtdd=10 s/deg,
	// dtdh=−0.2 s/km, shift=0.3 s). In production these come from
	// cross-correlated waveforms and a travel-time model.
	const dlat, dlon, ddep, shift = 0.001, -0.002, 0.5, 0.3
	var obs seismic.ObsSet
	for _, sta := range stations {
		ref, az := geodesy.DistAz(master.Latitude, master.Longitude, sta.Latitude, sta.Longitude)
		trial, _ := geodesy.DistAz(master.Latitude+dlat, master.Longitude+dlon, sta.Latitude, sta.Longitude)
		obs = append(obs, seismic.Obs{
			Station: sta.Code, Latitude: sta.Latitude, Longitude: sta.Longitude,
			Distance: ref, Azimuth: az, Phase: "P", Time: 25.0,
			Dtdd: 10.0, Dtdh: -0.2,
			Dt:     10.0*(trial-ref) - 0.2*ddep + shift,
			Weight: 1.0,
		})
	}

	res, err := relocator.Search(master, obs, relocator.GeographicRegion{
		Dlat: relocator.Axis{Start: -0.01, Stop: 0.01, Step: 0.001},
		Dlon: relocator.Axis{Start: -0.01, Stop: 0.01, Step: 0.001},
		Ddep: relocator.Axis{Start: -1, Stop: 1, Step: 0.1},
	}, relocator.DefaultOptions())
	if err != nil {
		fmt.Println("search failed:", err)

		return
	}

	bLat, bLon, bDep := res.Best.Offsets()
	fmt.Printf("evaluations: %d\n", res.Evaluations)
	fmt.Printf("best offset: dlat=%.3f° dlon=%.3f° ddepth=%.1f km\n", bLat, bLon, bDep)
	fmt.Printf("tmean: %.2f s, misfit below 1e-6 s: %t\n", res.Best.TMean(), res.Best.Misfit() < 1e-6)
	// Output:
	// evaluations: 9261
	// best offset: dlat=0.001° dlon=-0.002° ddepth=0.5 km
	// tmean: 0.30 s, misfit below 1e-6 s: true
}

// ExampleTrySolution scores a single trial offset and reports the
// origin-time correction and misfit it implies.
func ExampleTrySolution() {
	master := seismic.Event{Latitude: 0, Longitude: 0, Depth: 12}
	obs := seismic.ObsSet{
		{Station: "N", Latitude: 1, Longitude: 0, Distance: 1, Azimuth: 0, Phase: "P", Dtdd: 10, Dtdh: -0.2, Dt: -0.11, Weight: 1},
		{Station: "E", Latitude: 0, Longitude: 1, Distance: 1, Azimuth: 90, Phase: "P", Dtdd: 10, Dtdh: -0.2, Dt: 0.05, Weight: 1},
		{Station: "S", Latitude: -1, Longitude: 0, Distance: 1, Azimuth: 180, Phase: "P", Dtdd: 10, Dtdh: -0.2, Dt: 0.09, Weight: 1},
	}

	sol, err := relocator.NewGeographicSolution(master, 0.01, 0, 0)
	if err != nil {
		fmt.Println("construction failed:", err)

		return
	}
	if err = relocator.TrySolution(obs, sol); err != nil {
		fmt.Println("evaluation failed:", err)

		return
	}

	fmt.Printf("tmean: %.3f s\n", sol.TMean())
	fmt.Printf("misfit: %.3f s\n", sol.Misfit())
	// Output:
	// tmean: 0.010 s
	// misfit: 0.028 s
}
