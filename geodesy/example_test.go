package geodesy_test

import (
	"fmt"

	"github.com/katalvlaran/ddrelocator/geodesy"
)

// ExampleDistAz computes the epicentral distance and azimuth from an
// epicenter to a station ten degrees due east on the equator.
func ExampleDistAz() {
	dist, az := geodesy.DistAz(0, 0, 0, 10)
	fmt.Printf("distance: %.1f°, azimuth: %.1f°\n", dist, az)
	// Output:
	// distance: 10.0°, azimuth: 90.0°
}

// ExampleKilometers2Degrees converts a 55.6 km epicentral distance to
// degrees of arc.
func ExampleKilometers2Degrees() {
	fmt.Printf("%.2f°\n", geodesy.Kilometers2Degrees(55.597463))
	// Output:
	// 0.50°
}
