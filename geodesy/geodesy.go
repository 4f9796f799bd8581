package geodesy

import "math"

// EarthRadiusKm is the mean Earth radius used by all spherical conversions.
const EarthRadiusKm = 6371.0

// degPerRad converts radians to degrees.
const degPerRad = 180.0 / math.Pi

// DistAz returns the great-circle distance (degrees of arc) and the forward
// azimuth (degrees clockwise from north, in [0, 360)) from point 1 to
// point 2.
//
// The distance uses the haversine form, which stays numerically stable for
// the very short distances a relocation sweep produces. For coincident
// points the distance is 0 and the azimuth is 0 by convention. Antipodal
// points return distance 180; their azimuth is mathematically arbitrary and
// whatever the formula yields is normalized into [0, 360).
//
// Complexity: O(1), no allocations.
func DistAz(lat1, lon1, lat2, lon2 float64) (distDeg, azDeg float64) {
	phi1 := lat1 / degPerRad
	phi2 := lat2 / degPerRad
	dPhi := (lat2 - lat1) / degPerRad
	dLam := (lon2 - lon1) / degPerRad

	// Haversine central angle.
	sinPhi := math.Sin(dPhi / 2)
	sinLam := math.Sin(dLam / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLam*sinLam
	distDeg = 2 * math.Asin(math.Min(1, math.Sqrt(h))) * degPerRad

	if distDeg == 0 {
		return 0, 0
	}

	// Forward azimuth at point 1.
	y := math.Sin(dLam) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLam)
	azDeg = math.Atan2(y, x) * degPerRad
	if azDeg < 0 {
		azDeg += 360
	}
	if azDeg >= 360 {
		azDeg -= 360
	}

	return distDeg, azDeg
}

// Kilometers2Degrees converts a distance along the surface from kilometers
// to degrees of arc on the 6371 km sphere.
func Kilometers2Degrees(km float64) float64 {
	return km / EarthRadiusKm * degPerRad
}

// Degrees2Kilometers converts a distance along the surface from degrees of
// arc to kilometers on the 6371 km sphere.
func Degrees2Kilometers(deg float64) float64 {
	return deg / degPerRad * EarthRadiusKm
}
