// Package geodesy provides the spherical-Earth primitives used by the
// relocation core: great-circle distance, forward azimuth, and conversions
// between kilometers and degrees of arc.
//
// All functions assume a spherical Earth of radius 6371 km. That is the
// standard approximation for master-event relocation, where every distance
// of interest is a *difference* between two nearly identical paths and
// ellipsoidal corrections cancel to far below the timing noise.
//
// Conventions:
//
//   - Latitudes and longitudes are geographic degrees.
//   - Distances are degrees of arc unless a function name says kilometers.
//   - Azimuths are degrees clockwise from north at the first point,
//     normalized to [0, 360).
//   - Coincident points have distance 0 and, by convention, azimuth 0.
//
// Complexity: every function is O(1), allocation-free, and safe for
// concurrent use.
package geodesy
