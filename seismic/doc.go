// Package seismic defines the domain data model shared by the relocation
// core and its collaborators: events, stations, and differential-time
// observations.
//
// An Obs couples one phase arrival at one station with the geometry and
// slownesses needed to linearize its travel time around the master event:
//
//   - Distance/Azimuth — epicentral geometry from the *master* event,
//     computed once and held fixed. Sensitivities are evaluated at the
//     master location; trial solutions never rewrite this reference.
//   - Dtdd/Dtdh — horizontal (s/deg) and vertical (s/km) slownesses from an
//     external 1-D travel-time model.
//   - Dt — the observed slave-minus-master differential time in seconds.
//   - Weight — non-negative weight; 0 keeps the observation in the set for
//     reporting but removes all influence on the fit.
//
// ObsSet.Validate enforces the invariants the evaluator depends on: a
// non-empty set, finite fields, non-negative weights, and at least one
// observation with positive weight. A malformed record invalidates the
// whole set — silently dropping data would change scientific results.
//
// Travel-time tables themselves are out of scope: TravelTime and
// VerticalSlowness only adapt an external model's arrival (ray parameter,
// takeoff angle) into the slownesses an Obs carries.
package seismic
