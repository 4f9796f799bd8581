// Package ddrelocator determines the relative location of two nearby
// seismic events with the master-event (double-difference) algorithm.
//
// 🚀 What is ddrelocator?
//
//	A small, deterministic library that refines the location of a "slave"
//	earthquake relative to a well-located "master" earthquake from the
//	differential travel times of their phase arrivals:
//		• seismic/   — events, stations and differential-time observations
//		• geodesy/   — spherical distance & azimuth primitives
//		• relocator/ — the misfit evaluator and grid-search drivers
//		• obsio/     — observation tables, event lists and misfit-surface files
//
// ✨ Why choose ddrelocator?
//
//   - Deterministic – fixed enumeration order, reproducible tie-breaks,
//     parallel sweeps that return bit-identical results to serial runs
//   - Strict validation – malformed observations abort a sweep instead of
//     silently bending scientific results
//   - Side-effect free – observation sets are never mutated by a search,
//     so one set can back thousands of concurrent trial evaluations
//
// The physical model is the classic master-event linearization: per-station
// slownesses (s/deg horizontal, s/km vertical) evaluated at the master
// location predict how the differential time changes for a small offset in
// epicenter and depth. The weighted mean residual is the origin-time
// correction; the weighted RMS of the corrected residuals is the misfit
// minimized by the search.
//
// Travel-time tables, waveform cross-correlation and plotting are external
// collaborators: they produce the observation tables this library consumes
// and render the surfaces it emits.
package ddrelocator
