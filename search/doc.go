// Package search drives the Bombe over a range of rotor keys.
//
// A run has three stages:
//
//   - PlanMenus builds one menu per valid crib alignment in a position range
//     and keeps those whose Turing score is below a threshold (or the only one,
//     when a single position was requested).
//   - Range enumerates candidate keys in a fixed order: reflector, greek
//     wheel, wheel order (skipping repeated rotors), rings, message settings.
//     The right ring can be sampled every n letters and middle ring settings can
//     be pruned by where the left rotor steps (MiddleRingScope).
//   - Searcher.Run fans batches of keys out to an errgroup of workers. Each
//     worker tries the menus in order for every key and keeps the first stop.
//     Stops reach the caller in key order; MaxStops ends the run early.
//
// Workers share the immutable menus and a bombe.Tester; each owns its lookup
// buffers. Progress is exported through a metrics.Registry and logged with zap
// under a per-run UUID.
package search
