// Package engine implements the gravitational N-body core: the body state
// store and the symplectic time integrator that advances it.
//
//   - [Body]: one point mass with position, velocity and force accumulator
//   - [Engine]: owns the body set, steps it, and restores initial conditions
//
// Each tick runs two phases that never interleave: pairwise force
// accumulation over all unordered body pairs (brute force, O(N²)), then a
// kick-drift leapfrog update per body (velocity from the freshly computed
// force, position from the updated velocity). The kick-before-drift ordering
// is what bounds long-run energy drift; swapping it degenerates to explicit
// Euler.
//
// # Example
//
//	eng, _ := engine.New(sun, earth)
//	for i := 0; i < steps; i++ {
//	    eng.Step(dt)
//	}
//	for _, b := range eng.Bodies() {
//	    fmt.Println(b.Name, b.Position)
//	}
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. A tick must run to completion
// before any other goroutine reads body state.
package engine
