// Package goheap provides the runtime surface of a memory management
// toolkit degenerated to a single immortal space, with a limited scope:
//
//   - One process wide heap, bootstrapped exactly once with Init().
//   - Mutators are per-thread allocation contexts bound with
//     Bindmutator(); allocation flows through Mutator.Alloc().
//   - The fast path is bump allocation from the immortal space, space
//     is never reclaimed and never moved.
//   - The slow path is a seam for a tracing collector, registered with
//     Setcollector(). Without one the slow path is fatal.
//
// Applications needing explicit region handles, for tests or for
// multiple coexisting spaces, should use package immortal directly.
package goheap
