// Package immortal supplies a bump-pointer memory region for objects
// that are never individually freed, with a limited scope:
//
//   - A Region is one contiguous reservation carved out monotonically
//     by a cursor, space is never reclaimed, never compacted and never
//     moved. Free() is a documented no-op.
//   - Allocation supports arbitrary power-of-2 alignment with a signed
//     byte offset applied after alignment, so that an interior field
//     of the payload can land on the aligned boundary.
//   - Regions are single-owner by default and carry no synchronization
//     on the fast path. Regions created with "concurrent" true commit
//     the cursor with a compare-and-swap retry loop instead.
//   - Fresh reservations are zero-filled, clients may rely on implicit
//     zero-initialization of allocations. Build with `-tags debug` to
//     poison fresh allocations and flush out that reliance.
//
// This degenerates a full collector into a single immortal space: the
// right model for permanent object spaces and for benchmarking the
// allocation fast path in isolation.
package immortal
