// Package rc provides single-goroutine reference-counted handles.
//
// What:
//
//   - Handle[T]: an ownership-bearing reference to one shared allocation.
//     Clone increments the allocation's strong count and returns a new
//     handle aliasing the same storage; Drop detaches the handle and
//     decrements the count. When the count reaches zero the allocation is
//     freed exactly once.
//   - Owner: payloads that themselves hold handles (graph nodes, list cells)
//     report them through OwnedHandles so that freeing the payload releases
//     its subtree. Release runs on an explicit work stack, so tearing down a
//     chain of a million nodes uses O(1) call-stack depth.
//   - Tracker: optional allocation bookkeeping with zerolog trace output,
//     used by tests and the rcgraph CLI to prove that every allocation was
//     freed exactly once.
//   - NewShared: a handle to a cell.Cell, the building block for payloads
//     that are mutated in place while shared.
//
// Ownership rules:
//
//   - A handle value is either live or released. Drop on a released handle
//     is a no-op, so one handle can never decrement the count twice.
//   - Get, Clone and Key panic with ErrReleased on a released handle; this
//     is a use-after-drop contract violation, not a recoverable condition.
//   - StrongCount is a diagnostic. Do not drive program logic from it.
//
// Concurrency:
//
//   - None. Counts are plain integers. Share handles across goroutines only
//     behind your own synchronization.
//
// Complexity:
//
//   - New, Clone, StrongCount, Key, Same: O(1).
//   - Drop: O(1) when the count stays positive, O(size of the freed
//     subgraph) otherwise.
package rc
