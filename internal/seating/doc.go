// Package seating places a class on a grid of desks.
//
// [Allocate] is a pure function of the student list, a [Layout] and an
// injected *rand.Rand. It fills the grid in three passes:
//
//   - disruptive students go to random cells with no disruptive
//     orthogonal neighbor, within a bounded number of draws
//   - front-row students go to the front row (the last grid row),
//     spilling over into the rows behind it
//   - everyone else fills the remaining seats front to back, left to right
//
// Every cell of the result is one of [Blocked], [Empty] or [Occupied].
//
// # Manual edits
//
// [Swap] exchanges two seats without re-checking the adjacency rule.
// [Grid.Violations] lists the disruptive pairs an edit left side by side.
package seating
