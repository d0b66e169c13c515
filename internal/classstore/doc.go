// Package classstore keeps named snapshots of a class: its roster and,
// optionally, the last seating plan.
//
// All snapshots live in one JSON list under a fixed key, either in a file
// in the data directory or in Redis. Saving under an existing name
// overwrites that snapshot but keeps its id. Writes are last-writer-wins;
// there is no locking.
package classstore
