// Package viz renders seating grids and groups for the terminal with
// lipgloss. Rooms are drawn back row first so the front row sits at the
// bottom of the output, next to the "front" marker.
package viz
