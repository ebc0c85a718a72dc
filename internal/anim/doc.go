// Package anim drives effect animation time.
//
// A [Driver] is a two-state machine (Paused, Playing) bound to one effect
// and one surface. While Playing it requests a frame callback per display
// refresh, accumulates the timestamp delta into the shared [Table] and
// repaints. Entering Paused cancels the pending callback and repaints once
// at the frozen time.
//
// Drivers hold no selection logic; the gallery decides which one plays.
//
// # Thread Safety
//
// Drivers and tables are not safe for concurrent use. They are owned by a
// single host loop which also pumps the frame scheduler.
package anim
