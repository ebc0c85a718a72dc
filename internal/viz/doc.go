// Package viz provides the terminal gallery.
//
// Every effect gets a bordered unit drawn with half-block cells, so one
// terminal row shows two pixel rows. The bubbletea tick pumps the frame
// loop, which advances only the selected effect.
//
// # Mouse
//
// Moving over a unit hovers it and selects it. Clicking selects it too;
// clicking the button under the selected unit pauses or resumes it.
//
// # Key Bindings
//
//	←/→ h/l - Move focus and hover
//	Enter   - Click the focused unit
//	Space   - Pause/Resume the selected effect
//	M       - Mount/Unmount the focused unit
//	T       - Cycle color themes
//	Q       - Quit
package viz
