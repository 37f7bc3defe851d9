// Package viz provides the live terminal view of a scene.
//
// [Model] is a Bubble Tea model that advances the scene one frame per tick
// and draws it on a braille [render.Canvas], with a speed graph and the
// tunable physics parameters in a side panel.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset particles and parameters
//	Tab   - Select next parameter
//	Up/K  - Increase selected parameter
//	Down/J- Decrease selected parameter
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
