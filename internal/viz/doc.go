// Package viz provides the terminal front-end for the interference figure.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: hosts a figure, renders both plot panels with asciigraph
//   - slider tracks and the Reset button drawn with lipgloss
//   - theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Tab/J/K - Select slider
//	H/L     - Adjust selected slider (shift for coarse steps)
//	R       - Reset all sliders
//	P       - Cycle presets
//	T       - Cycle color themes
//	S       - Save snapshot
//	?       - Show help overlay
//	Q       - Quit
package viz
