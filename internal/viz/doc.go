// Package viz renders formula results for the terminal.
//
//   - [Renderer]: lipgloss-styled result and error blocks
//   - [WriteTable], [WriteJSON]: plain and machine-readable output
//   - [Plot]: ASCII line plot of one output against one input
//   - Theme selection with 4 built-in color schemes
package viz
