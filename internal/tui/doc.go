// Package tui is the interactive ticket board. It renders the viewer's
// scoped ticket list with filtering, a history drill-down, and
// approve/reject prompts, on top of the same policy package the plain
// CLI commands use. All network work happens in commands; the model
// itself never blocks.
package tui
