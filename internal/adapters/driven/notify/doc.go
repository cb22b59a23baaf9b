// Package notify provides driven.Notifier implementations.
//
// Terminal renders notices to a writer with lipgloss. Recorder keeps them
// in memory for callers that present notices themselves, such as the TUI.
package notify
