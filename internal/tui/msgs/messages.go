// Package msgs defines shared message types for the TUI.
package msgs

// RedrawMsg signals that the progress model or its pulse changed.
type RedrawMsg struct{}
