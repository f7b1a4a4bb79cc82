package model

// Result is a recognition hypothesis taken from the first alternative of a
// streaming result.
type Result struct {
	Transcript string
	IsFinal    bool
	// Stability estimates how likely an interim result is to change. It is
	// zero for final results.
	Stability float32
}
