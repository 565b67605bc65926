// Package cursor implements the fractional read position shared by the
// playback engines and the two wrap policies they use: pure circular
// wrapping and bounded playback with an optional loop sub-region.
package cursor

import "math"

// Cursor is a fractional buffer position advanced by a signed step.
type Cursor struct {
	Pos  float64
	Step float64
}

// Advance moves the cursor by Step and splits the new position into its
// integer index (floor) and the fractional remainder in [0, 1).
func (c *Cursor) Advance() (int, float64) {
	c.Pos += c.Step
	return Split(c.Pos)
}

// Set places the cursor at index plus frac.
func (c *Cursor) Set(index int, frac float64) {
	c.Pos = float64(index) + frac
}

// Split returns floor(pos) and pos - floor(pos).
func Split(pos float64) (int, float64) {
	f := math.Floor(pos)
	return int(f), pos - f
}

// Circular wraps i into [0, n). Any distance and sign are accepted; n <= 0
// yields 0.
func Circular(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
