package interp

import "fmt"

// Mode selects an interpolation method.
type Mode int

const (
	None Mode = iota
	Linear
	Hermite
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Linear:
		return "linear"
	case Hermite:
		return "hermite"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{None, Linear, Hermite} {
		if m.String() == s {
			return m, nil
		}
	}
	return None, fmt.Errorf("unknown interpolation mode %q", s)
}

// Linear2 interpolates from x0 to x1 at fraction t.
func Linear2(t, x0, x1 float64) float64 {
	return x0*(1-t) + x1*t
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
