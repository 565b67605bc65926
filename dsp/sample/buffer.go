package sample

import "fmt"

// Buffer is a mono sample buffer in one of the supported encodings. At and
// Set convert through the encoding's normalization.
//
// The implementations are the slice types in this package; the interface is
// sealed.
type Buffer interface {
	Len() int
	At(i int) float64
	Set(i int, v float64)
	Format() Format
	sealed()
}

type (
	Float64s []float64
	Float32s []float32
	Uint8s   []uint8
	Int8s    []int8
	Uint16s  []uint16
	Int16s   []int16
)

// New allocates a zeroed buffer of n samples in format f. Zero means raw
// zero, which is not silence for the unsigned encodings.
func New(f Format, n int) (Buffer, error) {
	if n < 0 {
		n = 0
	}
	switch f {
	case Float64:
		return make(Float64s, n), nil
	case Float32:
		return make(Float32s, n), nil
	case Uint8:
		return make(Uint8s, n), nil
	case Int8:
		return make(Int8s, n), nil
	case Uint16:
		return make(Uint16s, n), nil
	case Int16:
		return make(Int16s, n), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Fill writes values (normalized) into b from index 0, returning how many
// were written.
func Fill(b Buffer, values []float64) int {
	n := min(b.Len(), len(values))
	for i := range n {
		b.Set(i, values[i])
	}
	return n
}

func (b Float64s) Len() int             { return len(b) }
func (b Float64s) At(i int) float64     { return b[i] }
func (b Float64s) Set(i int, v float64) { b[i] = v }
func (Float64s) Format() Format         { return Float64 }
func (Float64s) sealed()                {}

func (b Float32s) Len() int             { return len(b) }
func (b Float32s) At(i int) float64     { return float64(b[i]) }
func (b Float32s) Set(i int, v float64) { b[i] = float32(v) }
func (Float32s) Format() Format         { return Float32 }
func (Float32s) sealed()                {}

func (b Uint8s) Len() int             { return len(b) }
func (b Uint8s) At(i int) float64     { return NormalizeUint8(b[i]) }
func (b Uint8s) Set(i int, v float64) { b[i] = DenormalizeUint8(v) }
func (Uint8s) Format() Format         { return Uint8 }
func (Uint8s) sealed()                {}

func (b Int8s) Len() int             { return len(b) }
func (b Int8s) At(i int) float64     { return NormalizeInt8(b[i]) }
func (b Int8s) Set(i int, v float64) { b[i] = DenormalizeInt8(v) }
func (Int8s) Format() Format         { return Int8 }
func (Int8s) sealed()                {}

func (b Uint16s) Len() int             { return len(b) }
func (b Uint16s) At(i int) float64     { return NormalizeUint16(b[i]) }
func (b Uint16s) Set(i int, v float64) { b[i] = DenormalizeUint16(v) }
func (Uint16s) Format() Format         { return Uint16 }
func (Uint16s) sealed()                {}

func (b Int16s) Len() int             { return len(b) }
func (b Int16s) At(i int) float64     { return NormalizeInt16(b[i]) }
func (b Int16s) Set(i int, v float64) { b[i] = DenormalizeInt16(v) }
func (Int16s) Format() Format         { return Int16 }
func (Int16s) sealed()                {}
