package sample

import (
	"fmt"
	"math"
)

// Format identifies a sample encoding.
type Format uint8

// Supported formats. Integer formats map their full raw range onto [-1, 1].
const (
	Float64 Format = iota // native float64, stored as is
	Float32               // float32, widened on read
	Uint8                 // unsigned 8-bit, 128 near silence
	Int8                  // signed 8-bit
	Uint16                // unsigned 16-bit
	Int16                 // signed 16-bit
)

type variant struct {
	name        string
	bits        int
	normalize   func(raw float64) float64
	denormalize func(x float64) float64
}

var variants = [...]variant{
	Float64: {name: "float64", bits: 64, normalize: identity, denormalize: identity},
	Float32: {
		name:        "float32",
		bits:        32,
		normalize:   identity,
		denormalize: func(x float64) float64 { return float64(float32(x)) },
	},
	Uint8: {
		name:        "uint8",
		bits:        8,
		normalize:   func(raw float64) float64 { return raw/255*2 - 1 },
		denormalize: func(x float64) float64 { return float64(DenormalizeUint8(x)) },
	},
	Int8: {
		name:        "int8",
		bits:        8,
		normalize:   func(raw float64) float64 { return (raw+128)/255*2 - 1 },
		denormalize: func(x float64) float64 { return float64(DenormalizeInt8(x)) },
	},
	Uint16: {
		name:        "uint16",
		bits:        16,
		normalize:   func(raw float64) float64 { return raw/65535*2 - 1 },
		denormalize: func(x float64) float64 { return float64(DenormalizeUint16(x)) },
	},
	Int16: {
		name:        "int16",
		bits:        16,
		normalize:   func(raw float64) float64 { return (raw+32768)/65535*2 - 1 },
		denormalize: func(x float64) float64 { return float64(DenormalizeInt16(x)) },
	},
}

func identity(x float64) float64 { return x }

// Valid reports whether f is one of the defined encodings.
func (f Format) Valid() bool {
	return int(f) < len(variants)
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return variants[f].name
}

// Bits returns the encoded width of one sample.
func (f Format) Bits() int {
	if !f.Valid() {
		return 0
	}
	return variants[f].bits
}

// Normalize converts a raw encoded value to [-1, 1].
func (f Format) Normalize(raw float64) float64 {
	if !f.Valid() {
		return 0
	}
	return variants[f].normalize(raw)
}

// Denormalize converts a normalized value to the nearest raw encoded value.
// Integer encodings clamp x to [-1, 1] first.
func (f Format) Denormalize(x float64) float64 {
	if !f.Valid() {
		return 0
	}
	return variants[f].denormalize(x)
}

// NormalizeUint8 converts an unsigned 8-bit sample.
func NormalizeUint8(raw uint8) float64 { return float64(raw)/255*2 - 1 }

// NormalizeInt8 converts a signed 8-bit sample.
func NormalizeInt8(raw int8) float64 { return (float64(raw)+128)/255*2 - 1 }

// NormalizeUint16 converts an unsigned 16-bit sample.
func NormalizeUint16(raw uint16) float64 { return float64(raw)/65535*2 - 1 }

// NormalizeInt16 converts a signed 16-bit sample.
func NormalizeInt16(raw int16) float64 { return (float64(raw)+32768)/65535*2 - 1 }

// unit maps [-1, 1] to [0, 1] with clamping.
func unit(x float64) float64 {
	if x < -1 || math.IsNaN(x) {
		x = -1
	} else if x > 1 {
		x = 1
	}
	return (x + 1) * 0.5
}

// DenormalizeUint8 maps x in [-1, 1] to the full uint8 range, clamping.
func DenormalizeUint8(x float64) uint8 { return uint8(math.Round(unit(x) * 255)) }

// DenormalizeInt8 maps x in [-1, 1] to the full int8 range, clamping.
func DenormalizeInt8(x float64) int8 { return int8(math.Round(unit(x)*255) - 128) }

// DenormalizeUint16 maps x in [-1, 1] to the full uint16 range, clamping.
func DenormalizeUint16(x float64) uint16 { return uint16(math.Round(unit(x) * 65535)) }

// DenormalizeInt16 maps x in [-1, 1] to the full int16 range, clamping.
func DenormalizeInt16(x float64) int16 { return int16(math.Round(unit(x)*65535) - 32768) }
