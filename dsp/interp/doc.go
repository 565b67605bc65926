// Package interp provides the fractional-position interpolation used when a
// playback cursor falls between two samples.
//
// Available methods, from cheapest to highest quality:
//
//   - [None]:    truncate to the sample at the integer index
//   - [Linear]:  2-point linear interpolation ([Linear2])
//   - [Hermite]: 4-point cubic Hermite ([Hermite4])
package interp
