// Package core holds the small numeric helpers, unit conversions and shared
// processor configuration used across the engines.
package core
