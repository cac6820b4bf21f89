package search

import (
	"strconv"

	"github.com/chewxy/math32"
)

const (
	// undefinedBits is a quiet NaN with a payload, used to tag "no value yet".
	undefinedBits = 0x7FE00000
)

// Undefined returns the NaN tagged value that marks an absent value or bound.
func Undefined() float32 { return math32.Float32frombits(undefinedBits) }

// IsUndefined returns true if v is the value returned by Undefined.
func IsUndefined(v float32) bool { return math32.Float32bits(v) == undefinedBits }

// NegInf and PosInf are the bounds of the initial search window.
func NegInf() float32 { return math32.Inf(-1) }
func PosInf() float32 { return math32.Inf(1) }

// FormatValue formats a value or bound for labels: infinities print as -∞
// and ∞, absent values as ·.
func FormatValue(v float32) string {
	switch {
	case IsUndefined(v):
		return "·"
	case math32.IsInf(v, -1):
		return "-∞"
	case math32.IsInf(v, 1):
		return "∞"
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
