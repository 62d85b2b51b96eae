// File: fixed.go
// Title: Plain and Fixed-Width Rendering
// Description: ToPlainString, IntToFixedWidth, ToFixedWidth and Round.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation

package fixedx

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Unspecified asks ToFixedWidth to drop the fraction without rounding.
// Any negative post-point width is treated the same way.
const Unspecified = -1

// maxPlaces exceeds the fractional digits of the shortest rendering of any
// float64, so rounding to it or beyond leaves every value unchanged.
const maxPlaces = 400

const (
	nanToken    = "NaN"
	posInfToken = "Inf"
	negInfToken = "-Inf"
)

// ToPlainString returns the shortest decimal rendering of v that parses back
// to v, without exponent and without trailing zeros. The second result is
// false for NaN.
func ToPlainString(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "", false
	case math.IsInf(v, 1):
		return posInfToken, true
	case math.IsInf(v, -1):
		return negInfToken, true
	case v == 0:
		// also catches -0
		return "0", true
	}

	return strconv.FormatFloat(v, 'f', -1, 64), true
}

// IntToFixedWidth left-pads the decimal form of v with spaces to width.
// Longer values are never truncated.
func IntToFixedWidth(v int, width int) string {
	return padLeft(strconv.Itoa(v), width, ' ')
}

// ToFixedWidth renders v with its integer part left-padded with spaces to
// prePointWidth. When postPointWidth is given and non-negative, v is rounded
// to that many places and a positive width appends the fraction, right-padded
// with zeros. Without postPointWidth the fraction is dropped unrounded.
func ToFixedWidth(v float64, prePointWidth int, postPointWidth ...int) string {
	post := Unspecified
	if len(postPointWidth) > 0 {
		post = postPointWidth[0]
	}

	if token, special := specialToken(v); special {
		return padLeft(token, prePointWidth, ' ')
	}

	if post >= 0 {
		v = Round(v, post)
	}

	plain, _ := ToPlainString(v)
	intPart, fracPart, _ := strings.Cut(plain, ".")

	result := padLeft(intPart, prePointWidth, ' ')
	if post > 0 {
		result += "." + padRight(fracPart, post, '0')
	}

	return result
}

// Round rounds v half-to-even to places fractional digits. NaN, infinities
// and negative places return v unchanged.
func Round(v float64, places int) float64 {
	if places < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if places >= maxPlaces {
		return v
	}

	rounded, _ := decimal.NewFromFloat(v).RoundBank(int32(places)).Float64()
	return rounded
}

func specialToken(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return nanToken, true
	case math.IsInf(v, 1):
		return posInfToken, true
	case math.IsInf(v, -1):
		return negInfToken, true
	}
	return "", false
}
