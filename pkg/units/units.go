// Package units turns raw form input into canonical metric quantities.
//
// Nothing in this package reports an error for bad user input. A field that is
// blank, non-numeric, non-finite or out of domain simply yields ok=false, and
// callers treat that as "nothing to show yet".
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Conversion factors. These are the exact definitions, not approximations.
const (
	CentimetersPerInch = 2.54
	MetersPerInch      = 0.0254
	KilogramsPerPound  = 0.453592
	InchesPerFoot      = 12
)

// System is the unit system a form was filled in with.
type System int

const (
	Metric System = iota
	Imperial
)

func (s System) String() string {
	switch s {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// WeightUnit is the display unit for weights in this system.
func (s System) WeightUnit() string {
	if s == Imperial {
		return "lbs"
	}
	return "kg"
}

// LengthUnit is the display unit for short lengths in this system.
func (s System) LengthUnit() string {
	if s == Imperial {
		return "in"
	}
	return "cm"
}

// ParseSystem accepts "metric" or "imperial", case-insensitively.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	default:
		return Metric, fmt.Errorf("unknown unit system %q, expected metric or imperial", s)
	}
}

func parse(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParsePositive parses raw as a finite number strictly greater than zero.
func ParsePositive(raw string) (float64, bool) {
	v, ok := parse(raw)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseNonNegative parses raw as a finite number greater than or equal to zero.
func ParseNonNegative(raw string) (float64, bool) {
	v, ok := parse(raw)
	if !ok || v < 0 {
		return 0, false
	}
	return v, true
}

// orZero is the lenient parse used for optional sub-fields such as the inches
// part of a feet+inches height.
func orZero(raw string) float64 {
	v, ok := ParseNonNegative(raw)
	if !ok {
		return 0
	}
	return v
}

func PoundsToKilograms(lb float64) float64 { return lb * KilogramsPerPound }

func KilogramsToPounds(kg float64) float64 { return kg / KilogramsPerPound }

func InchesToCentimeters(in float64) float64 { return in * CentimetersPerInch }

func CentimetersToInches(cm float64) float64 { return cm / CentimetersPerInch }

// FeetInchesToMeters converts a feet+inches height to meters.
func FeetInchesToMeters(ft, in float64) float64 {
	return (ft*InchesPerFoot + in) * MetersPerInch
}

// Height returns the height in meters. Metric forms fill cm; imperial forms
// fill ft and in, either of which may be blank as long as the total is positive.
func Height(system System, cm, ft, in string) (float64, bool) {
	if system == Imperial {
		m := FeetInchesToMeters(orZero(ft), orZero(in))
		if m <= 0 {
			return 0, false
		}
		return m, true
	}

	v, ok := ParsePositive(cm)
	if !ok {
		return 0, false
	}
	return v / 100, true
}

// Weight returns the weight in kilograms. raw is kg or lb depending on system.
func Weight(system System, raw string) (float64, bool) {
	v, ok := ParsePositive(raw)
	if !ok {
		return 0, false
	}
	if system == Imperial {
		return PoundsToKilograms(v), true
	}
	return v, true
}

// Length returns a short length (circumference, breadth) in centimeters.
func Length(system System, raw string) (float64, bool) {
	v, ok := ParsePositive(raw)
	if !ok {
		return 0, false
	}
	if system == Imperial {
		return InchesToCentimeters(v), true
	}
	return v, true
}

// DisplayWeight converts kilograms back to the unit the user entered.
func DisplayWeight(system System, kg float64) float64 {
	if system == Imperial {
		return KilogramsToPounds(kg)
	}
	return kg
}
