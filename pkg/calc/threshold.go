package calc

import (
	"fmt"
	"math"
)

// Bounds is the boundary convention a ThresholdTable uses.
type Bounds int

const (
	// LowerInclusive bands are [lower, next lower).
	LowerInclusive Bounds = iota
	// UpperInclusive bands are (lower, next lower]. The first band also
	// holds its own lower bound.
	UpperInclusive
)

// Band is one row of a ThresholdTable. Meta carries whatever the calculator
// wants to show alongside the label.
type Band[M any] struct {
	Lower float64
	Label string
	Meta  M
}

// ThresholdTable is an ordered, gapless set of bands. The last band extends
// to +Inf. A table is immutable once built; the index of a band is its
// severity.
type ThresholdTable[M any] struct {
	bounds Bounds
	bands  []Band[M]
}

// MustTable builds a table and panics if bands are empty or not strictly
// ascending. Tables are package-level values, so a bad one fails at init.
func MustTable[M any](bounds Bounds, bands ...Band[M]) ThresholdTable[M] {
	if len(bands) == 0 {
		panic("threshold table must have at least one band")
	}
	for i := 1; i < len(bands); i++ {
		if !(bands[i].Lower > bands[i-1].Lower) {
			panic(fmt.Sprintf("threshold table not ascending at band %d (%q): %v <= %v",
				i, bands[i].Label, bands[i].Lower, bands[i-1].Lower))
		}
	}

	cp := make([]Band[M], len(bands))
	copy(cp, bands)
	return ThresholdTable[M]{bounds: bounds, bands: cp}
}

func (t ThresholdTable[M]) Len() int { return len(t.bands) }

func (t ThresholdTable[M]) At(i int) Band[M] { return t.bands[i] }

// Upper is the exclusive (or inclusive, for UpperInclusive tables) upper
// bound of band i.
func (t ThresholdTable[M]) Upper(i int) float64 {
	if i+1 >= len(t.bands) {
		return math.Inf(1)
	}
	return t.bands[i+1].Lower
}

// Bands returns a copy of the rows, lowest first.
func (t ThresholdTable[M]) Bands() []Band[M] {
	cp := make([]Band[M], len(t.bands))
	copy(cp, t.bands)
	return cp
}

// Classify returns the index and band containing v. Values below the first
// lower bound, and NaN, land in the first band.
func (t ThresholdTable[M]) Classify(v float64) (int, Band[M]) {
	idx := 0
	for i := 1; i < len(t.bands); i++ {
		lower := t.bands[i].Lower
		if v > lower || (t.bounds == LowerInclusive && v == lower) {
			idx = i
			continue
		}
		break
	}
	return idx, t.bands[idx]
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return math.Min(hi, math.Max(lo, v))
}
