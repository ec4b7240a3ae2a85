package calc

import (
	"math"
	"strconv"
	"strings"
)

// AP Chemistry exam section maxima. Each section is worth half of the
// 100-point composite.
const (
	APChemMaxMCQ  = 60
	APChemMaxFRQ  = 46
	apSectionPart = 50
)

// Cut scores for AP scores 2 through 5 on each curve. These are estimates,
// not College Board data.
var apCurves = map[Curve]ThresholdTable[int]{
	Typical: apCurve(30, 45, 65, 85),
	Lenient: apCurve(28, 42, 60, 80),
	Strict:  apCurve(33, 50, 70, 88),
}

func apCurve(two, three, four, five float64) ThresholdTable[int] {
	return MustTable(LowerInclusive,
		Band[int]{Lower: 0, Label: "1", Meta: 1},
		Band[int]{Lower: two, Label: "2", Meta: 2},
		Band[int]{Lower: three, Label: "3", Meta: 3},
		Band[int]{Lower: four, Label: "4", Meta: 4},
		Band[int]{Lower: five, Label: "5", Meta: 5},
	)
}

// APCurveBands returns the composite cut scores of a curve, lowest first.
func APCurveBands(c Curve) []Band[int] { return apCurves[c].Bands() }

// APChemInput holds the two raw section scores. Blank or garbage counts as 0.
type APChemInput struct {
	MCQ   string
	FRQ   string
	Curve Curve
}

type APChemResult struct {
	Composite float64 `json:"composite"`
	Score     int     `json:"score"`
	MCQFrac   float64 `json:"mcqFraction"`
	FRQFrac   float64 `json:"frqFraction"`
	// NextBreak and NeededMCQ are nil when Score is already 5.
	NextBreak *float64 `json:"nextBreak,omitempty"`
	NeededMCQ *int     `json:"neededMcqForNext,omitempty"`
}

func lenientNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// APComposite is the 0–100 composite. Section scores are clamped to their
// valid range first.
func APComposite(mcq, frq float64) float64 {
	return clamp(mcq, 0, APChemMaxMCQ)/APChemMaxMCQ*apSectionPart +
		clamp(frq, 0, APChemMaxFRQ)/APChemMaxFRQ*apSectionPart
}

// APChemistry estimates an AP Chemistry score. Every input produces a result.
func APChemistry(in APChemInput) APChemResult {
	mcq, frq := lenientNumber(in.MCQ), lenientNumber(in.FRQ)
	mcqFrac := clamp(mcq, 0, APChemMaxMCQ) / APChemMaxMCQ
	frqFrac := clamp(frq, 0, APChemMaxFRQ) / APChemMaxFRQ
	composite := APComposite(mcq, frq)

	table := apCurves[in.Curve]
	idx, band := table.Classify(composite)
	res := APChemResult{
		Composite: composite,
		Score:     band.Meta,
		MCQFrac:   mcqFrac,
		FRQFrac:   frqFrac,
	}

	if idx+1 < table.Len() {
		next := table.At(idx + 1).Lower
		// Solve next = mcq/60*50 + frqPart for mcq.
		need := (next - frqFrac*apSectionPart) / apSectionPart * APChemMaxMCQ
		needed := int(math.Ceil(clamp(need, 0, APChemMaxMCQ)))
		res.NextBreak = &next
		res.NeededMCQ = &needed
	}
	return res
}
