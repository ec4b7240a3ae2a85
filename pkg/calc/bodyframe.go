package calc

import (
	"fmt"

	"github.com/locaddo/locaddo/pkg/units"
)

type FrameSize int

const (
	SmallFrame FrameSize = iota
	MediumFrame
	LargeFrame
)

func (f FrameSize) String() string {
	switch f {
	case SmallFrame:
		return "Small"
	case MediumFrame:
		return "Medium"
	case LargeFrame:
		return "Large"
	default:
		return fmt.Sprintf("FrameSize(%d)", int(f))
	}
}

// frameLimits holds the upper bounds (cm, inclusive) of the small and medium
// frames. Anything above medium is large.
type frameLimits struct {
	small, medium float64
}

func (l frameLimits) shift(d float64) frameLimits {
	return frameLimits{small: l.small + d, medium: l.medium + d}
}

func (l frameLimits) table() ThresholdTable[FrameSize] {
	return MustTable(UpperInclusive,
		Band[FrameSize]{Lower: 0, Label: SmallFrame.String(), Meta: SmallFrame},
		Band[FrameSize]{Lower: l.small, Label: MediumFrame.String(), Meta: MediumFrame},
		Band[FrameSize]{Lower: l.medium, Label: LargeFrame.String(), Meta: LargeFrame},
	)
}

// heightBand splits wrist thresholds into short, average and tall people.
type heightBand int

const (
	shortHeight heightBand = iota
	averageHeight
	tallHeight
)

// wristHeightAdjust is how far (cm) the wrist limits move for short or tall
// heights.
const wristHeightAdjust = 0.5

var (
	wristHeightBounds = map[Gender][2]float64{
		Female: {157, 165},
		Male:   {168, 178},
	}
	wristLimits = map[Gender]frameLimits{
		Female: {small: 14.0, medium: 15.9},
		Male:   {small: 16.5, medium: 18.4},
	}
	elbowLimits = map[Gender]frameLimits{
		Female: {small: 5.7, medium: 6.4},
		Male:   {small: 6.9, medium: 7.6},
	}

	wristTables = map[Gender]map[heightBand]ThresholdTable[FrameSize]{}
	elbowTables = map[Gender]ThresholdTable[FrameSize]{}
)

func init() {
	for g, l := range wristLimits {
		wristTables[g] = map[heightBand]ThresholdTable[FrameSize]{
			shortHeight:   l.shift(-wristHeightAdjust).table(),
			averageHeight: l.table(),
			tallHeight:    l.shift(wristHeightAdjust).table(),
		}
	}
	for g, l := range elbowLimits {
		elbowTables[g] = l.table()
	}
}

func heightBandFor(g Gender, heightCm float64) heightBand {
	b := wristHeightBounds[g]
	switch {
	case heightCm < b[0]:
		return shortHeight
	case heightCm > b[1]:
		return tallHeight
	default:
		return averageHeight
	}
}

// ClassifyFrame maps a measurement in cm to a frame size. Height only
// matters for the wrist method.
func ClassifyFrame(method FrameMethod, g Gender, heightCm, measurementCm float64) FrameSize {
	var t ThresholdTable[FrameSize]
	if method == Elbow {
		t = elbowTables[g]
	} else {
		t = wristTables[g][heightBandFor(g, heightCm)]
	}
	_, band := t.Classify(measurementCm)
	return band.Meta
}

// frameBMI is the BMI range considered ideal for each frame.
var frameBMI = map[FrameSize][2]float64{
	SmallFrame:  {18.5, 22},
	MediumFrame: {20, 24},
	LargeFrame:  {22, 26},
}

var frameAdvice = map[FrameSize][]string{
	SmallFrame: {
		"Focus on maintaining lean muscle mass through strength training",
		"Avoid aggressive bulking phases - gradual weight gain is better",
		"Pay attention to bone health with adequate calcium and vitamin D",
		"Consider lighter weights with higher repetitions in training",
	},
	MediumFrame: {
		"You have flexibility in training and nutrition approaches",
		"Standard fitness and nutrition guidelines typically apply well",
		"Balance cardiovascular and strength training for optimal health",
		"Monitor body composition rather than just weight",
	},
	LargeFrame: {
		"You can handle more intensive strength training programs",
		"Don't be discouraged by higher numbers on the scale",
		"Focus on body composition and how you feel rather than weight alone",
		"You may need higher caloric intake to support your frame",
	},
}

// FrameInput is the body frame form. Wrist and Elbow are in cm (metric) or
// inches (imperial). Height is required for the wrist method only.
type FrameInput struct {
	System units.System
	Gender Gender
	Method FrameMethod
	Height string
	Feet   string
	Inches string
	Wrist  string
	Elbow  string
}

type FrameResult struct {
	Size          FrameSize `json:"-"`
	SizeName      string    `json:"size"`
	MeasurementCm float64   `json:"measurementCm"`
	// IdealWeight is nil when no height was entered.
	IdealWeight     *WeightRange `json:"idealWeight,omitempty"`
	Recommendations []string     `json:"recommendations"`
}

// IdealWeightText renders the ideal weight range as "min - max unit".
func (r FrameResult) IdealWeightText() string {
	if r.IdealWeight == nil {
		return ""
	}
	return fmt.Sprintf("%.1f - %.1f %s", r.IdealWeight.Min, r.IdealWeight.Max, r.IdealWeight.Unit)
}

func BodyFrame(in FrameInput) (FrameResult, bool) {
	heightM, hasHeight := units.Height(in.System, in.Height, in.Feet, in.Inches)
	heightCm := heightM * 100

	raw := in.Wrist
	if in.Method == Elbow {
		raw = in.Elbow
	}
	measurement, ok := units.Length(in.System, raw)
	if !ok {
		return FrameResult{}, false
	}
	if in.Method == Wrist && !hasHeight {
		return FrameResult{}, false
	}

	size := ClassifyFrame(in.Method, in.Gender, heightCm, measurement)
	res := FrameResult{
		Size:            size,
		SizeName:        size.String(),
		MeasurementCm:   measurement,
		Recommendations: append([]string(nil), frameAdvice[size]...),
	}
	if hasHeight {
		b := frameBMI[size]
		wr := weightRangeFor(in.System, heightM, b[0], b[1])
		res.IdealWeight = &wr
	}
	return res, true
}
