package calc

import (
	"github.com/locaddo/locaddo/pkg/units"
)

// Bounds of the healthy BMI range used for weight-range suggestions.
const (
	HealthyBMIMin = 18.5
	HealthyBMIMax = 24.9
)

var bmiTable = MustTable(LowerInclusive,
	Band[string]{Lower: 0, Label: "Underweight", Meta: "Below 18.5"},
	Band[string]{Lower: 18.5, Label: "Normal weight", Meta: "18.5 - 24.9"},
	Band[string]{Lower: 25.0, Label: "Overweight", Meta: "25.0 - 29.9"},
	Band[string]{Lower: 30.0, Label: "Obesity", Meta: "30.0+"},
)

// BMIBands lists the BMI categories with their display ranges, lowest first.
func BMIBands() []Band[string] { return bmiTable.Bands() }

// ClassifyBMI returns the severity index and band for a BMI value.
func ClassifyBMI(bmi float64) (int, Band[string]) { return bmiTable.Classify(bmi) }

// BodyMassIndex is kg / m².
func BodyMassIndex(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}

// WeightForBMI is the weight in kg that yields bmi at heightM.
func WeightForBMI(bmi, heightM float64) float64 {
	return bmi * heightM * heightM
}

// WeightRange is a min/max weight in a display unit.
type WeightRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

func weightRangeFor(system units.System, heightM, minBMI, maxBMI float64) WeightRange {
	return WeightRange{
		Min:  units.DisplayWeight(system, WeightForBMI(minBMI, heightM)),
		Max:  units.DisplayWeight(system, WeightForBMI(maxBMI, heightM)),
		Unit: system.WeightUnit(),
	}
}

// HealthyWeightRange is the 18.5–24.9 BMI weight range at heightM, in the
// system's weight unit.
func HealthyWeightRange(system units.System, heightM float64) WeightRange {
	return weightRangeFor(system, heightM, HealthyBMIMin, HealthyBMIMax)
}

// BMIInput is the BMI form. Metric forms fill Weight (kg) and Height (cm);
// imperial forms fill Weight (lb), Feet and Inches.
type BMIInput struct {
	System units.System
	Weight string
	Height string
	Feet   string
	Inches string
}

type BMIResult struct {
	BMI      float64     `json:"bmi"`
	Category string      `json:"category"`
	Range    string      `json:"range"`
	Severity int         `json:"severity"`
	Healthy  WeightRange `json:"healthyRange"`
}

// BMI evaluates the BMI form. ok is false until both height and weight are
// present and positive.
func BMI(in BMIInput) (BMIResult, bool) {
	heightM, ok := units.Height(in.System, in.Height, in.Feet, in.Inches)
	if !ok {
		return BMIResult{}, false
	}
	weightKg, ok := units.Weight(in.System, in.Weight)
	if !ok {
		return BMIResult{}, false
	}

	bmi := BodyMassIndex(weightKg, heightM)
	sev, band := ClassifyBMI(bmi)
	return BMIResult{
		BMI:      bmi,
		Category: band.Label,
		Range:    band.Meta,
		Severity: sev,
		Healthy:  HealthyWeightRange(in.System, heightM),
	}, true
}

// ReverseBMIInput is the reverse BMI form: a height and the BMI to reach.
type ReverseBMIInput struct {
	System    units.System
	TargetBMI string
	Height    string
	Feet      string
	Inches    string
}

type ReverseBMIResult struct {
	// Weight is in Unit, not necessarily kilograms.
	Weight   float64     `json:"weight"`
	Unit     string      `json:"unit"`
	Category string      `json:"category"`
	Healthy  WeightRange `json:"healthyRange"`
}

// ReverseBMI finds the weight that gives the target BMI at the entered height.
func ReverseBMI(in ReverseBMIInput) (ReverseBMIResult, bool) {
	heightM, ok := units.Height(in.System, in.Height, in.Feet, in.Inches)
	if !ok {
		return ReverseBMIResult{}, false
	}
	target, ok := units.ParsePositive(in.TargetBMI)
	if !ok {
		return ReverseBMIResult{}, false
	}

	_, band := ClassifyBMI(target)
	return ReverseBMIResult{
		Weight:   units.DisplayWeight(in.System, WeightForBMI(target, heightM)),
		Unit:     in.System.WeightUnit(),
		Category: band.Label,
		Healthy:  HealthyWeightRange(in.System, heightM),
	}, true
}
