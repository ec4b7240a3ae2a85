package calc

import (
	"github.com/locaddo/locaddo/pkg/units"
)

// RiskInfo is shown next to a waist-to-hip risk label.
type RiskInfo struct {
	Range       string
	Description string
}

// WHR risk bands. The published cut-offs are "≤ 0.85" (women) and "≤ 0.90"
// (men), so these tables are upper-inclusive.
var whrTables = map[Gender]ThresholdTable[RiskInfo]{
	Female: MustTable(UpperInclusive,
		Band[RiskInfo]{Lower: 0, Label: "Low Risk", Meta: RiskInfo{"≤ 0.85", "Excellent body fat distribution"}},
		Band[RiskInfo]{Lower: 0.85, Label: "Moderate Risk", Meta: RiskInfo{"0.86 - 1.0", "Some health risk factors"}},
		Band[RiskInfo]{Lower: 1.0, Label: "High Risk", Meta: RiskInfo{"> 1.0", "Increased health risks"}},
	),
	Male: MustTable(UpperInclusive,
		Band[RiskInfo]{Lower: 0, Label: "Low Risk", Meta: RiskInfo{"≤ 0.90", "Excellent body fat distribution"}},
		Band[RiskInfo]{Lower: 0.90, Label: "Moderate Risk", Meta: RiskInfo{"0.91 - 1.0", "Some health risk factors"}},
		Band[RiskInfo]{Lower: 1.0, Label: "High Risk", Meta: RiskInfo{"> 1.0", "Increased health risks"}},
	),
}

var whrTips = map[string][]string{
	"Low Risk": {
		"Maintain your current healthy lifestyle",
		"Continue regular physical activity",
		"Keep eating a balanced diet",
		"Monitor your WHR every 3-6 months",
	},
	"Moderate Risk": {
		"Focus on reducing abdominal fat through cardio exercise",
		"Incorporate strength training to build muscle",
		"Reduce refined carbohydrates and added sugars",
		"Consider consulting a healthcare provider",
	},
	"High Risk": {
		"Consult with a healthcare professional immediately",
		"Develop a structured exercise plan with professional guidance",
		"Consider working with a registered dietitian",
		"Monitor for diabetes and cardiovascular risk factors",
	},
}

// WHRBands lists the risk bands for a gender, lowest first.
func WHRBands(g Gender) []Band[RiskInfo] { return whrTables[g].Bands() }

// ClassifyWHR returns the severity index and band for a waist-to-hip ratio.
func ClassifyWHR(g Gender, ratio float64) (int, Band[RiskInfo]) {
	return whrTables[g].Classify(ratio)
}

// WHRInput is the waist-to-hip form. Both measurements must use the same
// unit; which unit does not matter.
type WHRInput struct {
	Gender Gender
	Waist  string
	Hip    string
}

type WHRResult struct {
	Ratio       float64  `json:"ratio"`
	Category    string   `json:"category"`
	Range       string   `json:"range"`
	Description string   `json:"description"`
	Severity    int      `json:"severity"`
	Tips        []string `json:"tips"`
}

func WaistToHip(in WHRInput) (WHRResult, bool) {
	waist, ok := units.ParsePositive(in.Waist)
	if !ok {
		return WHRResult{}, false
	}
	hip, ok := units.ParsePositive(in.Hip)
	if !ok {
		return WHRResult{}, false
	}

	ratio := waist / hip
	sev, band := ClassifyWHR(in.Gender, ratio)
	return WHRResult{
		Ratio:       ratio,
		Category:    band.Label,
		Range:       band.Meta.Range,
		Description: band.Meta.Description,
		Severity:    sev,
		Tips:        append([]string(nil), whrTips[band.Label]...),
	}, true
}
