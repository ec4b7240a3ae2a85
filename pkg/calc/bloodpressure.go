package calc

import (
	"slices"
	"strings"
	"time"

	"github.com/locaddo/locaddo/pkg/units"
)

// BPCategory is an ACC/AHA blood pressure category, ordered by severity.
type BPCategory int

const (
	BPNormal BPCategory = iota
	BPElevated
	BPStage1
	BPStage2
	BPCrisis
)

var bpNames = [...]string{
	BPNormal:   "Normal",
	BPElevated: "Elevated",
	BPStage1:   "Stage 1 Hypertension",
	BPStage2:   "Stage 2 Hypertension",
	BPCrisis:   "Hypertensive Crisis",
}

var bpDescriptions = [...]string{
	BPNormal:   "Ideal blood pressure range",
	BPElevated: "Warning sign - take action",
	BPStage1:   "High blood pressure - see doctor",
	BPStage2:   "Serious - medical attention needed",
	BPCrisis:   "Emergency - call 911",
}

func (c BPCategory) String() string { return bpNames[c] }

func (c BPCategory) Description() string { return bpDescriptions[c] }

// Systolic and diastolic readings are classified on their own tables. There
// is no "Elevated" diastolic band: below 80 is Normal regardless.
var (
	systolicTable = MustTable(LowerInclusive,
		Band[BPCategory]{Lower: 0, Label: BPNormal.String(), Meta: BPNormal},
		Band[BPCategory]{Lower: 120, Label: BPElevated.String(), Meta: BPElevated},
		Band[BPCategory]{Lower: 130, Label: BPStage1.String(), Meta: BPStage1},
		Band[BPCategory]{Lower: 140, Label: BPStage2.String(), Meta: BPStage2},
		Band[BPCategory]{Lower: 180, Label: BPCrisis.String(), Meta: BPCrisis},
	)
	diastolicTable = MustTable(LowerInclusive,
		Band[BPCategory]{Lower: 0, Label: BPNormal.String(), Meta: BPNormal},
		Band[BPCategory]{Lower: 80, Label: BPStage1.String(), Meta: BPStage1},
		Band[BPCategory]{Lower: 90, Label: BPStage2.String(), Meta: BPStage2},
		Band[BPCategory]{Lower: 120, Label: BPCrisis.String(), Meta: BPCrisis},
	)
)

// ClassifyBP returns the more severe of the systolic and diastolic
// categories.
func ClassifyBP(systolic, diastolic float64) BPCategory {
	_, s := systolicTable.Classify(systolic)
	_, d := diastolicTable.Classify(diastolic)
	return max(s.Meta, d.Meta)
}

// ReadingDateLayout is the layout of Reading.Date. Reading.Time, when set,
// uses ReadingTimeLayout.
const (
	ReadingDateLayout = "2006-01-02"
	ReadingTimeLayout = "15:04"
)

// Reading is one row of the blood pressure form.
type Reading struct {
	ID        int    `json:"id"`
	Systolic  string `json:"systolic"`
	Diastolic string `json:"diastolic"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
}

// NewReadings returns the initial form state: one blank reading.
func NewReadings() []Reading {
	return []Reading{{ID: 1}}
}

// AddReading appends a blank reading with the next free ID.
func AddReading(rs []Reading) []Reading {
	next := 1
	for _, r := range rs {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return append(slices.Clone(rs), Reading{ID: next})
}

// RemoveReading drops the reading with id. The last remaining reading is
// never removed.
func RemoveReading(rs []Reading, id int) []Reading {
	if len(rs) <= 1 {
		return slices.Clone(rs)
	}
	return slices.DeleteFunc(slices.Clone(rs), func(r Reading) bool { return r.ID == id })
}

// UpdateReading replaces the reading with the same ID as r.
func UpdateReading(rs []Reading, r Reading) []Reading {
	out := slices.Clone(rs)
	for i := range out {
		if out[i].ID == r.ID {
			out[i] = r
		}
	}
	return out
}

type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// trendThreshold is the mean change (mmHg) beyond which a trend is reported.
const trendThreshold = 2.0

type BPTrend struct {
	Systolic  float64        `json:"systolic"`
	Diastolic float64        `json:"diastolic"`
	Direction TrendDirection `json:"direction"`
}

type BPResult struct {
	Systolic        float64    `json:"systolic"`
	Diastolic       float64    `json:"diastolic"`
	Count           int        `json:"count"`
	Category        BPCategory `json:"-"`
	CategoryName    string     `json:"category"`
	Description     string     `json:"description"`
	Trend           *BPTrend   `json:"trend,omitempty"`
	Recommendations []string   `json:"recommendations"`
}

type completeReading struct {
	systolic  float64
	diastolic float64
	at        time.Time
	dated     bool
}

func (r Reading) complete() (completeReading, bool) {
	s, ok := units.ParsePositive(r.Systolic)
	if !ok {
		return completeReading{}, false
	}
	d, ok := units.ParsePositive(r.Diastolic)
	if !ok {
		return completeReading{}, false
	}

	cr := completeReading{systolic: s, diastolic: d}
	if date := strings.TrimSpace(r.Date); date != "" {
		at, err := time.Parse(ReadingDateLayout, date)
		if err == nil {
			if tod, err := time.Parse(ReadingTimeLayout, strings.TrimSpace(r.Time)); err == nil {
				at = at.Add(time.Duration(tod.Hour())*time.Hour + time.Duration(tod.Minute())*time.Minute)
			}
			cr.at, cr.dated = at, true
		}
	}
	return cr, true
}

// AverageBloodPressure averages the complete readings (both fields present
// and positive). Partial readings are left out, not zero-filled. ok is false
// when no reading is complete.
func AverageBloodPressure(rs []Reading) (BPResult, bool) {
	var valid []completeReading
	for _, r := range rs {
		if cr, ok := r.complete(); ok {
			valid = append(valid, cr)
		}
	}
	if len(valid) == 0 {
		return BPResult{}, false
	}

	var sumS, sumD float64
	for _, r := range valid {
		sumS += r.systolic
		sumD += r.diastolic
	}
	n := float64(len(valid))
	avgS, avgD := sumS/n, sumD/n

	cat := ClassifyBP(avgS, avgD)
	trend := bpTrend(valid)
	return BPResult{
		Systolic:        avgS,
		Diastolic:       avgD,
		Count:           len(valid),
		Category:        cat,
		CategoryName:    cat.String(),
		Description:     cat.Description(),
		Trend:           trend,
		Recommendations: bpRecommendations(cat, trend, len(valid)),
	}, true
}

// bpTrend compares the earliest and latest dated readings. It needs at least
// two dated readings.
func bpTrend(valid []completeReading) *BPTrend {
	var dated []completeReading
	for _, r := range valid {
		if r.dated {
			dated = append(dated, r)
		}
	}
	if len(dated) < 2 {
		return nil
	}
	slices.SortStableFunc(dated, func(a, b completeReading) int { return a.at.Compare(b.at) })

	first, last := dated[0], dated[len(dated)-1]
	t := &BPTrend{
		Systolic:  last.systolic - first.systolic,
		Diastolic: last.diastolic - first.diastolic,
		Direction: TrendStable,
	}
	switch mean := (t.Systolic + t.Diastolic) / 2; {
	case mean > trendThreshold:
		t.Direction = TrendIncreasing
	case mean < -trendThreshold:
		t.Direction = TrendDecreasing
	}
	return t
}

var bpAdvice = map[BPCategory][]string{
	BPNormal: {
		"Maintain your healthy lifestyle with regular exercise",
		"Continue eating a heart-healthy diet low in sodium",
		"Monitor blood pressure annually or as recommended",
		"Keep stress levels manageable through relaxation techniques",
	},
	BPElevated: {
		"Increase physical activity to at least 150 minutes per week",
		"Reduce sodium intake to less than 2,300mg daily",
		"Maintain a healthy weight through diet and exercise",
		"Schedule regular check-ups with your healthcare provider",
	},
	BPStage1: {
		"Consult your healthcare provider about treatment options",
		"Follow the DASH diet rich in fruits and vegetables",
		"Limit alcohol consumption and quit smoking if applicable",
		"Monitor blood pressure regularly at home",
	},
	BPStage2: {
		"See your doctor immediately for evaluation and treatment",
		"Take prescribed medications exactly as directed",
		"Make aggressive lifestyle changes with professional guidance",
		"Monitor blood pressure daily and keep detailed records",
	},
	BPCrisis: {
		"Seek emergency medical attention immediately",
		"Call 911 if experiencing symptoms like chest pain or shortness of breath",
		"Do not wait - this is a medical emergency",
		"Follow up with cardiology specialist",
	},
}

const (
	adviceIncreasing  = "Your blood pressure shows an increasing trend - discuss with your doctor"
	adviceDecreasing  = "Great! Your blood pressure shows improvement over time"
	adviceMoreReading = "Take more readings over different days for a more accurate average"
)

func bpRecommendations(cat BPCategory, trend *BPTrend, count int) []string {
	recs := slices.Clone(bpAdvice[cat])
	if trend != nil {
		switch trend.Direction {
		case TrendIncreasing:
			recs = slices.Insert(recs, 0, adviceIncreasing)
		case TrendDecreasing:
			recs = slices.Insert(recs, 0, adviceDecreasing)
		}
	}
	if count < 3 {
		recs = append(recs, adviceMoreReading)
	}
	return recs
}
