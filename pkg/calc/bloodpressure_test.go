package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageBloodPressureSkipsPartialReadings(t *testing.T) {
	rs := []Reading{
		{ID: 1, Systolic: "120", Diastolic: "80"},
		{ID: 2, Systolic: "130", Diastolic: ""},
		{ID: 3, Systolic: "", Diastolic: "90"},
		{ID: 4, Systolic: "110", Diastolic: "70"},
		{ID: 5, Systolic: "0", Diastolic: "70"},
	}
	res, ok := AverageBloodPressure(rs)
	require.True(t, ok)
	assert.Equal(t, 2, res.Count)
	assert.InDelta(t, 115, res.Systolic, 1e-9)
	assert.InDelta(t, 75, res.Diastolic, 1e-9)
}

func TestAverageBloodPressureNoCompleteReadings(t *testing.T) {
	_, ok := AverageBloodPressure(NewReadings())
	assert.False(t, ok)

	_, ok = AverageBloodPressure([]Reading{{ID: 1, Systolic: "120"}, {ID: 2, Diastolic: "80"}})
	assert.False(t, ok)

	_, ok = AverageBloodPressure(nil)
	assert.False(t, ok)
}

func TestClassifyBPTakesMoreSevere(t *testing.T) {
	tests := []struct {
		name      string
		systolic  float64
		diastolic float64
		want      BPCategory
	}{
		{"normal", 115, 75, BPNormal},
		{"elevated", 125, 75, BPElevated},
		{"systolic stage 1", 135, 70, BPStage1},
		{"diastolic stage 1 beats normal systolic", 110, 85, BPStage1},
		{"diastolic stage 1 beats elevated systolic", 125, 85, BPStage1},
		{"diastolic stage 2 beats systolic stage 1", 135, 95, BPStage2},
		{"systolic stage 2 beats diastolic stage 1", 150, 85, BPStage2},
		{"systolic crisis", 185, 70, BPCrisis},
		{"diastolic crisis", 118, 125, BPCrisis},
		{"boundary 120/80", 120, 80, BPStage1},
		{"boundary 180/119", 180, 119, BPCrisis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyBP(tt.systolic, tt.diastolic))
		})
	}
}

func TestBloodPressureTrend(t *testing.T) {
	rs := []Reading{
		{ID: 1, Systolic: "140", Diastolic: "90", Date: "2026-03-10"},
		{ID: 2, Systolic: "120", Diastolic: "80", Date: "2026-03-01"},
		{ID: 3, Systolic: "130", Diastolic: "85"},
	}
	res, ok := AverageBloodPressure(rs)
	require.True(t, ok)
	require.NotNil(t, res.Trend)
	assert.Equal(t, 20.0, res.Trend.Systolic)
	assert.Equal(t, 10.0, res.Trend.Diastolic)
	assert.Equal(t, TrendIncreasing, res.Trend.Direction)
	assert.Equal(t, adviceIncreasing, res.Recommendations[0])
	assert.NotContains(t, res.Recommendations, adviceMoreReading)

	// Same day, ordered by time.
	rs = []Reading{
		{ID: 1, Systolic: "120", Diastolic: "80", Date: "2026-03-01", Time: "20:00"},
		{ID: 2, Systolic: "130", Diastolic: "84", Date: "2026-03-01", Time: "08:00"},
	}
	res, ok = AverageBloodPressure(rs)
	require.True(t, ok)
	require.NotNil(t, res.Trend)
	assert.Equal(t, TrendDecreasing, res.Trend.Direction)
	assert.Equal(t, adviceDecreasing, res.Recommendations[0])
	assert.Equal(t, adviceMoreReading, res.Recommendations[len(res.Recommendations)-1])

	rs = []Reading{
		{ID: 1, Systolic: "120", Diastolic: "80", Date: "2026-03-01"},
		{ID: 2, Systolic: "121", Diastolic: "81", Date: "2026-03-05"},
	}
	res, ok = AverageBloodPressure(rs)
	require.True(t, ok)
	assert.Equal(t, TrendStable, res.Trend.Direction)
}

func TestBloodPressureTrendNeedsTwoDates(t *testing.T) {
	rs := []Reading{
		{ID: 1, Systolic: "120", Diastolic: "80", Date: "2026-03-01"},
		{ID: 2, Systolic: "140", Diastolic: "90", Date: "not a date"},
	}
	res, ok := AverageBloodPressure(rs)
	require.True(t, ok)
	assert.Nil(t, res.Trend)
	assert.Equal(t, "Stage 1 Hypertension", res.CategoryName)
}

func TestReadingListHelpers(t *testing.T) {
	rs := NewReadings()
	require.Len(t, rs, 1)

	rs = AddReading(rs)
	rs = AddReading(rs)
	assert.Equal(t, []int{1, 2, 3}, []int{rs[0].ID, rs[1].ID, rs[2].ID})

	rs = RemoveReading(rs, 2)
	assert.Len(t, rs, 2)
	rs = AddReading(rs)
	assert.Equal(t, 4, rs[2].ID)

	rs = UpdateReading(rs, Reading{ID: 3, Systolic: "118", Diastolic: "76"})
	assert.Equal(t, "118", rs[1].Systolic)

	one := RemoveReading(RemoveReading(RemoveReading(rs, 1), 3), 4)
	assert.Len(t, one, 1)
}
