package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locaddo/locaddo/pkg/units"
)

func TestClassifyFrameWrist(t *testing.T) {
	tests := []struct {
		name     string
		gender   Gender
		heightCm float64
		wristCm  float64
		want     FrameSize
	}{
		{"female average small at limit", Female, 160, 14.0, SmallFrame},
		{"female average medium", Female, 160, 14.5, MediumFrame},
		{"female average medium at limit", Female, 160, 15.9, MediumFrame},
		{"female average large", Female, 160, 16.0, LargeFrame},
		{"female short shifts down", Female, 150, 13.6, MediumFrame},
		{"female tall shifts up", Female, 170, 14.4, SmallFrame},
		{"female at upper height bound is average", Female, 165, 14.4, MediumFrame},
		{"male average", Male, 175, 17, MediumFrame},
		{"male tall", Male, 185, 18.8, MediumFrame},
		{"male short", Male, 160, 18.0, LargeFrame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFrame(Wrist, tt.gender, tt.heightCm, tt.wristCm))
		})
	}
}

func TestClassifyFrameElbowIgnoresHeight(t *testing.T) {
	for _, h := range []float64{0, 140, 200} {
		assert.Equal(t, SmallFrame, ClassifyFrame(Elbow, Female, h, 5.7))
		assert.Equal(t, MediumFrame, ClassifyFrame(Elbow, Female, h, 6.0))
		assert.Equal(t, LargeFrame, ClassifyFrame(Elbow, Male, h, 7.7))
	}
}

func TestBodyFrameWrist(t *testing.T) {
	res, ok := BodyFrame(FrameInput{
		System: units.Metric, Gender: Female, Method: Wrist,
		Height: "160", Wrist: "15",
	})
	require.True(t, ok)
	assert.Equal(t, MediumFrame, res.Size)
	assert.Equal(t, "Medium", res.SizeName)
	require.NotNil(t, res.IdealWeight)
	assert.InDelta(t, 20*1.6*1.6, res.IdealWeight.Min, 1e-9)
	assert.InDelta(t, 24*1.6*1.6, res.IdealWeight.Max, 1e-9)
	assert.Equal(t, "51.2 - 61.4 kg", res.IdealWeightText())
	assert.Len(t, res.Recommendations, 4)
}

func TestBodyFrameImperial(t *testing.T) {
	// 6.5 in = 16.51 cm, 5'10" = 177.8 cm.
	res, ok := BodyFrame(FrameInput{
		System: units.Imperial, Gender: Male, Method: Wrist,
		Feet: "5", Inches: "10", Wrist: "6.5",
	})
	require.True(t, ok)
	assert.InDelta(t, 16.51, res.MeasurementCm, 1e-9)
	assert.Equal(t, MediumFrame, res.Size)
	require.NotNil(t, res.IdealWeight)
	assert.Equal(t, "lbs", res.IdealWeight.Unit)
}

func TestBodyFrameElbowWithoutHeight(t *testing.T) {
	res, ok := BodyFrame(FrameInput{System: units.Metric, Gender: Male, Method: Elbow, Elbow: "7"})
	require.True(t, ok)
	assert.Equal(t, MediumFrame, res.Size)
	assert.Nil(t, res.IdealWeight)
	assert.Empty(t, res.IdealWeightText())
}

func TestBodyFrameIncomplete(t *testing.T) {
	_, ok := BodyFrame(FrameInput{System: units.Metric, Method: Wrist, Wrist: "15"})
	assert.False(t, ok, "wrist method needs a height")

	_, ok = BodyFrame(FrameInput{System: units.Metric, Method: Elbow, Height: "170", Wrist: "15"})
	assert.False(t, ok, "elbow method reads the elbow field")
}
