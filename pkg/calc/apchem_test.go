package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPChemistryTypical(t *testing.T) {
	res := APChemistry(APChemInput{MCQ: "36", FRQ: "28", Curve: Typical})

	assert.InDelta(t, 60.43, res.Composite, 0.005)
	// 60.43 sits in the [45, 65) band.
	assert.Equal(t, 3, res.Score)
	assert.InDelta(t, 0.6, res.MCQFrac, 1e-12)
	assert.InDelta(t, 28.0/46, res.FRQFrac, 1e-12)

	require.NotNil(t, res.NextBreak)
	assert.Equal(t, 65.0, *res.NextBreak)
	// (65 - 30.43) / 50 * 60 = 41.48 -> 42
	require.NotNil(t, res.NeededMCQ)
	assert.Equal(t, 42, *res.NeededMCQ)
}

func TestAPChemistryCurves(t *testing.T) {
	in := APChemInput{MCQ: "48", FRQ: "37"} // composite ~80.2
	tests := []struct {
		curve Curve
		want  int
	}{
		{Lenient, 5},
		{Typical, 4},
		{Strict, 4},
	}
	for _, tt := range tests {
		t.Run(tt.curve.String(), func(t *testing.T) {
			in.Curve = tt.curve
			assert.Equal(t, tt.want, APChemistry(in).Score)
		})
	}
}

func TestAPChemistryClampsInputs(t *testing.T) {
	hi := APChemistry(APChemInput{MCQ: "75", FRQ: "100"})
	assert.Equal(t, 100.0, hi.Composite)
	assert.Equal(t, 5, hi.Score)
	assert.Nil(t, hi.NextBreak)
	assert.Nil(t, hi.NeededMCQ)

	lo := APChemistry(APChemInput{MCQ: "-4", FRQ: "garbage"})
	assert.Zero(t, lo.Composite)
	assert.Equal(t, 1, lo.Score)
	require.NotNil(t, lo.NeededMCQ)
	assert.Equal(t, 36, *lo.NeededMCQ)
}

func TestAPChemistryNeededMCQ(t *testing.T) {
	// Full FRQ alone is a composite of 50.
	res := APChemistry(APChemInput{MCQ: "0", FRQ: "46", Curve: Lenient})
	assert.Equal(t, 3, res.Score)
	require.NotNil(t, res.NeededMCQ)
	assert.Equal(t, 60.0, *res.NextBreak)
	assert.Equal(t, 12, *res.NeededMCQ)

	// With no FRQ points the next band is out of reach, so the answer caps at 60.
	res = APChemistry(APChemInput{MCQ: "60", FRQ: "0", Curve: Strict})
	assert.Equal(t, 3, res.Score)
	assert.Equal(t, 70.0, *res.NextBreak)
	assert.Equal(t, 60, *res.NeededMCQ)
}

func TestAPComposite(t *testing.T) {
	assert.InDelta(t, 36.0/60*50+28.0/46*50, APComposite(36, 28), 1e-12)
	assert.Equal(t, 100.0, APComposite(1e6, 1e6))
	assert.Len(t, APCurveBands(Strict), 5)
}
