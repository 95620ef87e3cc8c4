package compatibility

import (
	"testing"

	"github.com/nikogura/namescore/pkg/numerology"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarmony(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want float64
	}{
		{name: "unknown left", a: 0, b: 5, want: HarmonyUnknown},
		{name: "unknown both", a: 0, b: 0, want: HarmonyUnknown},
		{name: "equal", a: 7, b: 7, want: HarmonyPerfect},
		{name: "equal masters", a: 22, b: 22, want: HarmonyPerfect},
		{name: "master beats distance", a: 11, b: 2, want: HarmonyMaster},
		{name: "master with far digit", a: 1, b: 33, want: HarmonyMaster},
		{name: "distance one", a: 4, b: 5, want: HarmonyClose},
		{name: "distance two", a: 9, b: 7, want: HarmonyClose},
		{name: "distance three", a: 1, b: 4, want: HarmonyNear},
		{name: "distance four", a: 8, b: 4, want: HarmonyNear},
		{name: "distance five", a: 1, b: 6, want: HarmonyFar},
		{name: "distance eight", a: 9, b: 1, want: HarmonyFar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Harmony(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, Harmony(tt.b, tt.a), 1e-9)
		})
	}
}

func TestScoreWeights(t *testing.T) {
	a := numerology.CoreNumbers{LifePathNumber: 3, DestinyNumber: 1, SoulUrgeNumber: 11, PersonalityNumber: 8}
	b := numerology.CoreNumbers{LifePathNumber: 5, DestinyNumber: 7, SoulUrgeNumber: 2, PersonalityNumber: 8}

	// 0.8*40 + 0.4*30 + 0.85*20 + 1.0*10 = 32 + 12 + 17 + 10
	assert.Equal(t, 71, Score(a, b))
}

func TestScoreSymmetry(t *testing.T) {
	values := []int{0, 1, 2, 4, 5, 7, 9, 11, 22, 33}

	for _, lp := range values {
		for _, d := range values {
			a := numerology.CoreNumbers{LifePathNumber: lp, DestinyNumber: d, SoulUrgeNumber: 3, PersonalityNumber: 6}
			b := numerology.CoreNumbers{LifePathNumber: d, DestinyNumber: lp, SoulUrgeNumber: 11, PersonalityNumber: 1}
			assert.Equal(t, Score(a, b), Score(b, a))

			s := Score(a, b)
			assert.GreaterOrEqual(t, s, 0)
			assert.LessOrEqual(t, s, 100)
		}
	}
}

func TestScoreIdentity(t *testing.T) {
	a := numerology.CoreNumbers{LifePathNumber: 11, DestinyNumber: 1, SoulUrgeNumber: 11, PersonalityNumber: 8}
	assert.Equal(t, 100, Score(a, a))

	noLifePath := numerology.CoreNumbers{DestinyNumber: 1, SoulUrgeNumber: 11, PersonalityNumber: 8}
	// Life path is unknown on both sides: 0.5*40 + 30 + 20 + 10.
	assert.Equal(t, 80, Score(noLifePath, noLifePath))
}

func TestCalculateIdentical(t *testing.T) {
	p := Person{Name: "Marie Anne Curie", Birthdate: "1989-02-09"}

	result, err := Calculate(p, p)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, [2]string{p.Name, p.Name}, result.Names)
	assert.Equal(t, result.Numbers[0], result.Numbers[1])
}

func TestCalculateSymmetric(t *testing.T) {
	a := Person{Name: "Marie Anne Curie", Birthdate: "1989-02-09"}
	b := Person{Name: "Pierre Curie", Birthdate: "1859-05-15"}

	ab, err := Calculate(a, b)
	require.NoError(t, err)

	ba, err := Calculate(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab.Score, ba.Score)
}

func TestCalculateInvalidNames(t *testing.T) {
	valid := Person{Name: "Ada"}

	_, err := Calculate(Person{Name: " "}, valid)
	require.Error(t, err)
	assert.True(t, errors.Is(err, numerology.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "first person")

	_, err = Calculate(valid, Person{Name: ""})
	require.Error(t, err)
	assert.True(t, errors.Is(err, numerology.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "second person")
}
