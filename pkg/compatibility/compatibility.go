// Package compatibility scores the numerological harmony between two people.
package compatibility

import (
	"math"

	"github.com/nikogura/namescore/pkg/numerology"
	"github.com/pkg/errors"
)

// Category weights. They sum to 100 so identical core numbers score exactly 100.
const (
	LifePathWeight    = 40.0
	DestinyWeight     = 30.0
	SoulUrgeWeight    = 20.0
	PersonalityWeight = 10.0
)

// Harmony values.
const (
	HarmonyUnknown = 0.5
	HarmonyPerfect = 1.0
	HarmonyMaster  = 0.85
	HarmonyClose   = 0.8
	HarmonyNear    = 0.6
	HarmonyFar     = 0.4
)

// Person is one side of a compatibility request.
type Person struct {
	Name      string `json:"name"`
	Birthdate string `json:"birthdate,omitempty"`
}

// Result is the deterministic compatibility outcome.
type Result struct {
	Score   int                       `json:"score"`
	Names   [2]string                 `json:"names"`
	Numbers [2]numerology.CoreNumbers `json:"coreNumbers"`
}

// Harmony returns the pairwise weight for two same-category core numbers.
func Harmony(a, b int) (h float64) {
	switch {
	case a == 0 || b == 0:
		h = HarmonyUnknown
	case a == b:
		h = HarmonyPerfect
	case numerology.IsMaster(a) || numerology.IsMaster(b):
		h = HarmonyMaster
	default:
		d := a - b
		if d < 0 {
			d = -d
		}
		switch {
		case d <= 2:
			h = HarmonyClose
		case d <= 4:
			h = HarmonyNear
		default:
			h = HarmonyFar
		}
	}
	return h
}

// Score combines the four category harmonies into a 0-100 score.
func Score(a, b numerology.CoreNumbers) (score int) {
	// Explicit conversions keep each product rounded on its own; no fused multiply-add.
	total := float64(Harmony(a.LifePathNumber, b.LifePathNumber)*LifePathWeight) +
		float64(Harmony(a.DestinyNumber, b.DestinyNumber)*DestinyWeight) +
		float64(Harmony(a.SoulUrgeNumber, b.SoulUrgeNumber)*SoulUrgeWeight) +
		float64(Harmony(a.PersonalityNumber, b.PersonalityNumber)*PersonalityWeight)

	score = int(math.Round(total))
	if score > numerology.MaxScore {
		score = numerology.MaxScore
	}
	return score
}

// Calculate derives core numbers for both people and scores them.
func Calculate(first, second Person) (result Result, err error) {
	err = numerology.ValidateName(first.Name)
	if err != nil {
		err = errors.Wrap(err, "first person")
		return result, err
	}

	err = numerology.ValidateName(second.Name)
	if err != nil {
		err = errors.Wrap(err, "second person")
		return result, err
	}

	a := numerology.Core(first.Name, first.Birthdate)
	b := numerology.Core(second.Name, second.Birthdate)

	result = Result{
		Score:   Score(a, b),
		Names:   [2]string{first.Name, second.Name},
		Numbers: [2]numerology.CoreNumbers{a, b},
	}

	return result, err
}
