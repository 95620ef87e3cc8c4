package numerology

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned when a required name is empty or unusable.
var ErrInvalidArgument = errors.New("invalid argument")

// CoreNumbers are the four canonical numbers derived from a name and birthdate.
// LifePathNumber is 0 when no usable birthdate was supplied.
type CoreNumbers struct {
	LifePathNumber    int `json:"lifePathNumber"`
	DestinyNumber     int `json:"destinyNumber"`
	SoulUrgeNumber    int `json:"soulUrgeNumber"`
	PersonalityNumber int `json:"personalityNumber"`
}

// Breakdown holds the per-category sub-scores.
type Breakdown struct {
	LifePath    int `json:"life_path"`
	Destiny     int `json:"destiny"`
	SoulUrge    int `json:"soul_urge"`
	Personality int `json:"personality"`
}

// Total sums the four sub-scores and caps the result at MaxScore.
func (b Breakdown) Total() (total int) {
	total = b.LifePath + b.Destiny + b.SoulUrge + b.Personality
	if total > MaxScore {
		total = MaxScore
	}
	return total
}

// Result is the deterministic outcome of scoring one name.
type Result struct {
	Score       int         `json:"score"`
	Breakdown   Breakdown   `json:"breakdown"`
	CoreNumbers CoreNumbers `json:"coreNumbers"`
}

// Normalize uppercases the name and drops everything outside A-Z.
func Normalize(name string) (letters string) {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	letters = b.String()
	return letters
}

// Reduce sums decimal digits until the value is a single digit or a master number.
func Reduce(n int) (reduced int) {
	reduced = n
	for !IsMaster(reduced) && reduced >= 10 {
		sum := 0
		for v := reduced; v > 0; v /= 10 {
			sum += v % 10
		}
		reduced = sum
	}
	return reduced
}

// letterSum adds chart values for the letters selected by keep.
func letterSum(letters string, keep func(r rune) bool) (sum int) {
	for _, r := range letters {
		if keep(r) {
			sum += LetterValues[r]
		}
	}
	return sum
}

// LifePath derives the life path number from the digits of a free-form birthdate.
// Separators are ignored; fewer than MinBirthdateDigits digits yields 0.
func LifePath(birthdate string) (lifePath int) {
	count, sum := 0, 0
	for _, r := range birthdate {
		if r >= '0' && r <= '9' {
			count++
			sum += int(r - '0')
		}
	}
	if count < MinBirthdateDigits {
		return lifePath
	}
	lifePath = Reduce(sum)
	return lifePath
}

// Core derives the core numbers for an already validated name.
func Core(name, birthdate string) (core CoreNumbers) {
	letters := Normalize(name)

	core = CoreNumbers{
		LifePathNumber: LifePath(birthdate),
		DestinyNumber: Reduce(letterSum(letters, func(rune) bool {
			return true
		})),
		SoulUrgeNumber: Reduce(letterSum(letters, func(r rune) bool {
			return Vowels[r]
		})),
		PersonalityNumber: Reduce(letterSum(letters, func(r rune) bool {
			return !Vowels[r]
		})),
	}

	return core
}

// Score maps core numbers to a breakdown. An uncomputed life path contributes 0.
func Score(core CoreNumbers) (breakdown Breakdown) {
	if core.LifePathNumber > 0 {
		breakdown.LifePath = SubScore(core.LifePathNumber)
	}
	breakdown.Destiny = SubScore(core.DestinyNumber)
	breakdown.SoulUrge = SubScore(core.SoulUrgeNumber)
	breakdown.Personality = SubScore(core.PersonalityNumber)
	return breakdown
}

// ValidateName rejects names that are empty after trimming or not valid UTF-8.
func ValidateName(name string) (err error) {
	if !utf8.ValidString(name) {
		err = errors.Wrap(ErrInvalidArgument, "name is not a valid string")
		return err
	}
	if strings.TrimSpace(name) == "" {
		err = errors.Wrap(ErrInvalidArgument, "name must be non-empty")
		return err
	}
	return err
}

// Calculate scores a name and optional birthdate.
func Calculate(name, birthdate string) (result Result, err error) {
	err = ValidateName(name)
	if err != nil {
		return result, err
	}

	core := Core(name, birthdate)
	breakdown := Score(core)

	result = Result{
		Score:       breakdown.Total(),
		Breakdown:   breakdown,
		CoreNumbers: core,
	}

	return result, err
}
