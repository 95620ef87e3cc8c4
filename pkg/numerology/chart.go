package numerology

// Master numbers are never reduced further.
const (
	MasterEleven      = 11
	MasterTwentyTwo   = 22
	MasterThirtyThree = 33
)

// DefaultSubScore is used for any core number missing from SubScores.
const DefaultSubScore = 15

// MinBirthdateDigits is the fewest digits a birthdate must contain before a life path is computed.
const MinBirthdateDigits = 6

// MaxScore caps the base score.
const MaxScore = 100

// LetterValues is the Pythagorean chart.
//
//nolint:gochecknoglobals // Numerology chart constants
var LetterValues = map[rune]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8, 'I': 9,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'O': 6, 'P': 7, 'Q': 8, 'R': 9,
	'S': 1, 'T': 2, 'U': 3, 'V': 4, 'W': 5, 'X': 6, 'Y': 7, 'Z': 8,
}

// Vowels are the letters counted toward the soul urge number. Y is a consonant.
//
//nolint:gochecknoglobals // Numerology chart constants
var Vowels = map[rune]bool{
	'A': true, 'E': true, 'I': true, 'O': true, 'U': true,
}

// SubScores maps a reduced core number to its breakdown contribution.
//
//nolint:gochecknoglobals // Scoring configuration constants
var SubScores = map[int]int{
	1:                 22,
	2:                 20,
	3:                 21,
	4:                 18,
	5:                 23,
	6:                 24,
	7:                 19,
	8:                 17,
	9:                 21,
	MasterEleven:      25,
	MasterTwentyTwo:   25,
	MasterThirtyThree: 25,
}

// IsMaster reports whether n is 11, 22 or 33.
func IsMaster(n int) (master bool) {
	master = n == MasterEleven || n == MasterTwentyTwo || n == MasterThirtyThree
	return master
}

// SubScore returns the breakdown contribution for a core number.
func SubScore(n int) (score int) {
	score, ok := SubScores[n]
	if !ok {
		score = DefaultSubScore
	}
	return score
}
