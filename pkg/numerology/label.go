package numerology

import (
	"strconv"
	"time"
)

// Label describes a 0-100 score in words.
func Label(score int) (label string) {
	switch {
	case score >= 90:
		label = "Exceptional"
	case score >= 80:
		label = "Excellent"
	case score >= 70:
		label = "Very Good"
	case score >= 60:
		label = "Good"
	case score >= 50:
		label = "Average"
	case score >= 40:
		label = "Below Average"
	default:
		label = "Needs Improvement"
	}
	return label
}

// UniversalDayNumber reduces the digits of day, month and year (no zero padding) for a date.
func UniversalDayNumber(t time.Time) (day int) {
	digits := strconv.Itoa(t.Day()) + strconv.Itoa(int(t.Month())) + strconv.Itoa(t.Year())
	sum := 0
	for _, r := range digits {
		sum += int(r - '0')
	}
	day = Reduce(sum)
	return day
}
