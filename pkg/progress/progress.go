// Package progress tracks badges, streaks and analysis history as a pure state machine.
package progress

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-day format used for check-ins and history items.
const DateLayout = "2006-01-02"

// MaxHistory is the number of history items kept, newest last.
const MaxHistory = 50

// Progress is the persisted gamification state of one user.
type Progress struct {
	AnalysesCompleted     int           `json:"analyses_completed"`
	CompatibilityAnalyses int           `json:"compatibility_analyses"`
	LastCheckin           string        `json:"last_checkin,omitempty"`
	CurrentStreak         int           `json:"current_streak"`
	HighScore             int           `json:"high_score"`
	UnlockedBadgeIDs      []BadgeID     `json:"unlocked_badge_ids"`
	History               []HistoryItem `json:"history"`
}

// HistoryItem records one completed name analysis.
type HistoryItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
	Goal  string `json:"goal"`
	Mode  string `json:"mode"`
}

// Event is something the user did.
type Event interface {
	occurredAt() time.Time
}

// NameAnalyzed is a completed name analysis.
type NameAnalyzed struct {
	Name  string
	Score int
	Goal  string
	Mode  string
	At    time.Time
}

// CompatibilityAnalyzed is a completed compatibility analysis.
type CompatibilityAnalyzed struct {
	Score int
	At    time.Time
}

// ReportUnlocked is a generated detailed report.
type ReportUnlocked struct {
	At time.Time
}

// CheckedIn is any other activity, such as reading the daily insight.
type CheckedIn struct {
	At time.Time
}

func (e NameAnalyzed) occurredAt() time.Time          { return e.At }
func (e CompatibilityAnalyzed) occurredAt() time.Time { return e.At }
func (e ReportUnlocked) occurredAt() time.Time        { return e.At }
func (e CheckedIn) occurredAt() time.Time             { return e.At }

// HasBadge reports whether id is unlocked.
func (p Progress) HasBadge(id BadgeID) (found bool) {
	for _, b := range p.UnlockedBadgeIDs {
		if b == id {
			found = true
			return found
		}
	}
	return found
}

// clone copies p so that appends never touch the caller's slices.
func (p Progress) clone() (c Progress) {
	c = p
	c.UnlockedBadgeIDs = append([]BadgeID{}, p.UnlockedBadgeIDs...)
	c.History = append([]HistoryItem{}, p.History...)
	return c
}

// Apply returns the state after ev and the badges it newly unlocked, in unlock order.
// The input state is left untouched.
func Apply(p Progress, ev Event) (next Progress, unlocked []BadgeID) {
	next = p.clone()
	unlocked = []BadgeID{}

	unlock := func(id BadgeID) {
		if next.HasBadge(id) {
			return
		}
		next.UnlockedBadgeIDs = append(next.UnlockedBadgeIDs, id)
		unlocked = append(unlocked, id)
	}

	at := ev.occurredAt()
	if at.IsZero() {
		at = time.Now()
	}

	switch e := ev.(type) {
	case NameAnalyzed:
		next.AnalysesCompleted++
		if e.Score > next.HighScore {
			next.HighScore = e.Score
		}
		next.History = append(next.History, HistoryItem{
			ID:    uuid.NewString(),
			Name:  e.Name,
			Score: e.Score,
			Date:  at.Format(DateLayout),
			Goal:  e.Goal,
			Mode:  e.Mode,
		})
		if len(next.History) > MaxHistory {
			next.History = next.History[len(next.History)-MaxHistory:]
		}

		unlock(BadgeFirstStep)
		if next.AnalysesCompleted >= CuriousExplorerAnalyses {
			unlock(BadgeCuriousExplorer)
		}
		if e.Score >= HighAchieverScore {
			unlock(BadgeHighAchiever)
		}

	case CompatibilityAnalyzed:
		next.CompatibilityAnalyses++
		unlock(BadgeDynamicDuo)
		if e.Score >= PerfectHarmonyScore {
			unlock(BadgePerfectHarmony)
		}

	case ReportUnlocked:
		unlock(BadgeNumerologyNovice)

	case CheckedIn:
	}

	next.CurrentStreak, next.LastCheckin = advanceStreak(p.CurrentStreak, p.LastCheckin, at)
	if next.CurrentStreak >= ConsistentSeekerStreak {
		unlock(BadgeConsistentSeeker)
	}
	if next.CurrentStreak >= WeeklyWisdomStreak {
		unlock(BadgeWeeklyWisdom)
	}

	return next, unlocked
}

// advanceStreak extends the streak on the day after the last check-in, keeps it on the
// same day and restarts it at 1 after any gap.
func advanceStreak(streak int, last string, at time.Time) (nextStreak int, today string) {
	today = at.Format(DateLayout)

	lastDay, err := time.Parse(DateLayout, last)
	if err != nil || streak <= 0 {
		nextStreak = 1
		return nextStreak, today
	}

	// Both parse as UTC midnight, so the difference is a whole number of days.
	day, _ := time.Parse(DateLayout, today)
	switch int(day.Sub(lastDay).Hours() / 24) {
	case 0:
		nextStreak = streak
	case 1:
		nextStreak = streak + 1
	default:
		nextStreak = 1
	}

	return nextStreak, today
}
