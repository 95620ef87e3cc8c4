package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) (t time.Time) {
	t = time.Date(2026, time.October, d, 10, 0, 0, 0, time.UTC)
	return t
}

func TestFirstAnalysis(t *testing.T) {
	next, unlocked := Apply(Progress{}, NameAnalyzed{Name: "Ada", Score: 72, Goal: "General Insight", Mode: "personal", At: day(19)})

	assert.Equal(t, []BadgeID{BadgeFirstStep}, unlocked)
	assert.Equal(t, 1, next.AnalysesCompleted)
	assert.Equal(t, 72, next.HighScore)
	assert.Equal(t, 1, next.CurrentStreak)
	assert.Equal(t, "2026-10-19", next.LastCheckin)

	require.Len(t, next.History, 1)
	item := next.History[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Ada", item.Name)
	assert.Equal(t, 72, item.Score)
	assert.Equal(t, "2026-10-19", item.Date)
	assert.Equal(t, "General Insight", item.Goal)
	assert.Equal(t, "personal", item.Mode)
}

func TestBadgesUnlockOnce(t *testing.T) {
	p := Progress{}
	var all []BadgeID

	for i := 0; i < 6; i++ {
		var unlocked []BadgeID
		p, unlocked = Apply(p, NameAnalyzed{Name: "Ada", Score: 95, At: day(19)})
		all = append(all, unlocked...)
	}

	assert.ElementsMatch(t, []BadgeID{BadgeFirstStep, BadgeHighAchiever, BadgeCuriousExplorer}, all)
	assert.ElementsMatch(t, all, p.UnlockedBadgeIDs)
	assert.Equal(t, 6, p.AnalysesCompleted)
	assert.Len(t, p.History, 6)
	assert.NotEqual(t, p.History[0].ID, p.History[1].ID)
}

func TestCuriousExplorerOnFifthAnalysis(t *testing.T) {
	p := Progress{}
	var unlocked []BadgeID
	for i := 0; i < 4; i++ {
		p, unlocked = Apply(p, NameAnalyzed{Name: "Ada", Score: 50, At: day(19)})
		assert.NotContains(t, unlocked, BadgeCuriousExplorer)
	}

	_, unlocked = Apply(p, NameAnalyzed{Name: "Ada", Score: 50, At: day(19)})
	assert.Equal(t, []BadgeID{BadgeCuriousExplorer}, unlocked)
}

func TestCompatibilityBadges(t *testing.T) {
	p, unlocked := Apply(Progress{}, CompatibilityAnalyzed{Score: 80, At: day(19)})
	assert.Equal(t, []BadgeID{BadgeDynamicDuo}, unlocked)
	assert.Equal(t, 1, p.CompatibilityAnalyses)

	p, unlocked = Apply(p, CompatibilityAnalyzed{Score: 95, At: day(19)})
	assert.Equal(t, []BadgeID{BadgePerfectHarmony}, unlocked)
	assert.Equal(t, 2, p.CompatibilityAnalyses)
	assert.Equal(t, 0, p.AnalysesCompleted)
	assert.Empty(t, p.History)
}

func TestReportUnlocked(t *testing.T) {
	p, unlocked := Apply(Progress{}, ReportUnlocked{At: day(19)})
	assert.Equal(t, []BadgeID{BadgeNumerologyNovice}, unlocked)

	_, unlocked = Apply(p, ReportUnlocked{At: day(19)})
	assert.Empty(t, unlocked)
}

func TestStreak(t *testing.T) {
	cases := []struct {
		name     string
		streak   int
		last     string
		at       time.Time
		expected int
	}{
		{"first ever", 0, "", day(19), 1},
		{"same day", 2, "2026-10-19", day(19), 2},
		{"next day", 2, "2026-10-18", day(19), 3},
		{"gap", 6, "2026-10-16", day(19), 1},
		{"month boundary", 4, "2026-09-30", day(1), 5},
		{"clock went backwards", 3, "2026-10-20", day(19), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Progress{CurrentStreak: tc.streak, LastCheckin: tc.last}
			next, _ := Apply(p, CheckedIn{At: tc.at})
			assert.Equal(t, tc.expected, next.CurrentStreak)
			assert.Equal(t, tc.at.Format(DateLayout), next.LastCheckin)
		})
	}
}

func TestStreakBadges(t *testing.T) {
	p := Progress{}
	var all []BadgeID

	for d := 10; d < 17; d++ {
		var unlocked []BadgeID
		p, unlocked = Apply(p, CheckedIn{At: day(d)})
		all = append(all, unlocked...)

		switch d {
		case 12:
			assert.Equal(t, []BadgeID{BadgeConsistentSeeker}, unlocked)
		case 16:
			assert.Equal(t, []BadgeID{BadgeWeeklyWisdom}, unlocked)
		}
	}

	assert.Equal(t, 7, p.CurrentStreak)
	assert.Equal(t, []BadgeID{BadgeConsistentSeeker, BadgeWeeklyWisdom}, all)

	// A gap resets the streak but badges stay.
	p, _ = Apply(p, CheckedIn{At: day(20)})
	assert.Equal(t, 1, p.CurrentStreak)
	assert.True(t, p.HasBadge(BadgeWeeklyWisdom))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	badges := make([]BadgeID, 1, 8)
	badges[0] = BadgeFirstStep
	history := make([]HistoryItem, 1, 8)
	history[0] = HistoryItem{ID: "x", Name: "Ada"}

	p := Progress{AnalysesCompleted: 1, UnlockedBadgeIDs: badges, History: history, CurrentStreak: 1, LastCheckin: "2026-10-18"}

	_, _ = Apply(p, NameAnalyzed{Name: "Grace", Score: 99, At: day(19)})

	assert.Equal(t, 1, p.AnalysesCompleted)
	assert.Equal(t, 1, p.CurrentStreak)
	assert.Len(t, p.UnlockedBadgeIDs, 1)
	assert.Len(t, p.History, 1)
	assert.Equal(t, BadgeID(""), badges[:2][1], "spare capacity in the caller's slice must be untouched")
	assert.Equal(t, "", history[:2][1].Name)
}

func TestHistoryIsCapped(t *testing.T) {
	p := Progress{}
	for i := 0; i < MaxHistory+5; i++ {
		p, _ = Apply(p, NameAnalyzed{Name: "Ada", Score: i, At: day(19)})
	}

	require.Len(t, p.History, MaxHistory)
	assert.Equal(t, 5, p.History[0].Score)
	assert.Equal(t, MaxHistory+5, p.AnalysesCompleted)
}

func TestLookup(t *testing.T) {
	badge, ok := Lookup(BadgeWeeklyWisdom)
	require.True(t, ok)
	assert.Equal(t, "Weekly Wisdom", badge.Name)

	_, ok = Lookup("nope")
	assert.False(t, ok)
	assert.Len(t, AllBadges, 8)
}
