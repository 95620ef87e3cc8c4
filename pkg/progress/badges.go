package progress

// BadgeID identifies a badge.
type BadgeID string

// Badges.
const (
	BadgeFirstStep        BadgeID = "first_step"
	BadgeCuriousExplorer  BadgeID = "curious_explorer"
	BadgeNumerologyNovice BadgeID = "numerology_novice"
	BadgeHighAchiever     BadgeID = "high_achiever"
	BadgePerfectHarmony   BadgeID = "perfect_harmony"
	BadgeDynamicDuo       BadgeID = "dynamic_duo"
	BadgeConsistentSeeker BadgeID = "consistent_seeker"
	BadgeWeeklyWisdom     BadgeID = "weekly_wisdom"
)

// Unlock thresholds.
const (
	CuriousExplorerAnalyses = 5
	HighAchieverScore       = 90
	PerfectHarmonyScore     = 95
	ConsistentSeekerStreak  = 3
	WeeklyWisdomStreak      = 7
)

// Badge is the display form of a badge.
type Badge struct {
	ID          BadgeID
	Name        string
	Description string
}

// AllBadges lists every badge in display order.
//
//nolint:gochecknoglobals // Badge catalogue
var AllBadges = []Badge{
	{BadgeFirstStep, "First Step", "You completed your first name analysis. Welcome!"},
	{BadgeCuriousExplorer, "Curious Explorer", "Completed 5 different name analyses."},
	{BadgeNumerologyNovice, "Numerology Novice", "Unlocked a detailed numerology report."},
	{BadgeHighAchiever, "High Achiever", "Analyzed a name that scored 90 or higher."},
	{BadgePerfectHarmony, "Perfect Harmony", "Found a compatibility score of 95 or higher."},
	{BadgeDynamicDuo, "Dynamic Duo", "Completed your first compatibility analysis."},
	{BadgeConsistentSeeker, "Consistent Seeker", "Maintained a 3-day analysis streak."},
	{BadgeWeeklyWisdom, "Weekly Wisdom", "Maintained a 7-day analysis streak."},
}

// Lookup returns the display form of id.
func Lookup(id BadgeID) (badge Badge, ok bool) {
	for _, b := range AllBadges {
		if b.ID == id {
			badge = b
			ok = true
			return badge, ok
		}
	}
	return badge, ok
}
