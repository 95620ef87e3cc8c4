// Package analysis orchestrates the numerology engines and the text generator.
package analysis

import (
	"github.com/nikogura/namescore/pkg/bounds"
	"github.com/nikogura/namescore/pkg/compatibility"
	"github.com/nikogura/namescore/pkg/numerology"
	"github.com/pkg/errors"
)

// Goal is what the user hopes the name supports.
type Goal string

// Goals understood by the prompts.
const (
	GoalGeneral    Goal = "General Insight"
	GoalCareer     Goal = "Career Growth"
	GoalRelations  Goal = "Relationships"
	GoalConfidence Goal = "Personal Confidence"
	GoalPath       Goal = "Finding my Path"
)

// Mode is the intent behind a name analysis.
type Mode string

// Modes for a name analysis.
const (
	ModePersonal Mode = "personal"
	ModeBrand    Mode = "brand"
	ModeBaby     Mode = "baby"
)

//nolint:gochecknoglobals // Lookup tables
var validGoals = map[Goal]bool{
	GoalGeneral: true, GoalCareer: true, GoalRelations: true, GoalConfidence: true, GoalPath: true,
}

//nolint:gochecknoglobals // Lookup tables
var validModes = map[Mode]bool{
	ModePersonal: true, ModeBrand: true, ModeBaby: true,
}

// ParseGoal accepts an empty goal (General Insight) or one of the known goals.
func ParseGoal(s string) (goal Goal, err error) {
	if s == "" {
		goal = GoalGeneral
		return goal, err
	}
	goal = Goal(s)
	if !validGoals[goal] {
		err = errors.Errorf("invalid goal '%s': must be one of %q, %q, %q, %q, %q", s,
			GoalGeneral, GoalCareer, GoalRelations, GoalConfidence, GoalPath)
		return goal, err
	}
	return goal, err
}

// ParseMode accepts an empty mode (personal) or one of the known modes.
func ParseMode(s string) (mode Mode, err error) {
	if s == "" {
		mode = ModePersonal
		return mode, err
	}
	mode = Mode(s)
	if !validModes[mode] {
		err = errors.Errorf("invalid mode '%s': must be 'personal', 'brand', or 'baby'", s)
		return mode, err
	}
	return mode, err
}

// NameRequest asks for a full analysis of one name.
type NameRequest struct {
	Name      string `json:"name"`
	Birthdate string `json:"birthdate,omitempty"`
	Goal      Goal   `json:"goal"`
	Mode      Mode   `json:"mode"`
}

// Suggestion is a filtered name suggestion annotated with its own numerology score.
type Suggestion struct {
	bounds.Suggestion
	NumerologyScore int `json:"numerology_score"`
}

// NameAnalysis is the full result of a name analysis.
type NameAnalysis struct {
	Name              string                 `json:"name"`
	Goal              Goal                   `json:"goal"`
	Mode              Mode                   `json:"mode"`
	BaseScore         int                    `json:"base_score"`
	Score             int                    `json:"score"`
	Label             string                 `json:"label"`
	Breakdown         numerology.Breakdown   `json:"breakdown"`
	CoreNumbers       numerology.CoreNumbers `json:"coreNumbers"`
	ShortRationale    string                 `json:"short_rationale"`
	HolisticRationale string                 `json:"holistic_rationale,omitempty"`
	PositiveTraits    []string               `json:"positive_traits"`
	Challenges        []string               `json:"challenges"`
	Suggestions       []Suggestion           `json:"suggestions"`
	// Fallback is set when the generator was unavailable and Score is the base score.
	Fallback bool `json:"fallback"`
}

// clone copies a so that the result and the cached value never share slices.
func (a NameAnalysis) clone() (c NameAnalysis) {
	c = a
	c.PositiveTraits = append([]string{}, a.PositiveTraits...)
	c.Challenges = append([]string{}, a.Challenges...)
	c.Suggestions = append([]Suggestion{}, a.Suggestions...)
	return c
}

// CompatibilityAnalysis is the full result of a compatibility analysis.
type CompatibilityAnalysis struct {
	compatibility.Result
	bounds.Narrative
	Label    string `json:"label"`
	Fallback bool   `json:"fallback"`
}

// Insight is a daily insight for one person.
type Insight struct {
	Name        string                 `json:"name"`
	DayNumber   int                    `json:"day_number"`
	CoreNumbers numerology.CoreNumbers `json:"coreNumbers"`
	Text        string                 `json:"text"`
	Fallback    bool                   `json:"fallback"`
}

// BatchEntry is the deterministic score of one name in a batch.
type BatchEntry struct {
	Name   string            `json:"name"`
	Result numerology.Result `json:"result"`
	Label  string            `json:"label,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// DefaultNarrative is used when no compatibility narrative could be generated.
//
//nolint:gochecknoglobals // Fallback copy
var DefaultNarrative = bounds.Narrative{
	Title:      "A Powerful Connection",
	Strengths:  "You share a deep understanding.",
	Challenges: "Communication may require conscious effort.",
	Summary:    "Your bond has great potential for growth.",
}

// DefaultInsight is used when no daily insight could be generated.
const DefaultInsight = "Today is a great day to focus on your strengths and set a positive intention. Embrace the opportunities that come your way."
