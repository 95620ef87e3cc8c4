package llm

import (
	"strings"
	"testing"
)

func TestBuildHolisticRequest(t *testing.T) {
	req := BuildHolisticRequest(HolisticInput{
		Name:        "Marie Anne Curie",
		Mode:        "personal",
		Goal:        "Career Growth",
		BaseScore:   64,
		Breakdown:   map[string]int{"destiny": 22},
		CoreNumbers: map[string]int{"destinyNumber": 1},
		Tolerance:   7,
	})

	if req.Call != "holistic" {
		t.Errorf("Expected call 'holistic', got '%s'", req.Call)
	}

	if !req.JSON {
		t.Error("Holistic request should ask for JSON")
	}

	// Tolerance is communicated to the generator.
	if !strings.Contains(req.System, "within 7 points") {
		t.Error("System prompt should state the tolerance")
	}

	for _, key := range []string{"holistic_score", "holistic_rationale", "short_rationale", "positive_traits", "challenges"} {
		if !strings.Contains(req.System, key) {
			t.Errorf("System prompt should name key %s", key)
		}
	}

	if !strings.Contains(req.Prompt, "Marie Anne Curie") {
		t.Error("Prompt should contain the name")
	}

	if !strings.Contains(req.Prompt, "Base Numerology Score: 64") {
		t.Error("Prompt should contain the base score")
	}

	if !strings.Contains(req.Prompt, "destinyNumber") {
		t.Error("Prompt should contain the core numbers")
	}
}

func TestBuildSuggestionsRequest(t *testing.T) {
	req := BuildSuggestionsRequest(SuggestionInput{
		Name:  "Ada",
		Score: 70,
		Goal:  "General Insight",
		Count: 10,
	})

	if !strings.Contains(req.System, "exactly 10 objects") {
		t.Error("System prompt should request the suggestion count")
	}

	if !strings.Contains(req.Prompt, `"Ada"`) {
		t.Error("Prompt should quote the original name")
	}

	if !strings.Contains(req.Prompt, "Original Score: 70") {
		t.Error("Prompt should contain the original score")
	}
}

func TestBuildCompatibilityRequest(t *testing.T) {
	req := BuildCompatibilityRequest(CompatibilityInput{
		First:  PersonInput{Name: "Marie"},
		Second: PersonInput{Name: "Pierre"},
		Score:  83,
	})

	if !strings.Contains(req.Prompt, "Marie") || !strings.Contains(req.Prompt, "Pierre") {
		t.Error("Prompt should contain both names")
	}

	if !strings.Contains(req.Prompt, "83") {
		t.Error("Prompt should contain the score")
	}
}

func TestBuildInsightRequest(t *testing.T) {
	req := BuildInsightRequest(InsightInput{Name: "Ada", DayNumber: 3})

	if req.JSON {
		t.Error("Insight request should ask for plain text")
	}

	if !strings.Contains(req.Prompt, "Universal Day Number: 3") {
		t.Error("Prompt should contain the day number")
	}
}
