package llm

import (
	"encoding/json"
	"fmt"
)

const holisticSystem = `You are NameScore, an analyst who blends Pythagorean numerology with linguistic and phonetic analysis to give a holistic evaluation of a name.

You receive a base score computed from pure numerology. Refine it into a final "holistic_score" using:
- phonetic appeal (is the name pleasant to say?)
- memorability and distinctiveness
- alignment with the stated goal (a name for career growth should sound strong and professional)
- modern branding considerations when the intent is a brand

RULES:
1. "holistic_score" MUST stay within %d points of the base score, up or down, and between 1 and 100.
2. "holistic_rationale" explains exactly why the score moved (or did not).
3. "short_rationale" summarizes the overall feel of the final score in one sentence.
4. "positive_traits" and "challenges" come from the complete analysis (numerology and linguistics).
5. Return a single JSON object with exactly these keys: holistic_score (integer), holistic_rationale, short_rationale, positive_traits (array of strings), challenges (array of strings).`

const suggestionsSystem = `You are a numerology and branding expert. Generate %d subtle, phonetically distinct variations of a given name that improve its numerology score.

Requirements:
1. Suggestions align with the user's stated goal.
2. Each suggestion's "new_score" MUST be higher than the original score.
3. Offer genuinely different sounds while keeping the essence of the original name, not just minor spelling changes.
4. Keep each "reason" brief, naming the numerological benefit.
5. Return a JSON array of exactly %d objects with keys suggested_name, new_score (integer) and reason.`

const compatibilitySystem = `You are a warm relationship numerologist. Using the data provided, write a constructive compatibility analysis: a catchy 2-4 word "title", the pair's "strengths", gently stated "challenges", and an uplifting "summary". Do not mention scores or numbers directly. Return a single JSON object with keys title, strengths, challenges and summary.`

const insightSystem = `You are a warm, insightful numerology guide. Write a short (2-3 sentence) personalized daily insight that connects the user's numerology with the energy of today. Be personal, encouraging and actionable. Return plain text only.`

// BuildHolisticRequest creates the holistic analysis request.
func BuildHolisticRequest(in HolisticInput) (req Request) {
	inputJSON, _ := json.MarshalIndent(in, "", "  ")

	req = Request{
		Call:   CallHolistic,
		System: fmt.Sprintf(holisticSystem, in.Tolerance),
		Prompt: fmt.Sprintf(`Perform a holistic analysis for the following user data:
- Name: %s
- Intent: %s
- Birthdate: %s
- Goal: %s
- Base Numerology Score: %d

FULL INPUT:
%s`, in.Name, in.Mode, in.Birthdate, in.Goal, in.BaseScore, string(inputJSON)),
		JSON:      true,
		MaxTokens: 2048,
	}

	return req
}

// BuildSuggestionsRequest creates the name suggestions request.
func BuildSuggestionsRequest(in SuggestionInput) (req Request) {
	coreJSON, _ := json.Marshal(in.CoreNumbers)

	req = Request{
		Call:   CallSuggestions,
		System: fmt.Sprintf(suggestionsSystem, in.Count, in.Count),
		Prompt: fmt.Sprintf(`Generate %d name suggestions based on the following data:
- Original Name: %q
- Original Score: %d
- User's Goal: %q
- Core Numbers: %s

Provide phonetically distinct variations that improve the score and align with the user's goal.`, in.Count, in.Name, in.Score, in.Goal, string(coreJSON)),
		JSON:      true,
		MaxTokens: 2048,
	}

	return req
}

// BuildCompatibilityRequest creates the compatibility narrative request.
func BuildCompatibilityRequest(in CompatibilityInput) (req Request) {
	firstJSON, _ := json.Marshal(in.First)
	secondJSON, _ := json.Marshal(in.Second)

	req = Request{
		Call:   CallCompatibility,
		System: compatibilitySystem,
		Prompt: fmt.Sprintf(`Provide the compatibility analysis for the following data:
- Person 1: %s
- Person 2: %s
- Calculated Compatibility Score: %d`, string(firstJSON), string(secondJSON), in.Score),
		JSON:      true,
		MaxTokens: 1024,
	}

	return req
}

// BuildInsightRequest creates the daily insight request.
func BuildInsightRequest(in InsightInput) (req Request) {
	coreJSON, _ := json.Marshal(in.CoreNumbers)

	req = Request{
		Call:   CallInsight,
		System: insightSystem,
		Prompt: fmt.Sprintf(`Generate the daily insight based on this data:
- User: %s
- Core Numbers: %s
- Today's Universal Day Number: %d`, in.Name, string(coreJSON), in.DayNumber),
		MaxTokens: 512,
	}

	return req
}
