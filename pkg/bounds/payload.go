package bounds

import (
	"math"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ErrMalformedPayload is returned when a model payload cannot be read at all.
var ErrMalformedPayload = errors.New("malformed payload")

// Holistic is the validated form of a holistic analysis payload.
type Holistic struct {
	Score          int      `json:"holistic_score"`
	Rationale      string   `json:"holistic_rationale"`
	ShortRationale string   `json:"short_rationale"`
	PositiveTraits []string `json:"positive_traits"`
	Challenges     []string `json:"challenges"`
}

// Narrative is the validated form of a compatibility narrative payload.
type Narrative struct {
	Title      string `json:"title"`
	Strengths  string `json:"strengths"`
	Challenges string `json:"challenges"`
	Summary    string `json:"summary"`
}

// stripCodeFences removes a surrounding ``` or ```json fence.
func stripCodeFences(text string) (cleaned string) {
	cleaned = strings.TrimSpace(text)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	// Drop the opening fence line, including any language tag.
	nl := strings.IndexByte(cleaned, '\n')
	if nl < 0 {
		cleaned = strings.Trim(cleaned, "`")
		return cleaned
	}
	cleaned = cleaned[nl+1:]

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}

// decode turns raw model text into a parsed JSON value, repairing it if needed.
func decode(raw string) (doc gjson.Result, err error) {
	text := stripCodeFences(raw)
	if text == "" {
		err = errors.Wrap(ErrMalformedPayload, "empty payload")
		return doc, err
	}

	if !gjson.Valid(text) {
		var repaired string
		repaired, err = jsonrepair.JSONRepair(text)
		if err != nil {
			err = errors.Wrapf(ErrMalformedPayload, "unrepairable JSON: %v", err)
			return doc, err
		}
		if !gjson.Valid(repaired) {
			err = errors.Wrap(ErrMalformedPayload, "repaired JSON is still invalid")
			return doc, err
		}
		text = repaired
	}

	doc = gjson.Parse(text)
	return doc, err
}

// readInt reads a loosely typed integer: JSON numbers and numeric strings are accepted and rounded.
func readInt(field gjson.Result) (n int, ok bool) {
	var f float64
	switch field.Type {
	case gjson.Number:
		f = field.Num
	case gjson.String:
		var err error
		f, err = strconv.ParseFloat(strings.TrimSpace(field.Str), 64)
		if err != nil {
			return n, ok
		}
	default:
		return n, ok
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > 1e9 {
		return n, ok
	}

	n = int(math.Round(f))
	ok = true
	return n, ok
}

// readString reads a trimmed string field; anything else reads as empty.
func readString(field gjson.Result) (s string) {
	if field.Type == gjson.String {
		s = strings.TrimSpace(field.Str)
	}
	return s
}

// readStrings reads the non-empty string elements of an array field.
func readStrings(field gjson.Result) (list []string) {
	list = []string{}
	if !field.IsArray() {
		return list
	}
	for _, item := range field.Array() {
		s := readString(item)
		if s != "" {
			list = append(list, s)
		}
	}
	return list
}

// ParseHolistic validates a holistic analysis payload and clamps its score into the
// tolerance window around base. A payload without a usable holistic_score is rejected.
func ParseHolistic(raw string, base, tolerance int) (h Holistic, err error) {
	var doc gjson.Result
	doc, err = decode(raw)
	if err != nil {
		return h, err
	}

	if !doc.IsObject() {
		err = errors.Wrap(ErrMalformedPayload, "holistic payload is not an object")
		return h, err
	}

	score, ok := readInt(doc.Get("holistic_score"))
	if !ok {
		err = errors.Wrap(ErrMalformedPayload, "holistic_score missing or not numeric")
		return h, err
	}

	h = Holistic{
		Score:          ClampToWindow(base, score, tolerance),
		Rationale:      readString(doc.Get("holistic_rationale")),
		ShortRationale: readString(doc.Get("short_rationale")),
		PositiveTraits: readStrings(doc.Get("positive_traits")),
		Challenges:     readStrings(doc.Get("challenges")),
	}

	return h, err
}

// ParseNarrative validates a compatibility narrative payload. All four fields are required.
func ParseNarrative(raw string) (n Narrative, err error) {
	var doc gjson.Result
	doc, err = decode(raw)
	if err != nil {
		return n, err
	}

	if !doc.IsObject() {
		err = errors.Wrap(ErrMalformedPayload, "narrative payload is not an object")
		return n, err
	}

	n = Narrative{
		Title:      readString(doc.Get("title")),
		Strengths:  readString(doc.Get("strengths")),
		Challenges: readString(doc.Get("challenges")),
		Summary:    readString(doc.Get("summary")),
	}

	if n.Title == "" || n.Strengths == "" || n.Challenges == "" || n.Summary == "" {
		err = errors.Wrap(ErrMalformedPayload, "narrative is missing required fields")
		n = Narrative{}
		return n, err
	}

	return n, err
}
