package bounds

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Suggestion is a validated name suggestion.
type Suggestion struct {
	Name   string `json:"suggested_name"`
	Score  int    `json:"new_score"`
	Reason string `json:"reason"`
}

// ParseSuggestions reads suggestion entries from a payload. The payload may be a bare
// array or an object holding a "suggestions" array. Entries without a name or a numeric
// new_score are dropped and claimed scores are clamped into range.
func ParseSuggestions(raw string) (list []Suggestion, err error) {
	var doc gjson.Result
	doc, err = decode(raw)
	if err != nil {
		return list, err
	}

	items := doc
	if doc.IsObject() {
		items = doc.Get("suggestions")
	}
	if !items.IsArray() {
		err = errors.Wrap(ErrMalformedPayload, "suggestions payload is not an array")
		return list, err
	}

	list = []Suggestion{}
	for _, item := range items.Array() {
		if !item.IsObject() {
			continue
		}

		name := readString(item.Get("suggested_name"))
		score, ok := readInt(item.Get("new_score"))
		if name == "" || !ok {
			continue
		}

		list = append(list, Suggestion{
			Name:   name,
			Score:  ClampRange(score),
			Reason: readString(item.Get("reason")),
		})
	}

	return list, err
}

// FilterSuggestions keeps suggestions scoring strictly above threshold, highest first.
// Ties keep their original order.
func FilterSuggestions(list []Suggestion, threshold int) (filtered []Suggestion) {
	filtered = make([]Suggestion, 0, len(list))
	for _, s := range list {
		if s.Score > threshold {
			filtered = append(filtered, s)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	return filtered
}
