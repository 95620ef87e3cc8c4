// Package report renders name analyses as markdown and PDF reports.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/nikogura/namescore/pkg/analysis"
	"github.com/nikogura/namescore/pkg/numerology"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName title-cases a name for headings.
func DisplayName(name string) (display string) {
	display = cases.Title(language.English).String(strings.ToLower(strings.Join(strings.Fields(name), " ")))
	return display
}

// FileBase is the file name stem for a report about name.
func FileBase(name string) (base string) {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '/' || r == '\\' || r == '.' || r == ':'
	})
	if len(fields) == 0 {
		fields = []string{"name"}
	}
	base = strings.Join(fields, "_") + "_Report"
	return base
}

// Build renders a name analysis as a markdown report.
func Build(a analysis.NameAnalysis, generatedAt time.Time) (markdown string) {
	var b strings.Builder

	fmt.Fprintf(&b, "---\ntitle: \"Numerology Report\"\nsubtitle: \"%s\"\ndate: \"%s\"\n---\n\n",
		strings.ReplaceAll(DisplayName(a.Name), `"`, `'`), generatedAt.Format("January 2, 2006"))

	fmt.Fprintf(&b, "# %s\n\n", DisplayName(a.Name))
	fmt.Fprintf(&b, "**Overall Score:** %d / %d (%s)\n\n", a.Score, numerology.MaxScore, a.Label)
	if a.Score != a.BaseScore {
		fmt.Fprintf(&b, "**Numerology Base Score:** %d\n\n", a.BaseScore)
	}
	fmt.Fprintf(&b, "**Goal:** %s  \n**Intent:** %s\n\n", a.Goal, a.Mode)

	if a.ShortRationale != "" {
		fmt.Fprintf(&b, "> %s\n\n", a.ShortRationale)
	}

	b.WriteString("## Core Numbers\n\n")
	b.WriteString("| Number | Value | Sub-score |\n|---|---|---|\n")
	writeCoreRow(&b, "Life Path", a.CoreNumbers.LifePathNumber, a.Breakdown.LifePath)
	writeCoreRow(&b, "Destiny", a.CoreNumbers.DestinyNumber, a.Breakdown.Destiny)
	writeCoreRow(&b, "Soul Urge", a.CoreNumbers.SoulUrgeNumber, a.Breakdown.SoulUrge)
	writeCoreRow(&b, "Personality", a.CoreNumbers.PersonalityNumber, a.Breakdown.Personality)
	b.WriteString("\n")

	if a.HolisticRationale != "" {
		fmt.Fprintf(&b, "## Holistic Analysis\n\n%s\n\n", a.HolisticRationale)
	}

	writeList(&b, "Positive Traits", a.PositiveTraits)
	writeList(&b, "Potential Challenges", a.Challenges)

	if len(a.Suggestions) > 0 {
		b.WriteString("## Suggested Variations\n\n")
		b.WriteString("| Name | Claimed Score | Numerology Score | Why |\n|---|---|---|---|\n")
		for _, s := range a.Suggestions {
			fmt.Fprintf(&b, "| %s | %d | %d | %s |\n", escapeCell(s.Name), s.Score, s.NumerologyScore, escapeCell(s.Reason))
		}
		b.WriteString("\n")
	}

	if a.Fallback {
		b.WriteString("*This report uses the numerology score only; no holistic analysis was available.*\n\n")
	}

	fmt.Fprintf(&b, "*Report generated by NameScore on %s.*\n", generatedAt.Format("January 2, 2006"))

	markdown = b.String()
	return markdown
}

func writeCoreRow(b *strings.Builder, label string, value, subScore int) {
	shown := fmt.Sprintf("%d", value)
	if value == 0 {
		shown = "n/a"
	} else if numerology.IsMaster(value) {
		shown += " (master)"
	}
	fmt.Fprintf(b, "| %s | %s | %d |\n", label, shown, subScore)
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func escapeCell(s string) (escaped string) {
	escaped = strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
	return escaped
}
