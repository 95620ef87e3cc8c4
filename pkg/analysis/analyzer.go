package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nikogura/namescore/pkg/bounds"
	"github.com/nikogura/namescore/pkg/compatibility"
	"github.com/nikogura/namescore/pkg/llm"
	"github.com/nikogura/namescore/pkg/numerology"
	"github.com/pkg/errors"
)

// DefaultSuggestionCount is how many suggestions the generator is asked for.
const DefaultSuggestionCount = 10

// DefaultConcurrency bounds batch scoring.
const DefaultConcurrency = 8

// Options configures an Analyzer.
type Options struct {
	// Tolerance is the maximum distance between the base score and an adjusted score.
	// Zero or less only clamps into [1, 100].
	Tolerance       int
	SuggestionCount int
	// CacheSize is the number of name analyses kept in memory. Zero disables caching.
	CacheSize   int
	Concurrency int
	// Suggester handles suggestion calls when set, otherwise the main generator does.
	Suggester llm.Generator
	Logger    *slog.Logger
	Now       func() time.Time
}

// Analyzer runs name, compatibility and insight analyses.
// The generator may be nil, in which case every analysis uses deterministic fallbacks.
type Analyzer struct {
	gen       llm.Generator
	suggester llm.Generator
	opts      Options
	cache     *lru.Cache[string, NameAnalysis]
	logger    *slog.Logger
}

// New creates an Analyzer.
func New(gen llm.Generator, opts Options) (analyzer *Analyzer, err error) {
	if opts.SuggestionCount <= 0 {
		opts.SuggestionCount = DefaultSuggestionCount
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	suggester := opts.Suggester
	if suggester == nil {
		suggester = gen
	}

	analyzer = &Analyzer{
		gen:       gen,
		suggester: suggester,
		opts:      opts,
		logger:    logger,
	}

	if opts.CacheSize > 0 {
		analyzer.cache, err = lru.New[string, NameAnalysis](opts.CacheSize)
		if err != nil {
			err = errors.Wrap(err, "failed to create analysis cache")
			return analyzer, err
		}
	}

	return analyzer, err
}

func cacheKey(req NameRequest) (key string) {
	key = strings.Join([]string{req.Name, req.Birthdate, string(req.Goal), string(req.Mode)}, "\x00")
	return key
}

// generate calls gen, logging failures. ok is false when no text is available.
func (a *Analyzer) generate(ctx context.Context, gen llm.Generator, subject string, req llm.Request) (text string, ok bool) {
	if gen == nil {
		return text, ok
	}

	text, err := gen.Generate(ctx, req)
	if err != nil {
		a.logger.WarnContext(ctx, "generator call failed",
			slog.String("call", req.Call),
			slog.String("name", subject),
			slog.String("generator", gen.Name()),
			slog.Any("error", err))
		return text, ok
	}

	ok = true
	return text, ok
}

// AnalyzeName scores a name and asks the generator for a holistic adjustment and suggestions.
// Only an invalid name is an error; generator problems fall back to the base score.
func (a *Analyzer) AnalyzeName(ctx context.Context, req NameRequest) (result NameAnalysis, err error) {
	var base numerology.Result
	base, err = numerology.Calculate(req.Name, req.Birthdate)
	if err != nil {
		return result, err
	}

	if req.Goal == "" {
		req.Goal = GoalGeneral
	}
	if req.Mode == "" {
		req.Mode = ModePersonal
	}

	key := cacheKey(req)
	if a.cache != nil {
		if cached, found := a.cache.Get(key); found {
			result = cached.clone()
			return result, err
		}
	}

	result = NameAnalysis{
		Name:           req.Name,
		Goal:           req.Goal,
		Mode:           req.Mode,
		BaseScore:      base.Score,
		Breakdown:      base.Breakdown,
		CoreNumbers:    base.CoreNumbers,
		PositiveTraits: []string{},
		Challenges:     []string{},
		Suggestions:    []Suggestion{},
	}

	holistic, ok := a.holistic(ctx, req, base)
	if ok {
		result.Score = holistic.Score
		result.ShortRationale = holistic.ShortRationale
		result.HolisticRationale = holistic.Rationale
		result.PositiveTraits = holistic.PositiveTraits
		result.Challenges = holistic.Challenges
	} else {
		result.Score = base.Score
		result.Fallback = true
	}
	result.Label = numerology.Label(result.Score)
	if result.ShortRationale == "" {
		result.ShortRationale = fmt.Sprintf("A %s name by pure numerology, scoring %d out of 100.",
			strings.ToLower(result.Label), result.Score)
	}

	// Suggestions must beat both the base score and the score the user sees.
	threshold := base.Score
	if result.Score > threshold {
		threshold = result.Score
	}
	result.Suggestions = a.suggestions(ctx, req, result.Score, threshold, base.CoreNumbers)

	if a.cache != nil && !result.Fallback {
		a.cache.Add(key, result.clone())
	}

	return result, err
}

func (a *Analyzer) holistic(ctx context.Context, req NameRequest, base numerology.Result) (h bounds.Holistic, ok bool) {
	text, ok := a.generate(ctx, a.gen, req.Name, llm.BuildHolisticRequest(llm.HolisticInput{
		Name:        req.Name,
		Mode:        string(req.Mode),
		Birthdate:   req.Birthdate,
		Goal:        string(req.Goal),
		BaseScore:   base.Score,
		Breakdown:   base.Breakdown,
		CoreNumbers: base.CoreNumbers,
		Tolerance:   a.opts.Tolerance,
	}))
	if !ok {
		return h, ok
	}

	h, err := bounds.ParseHolistic(text, base.Score, a.opts.Tolerance)
	if err != nil {
		a.logger.WarnContext(ctx, "discarding holistic payload",
			slog.String("name", req.Name),
			slog.Any("error", err))
		ok = false
		return h, ok
	}

	if h.Score != base.Score {
		a.logger.DebugContext(ctx, "holistic adjustment",
			slog.String("name", req.Name),
			slog.Int("base", base.Score),
			slog.Int("adjusted", h.Score))
	}

	return h, ok
}

func (a *Analyzer) suggestions(ctx context.Context, req NameRequest, score, threshold int, core numerology.CoreNumbers) (list []Suggestion) {
	list = []Suggestion{}

	text, ok := a.generate(ctx, a.suggester, req.Name, llm.BuildSuggestionsRequest(llm.SuggestionInput{
		Name:        req.Name,
		Score:       score,
		Goal:        string(req.Goal),
		CoreNumbers: core,
		Count:       a.opts.SuggestionCount,
	}))
	if !ok {
		return list
	}

	parsed, err := bounds.ParseSuggestions(text)
	if err != nil {
		a.logger.WarnContext(ctx, "discarding suggestions payload",
			slog.String("name", req.Name),
			slog.Any("error", err))
		return list
	}

	for _, s := range bounds.FilterSuggestions(parsed, threshold) {
		own, calcErr := numerology.Calculate(s.Name, req.Birthdate)
		if calcErr != nil {
			continue
		}
		list = append(list, Suggestion{Suggestion: s, NumerologyScore: own.Score})
	}

	return list
}

// AnalyzeCompatibility scores two people and asks the generator for a narrative.
func (a *Analyzer) AnalyzeCompatibility(ctx context.Context, first, second compatibility.Person) (result CompatibilityAnalysis, err error) {
	var scored compatibility.Result
	scored, err = compatibility.Calculate(first, second)
	if err != nil {
		return result, err
	}

	result = CompatibilityAnalysis{
		Result:    scored,
		Narrative: DefaultNarrative,
		Label:     numerology.Label(scored.Score),
		Fallback:  true,
	}

	subject := first.Name + " & " + second.Name
	text, ok := a.generate(ctx, a.gen, subject, llm.BuildCompatibilityRequest(llm.CompatibilityInput{
		First:  llm.PersonInput{Name: first.Name, CoreNumbers: scored.Numbers[0]},
		Second: llm.PersonInput{Name: second.Name, CoreNumbers: scored.Numbers[1]},
		Score:  scored.Score,
	}))
	if !ok {
		return result, err
	}

	narrative, parseErr := bounds.ParseNarrative(text)
	if parseErr != nil {
		a.logger.WarnContext(ctx, "discarding compatibility payload",
			slog.String("name", subject),
			slog.Any("error", parseErr))
		return result, err
	}

	result.Narrative = narrative
	result.Fallback = false

	return result, err
}

// DailyInsight relates a person's core numbers to today's universal day number.
func (a *Analyzer) DailyInsight(ctx context.Context, name, birthdate string) (insight Insight, err error) {
	var base numerology.Result
	base, err = numerology.Calculate(name, birthdate)
	if err != nil {
		return insight, err
	}

	insight = Insight{
		Name:        name,
		DayNumber:   numerology.UniversalDayNumber(a.opts.Now()),
		CoreNumbers: base.CoreNumbers,
		Text:        DefaultInsight,
		Fallback:    true,
	}

	text, ok := a.generate(ctx, a.gen, name, llm.BuildInsightRequest(llm.InsightInput{
		Name:        name,
		CoreNumbers: base.CoreNumbers,
		DayNumber:   insight.DayNumber,
	}))
	text = strings.TrimSpace(text)
	if !ok || text == "" {
		return insight, err
	}

	insight.Text = text
	insight.Fallback = false

	return insight, err
}
