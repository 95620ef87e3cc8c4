package analysis

import (
	"context"
	"sort"

	"github.com/nikogura/namescore/pkg/numerology"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// AnalyzeBatch scores many names deterministically with bounded concurrency.
// Entries keep the input order; an invalid name is reported on its entry only.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, names []string, birthdate string) (entries []BatchEntry, err error) {
	entries = make([]BatchEntry, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Concurrency)

	for i, name := range names {
		g.Go(func() (goErr error) {
			goErr = gctx.Err()
			if goErr != nil {
				return goErr
			}

			entry := BatchEntry{Name: name}
			result, calcErr := numerology.Calculate(name, birthdate)
			if calcErr != nil {
				entry.Error = calcErr.Error()
			} else {
				entry.Result = result
				entry.Label = numerology.Label(result.Score)
			}

			entries[i] = entry
			return goErr
		})
	}

	err = g.Wait()
	if err != nil {
		err = errors.Wrap(err, "batch scoring interrupted")
		return entries, err
	}

	return entries, err
}

// SortByScore orders entries by score, highest first, with failed entries last.
func SortByScore(entries []BatchEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if (entries[i].Error == "") != (entries[j].Error == "") {
			return entries[i].Error == ""
		}
		return entries[i].Result.Score > entries[j].Result.Score
	})
}
