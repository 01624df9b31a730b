// Package batch runs framework extraction across many ads in parallel.
// Extraction is pure and shares only read-only taxonomy state, so the
// batch is embarrassingly parallel; results land in input order so output
// never depends on goroutine scheduling.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mhailey/copyscope/internal/adcopy"
	"github.com/mhailey/copyscope/internal/framework"
	"github.com/mhailey/copyscope/internal/taxonomy"
)

// Result pairs one ad with its extracted framework or its failure.
type Result struct {
	Ad        adcopy.Ad
	Framework framework.Framework
	Err       error
}

// Run extracts frameworks for ads with at most workers goroutines.
// Per-ad validation failures are recorded in Result.Err, not returned;
// the only returned error is context cancellation.
func Run(ctx context.Context, ads []adcopy.Ad, tax *taxonomy.Taxonomy, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(ads))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ad := range ads {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = extractOne(ad, tax)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func extractOne(ad adcopy.Ad, tax *taxonomy.Taxonomy) Result {
	if err := ad.Validate(); err != nil {
		return Result{Ad: ad, Err: err}
	}
	return Result{Ad: ad, Framework: framework.Extract(ad, tax)}
}
