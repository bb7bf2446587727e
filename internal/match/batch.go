package match

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jmorgan/talentmatch/internal/types"
)

// Pair is one profile/requirement combination to score in a batch.
type Pair struct {
	Profile     *types.CandidateProfile
	Requirement *types.JobRequirement
}

// ScoreAll scores every pair concurrently and returns the reports in input
// order. Scoring is read-only against the taxonomy store so pairs are
// independent; the context cancels scoring that has not started yet.
func (s *Scorer) ScoreAll(ctx context.Context, pairs []Pair) ([]*types.MatchReport, error) {
	reports := make([]*types.MatchReport, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pair := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = s.Score(pair.Profile, pair.Requirement)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
