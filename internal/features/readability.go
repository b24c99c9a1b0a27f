package features

import (
	"context"
	"errors"
)

var errNoReadabilityScorer = errors.New("readability scorer not configured")

// scoreResult carries a best-effort capability value. A failed score is
// substituted with 0.0 by orZero; the failure itself is kept for the report.
type scoreResult struct {
	value float64
	err   error
}

func (r scoreResult) orZero() float64 {
	if r.err != nil {
		return 0
	}
	return r.value
}

type readabilityStats struct {
	flesch     float64
	gunningFog float64
}

func fleschScore(ctx context.Context, scorer ReadabilityScorer, text string) scoreResult {
	if scorer == nil {
		return scoreResult{err: errNoReadabilityScorer}
	}
	v, err := scorer.FleschReadingEase(ctx, text)
	return scoreResult{value: v, err: err}
}

func gunningFogScore(ctx context.Context, scorer ReadabilityScorer, text string) scoreResult {
	if scorer == nil {
		return scoreResult{err: errNoReadabilityScorer}
	}
	v, err := scorer.GunningFog(ctx, text)
	return scoreResult{value: v, err: err}
}

func computeReadability(flesch, fog scoreResult) readabilityStats {
	return readabilityStats{
		flesch:     flesch.orZero(),
		gunningFog: fog.orZero(),
	}
}
