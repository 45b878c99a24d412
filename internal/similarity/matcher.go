// Package similarity ranks historical propositions by resemblance to a target.
package similarity

import (
	"math"
	"sort"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/utils"
)

// Options controls FindSimilar
type Options struct {
	Limit         int     `validate:"gte=0,lte=50"`
	MinSimilarity float64 `validate:"gte=0,lte=1"`
}

// DefaultOptions returns limit 5 and minimum similarity 0.2
func DefaultOptions() Options {
	return Options{Limit: DefaultLimit, MinSimilarity: DefaultMinSimilarity}
}

// Score rates how alike two propositions are, in [0,1].
// Different categories always score 0.
func Score(target, candidate domain.Proposition) float64 {
	return scoreKeywords(target, Keywords(target.Title), candidate)
}

func scoreKeywords(target domain.Proposition, targetKeywords []string, candidate domain.Proposition) float64 {
	if target.Category != candidate.Category {
		return 0
	}

	candidateKeywords := Keywords(candidate.Title)
	denominator := max(len(targetKeywords), len(candidateKeywords), 1)
	keywordScore := float64(overlap(targetKeywords, candidateKeywords)) / float64(denominator) * KeywordOverlapWeight

	yearDiff := math.Abs(float64(target.Year - candidate.Year))
	recency := math.Max(0, MaxRecencyBonus-RecencyDecayPerYear*yearDiff)

	return utils.RoundMetric(utils.Clamp01(CategoryMatchBase + keywordScore + recency))
}

// FindSimilar scores every decided candidate against target and returns the
// best matches, most similar first. Ties go to the more recent year, then the
// lower ballot number. The target itself is never returned.
func FindSimilar(target domain.Proposition, pool []domain.Proposition, opts Options) []domain.HistoricalComparison {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}

	targetKeywords := Keywords(target.Title)
	comparisons := make([]domain.HistoricalComparison, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == target.ID || !candidate.HasResult() {
			continue
		}
		score := scoreKeywords(target, targetKeywords, candidate)
		if score == 0 || score < opts.MinSimilarity {
			continue
		}
		comparisons = append(comparisons, toComparison(candidate, score))
	}

	sort.SliceStable(comparisons, func(i, j int) bool {
		a, b := comparisons[i], comparisons[j]
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Number < b.Number
	})

	if len(comparisons) > opts.Limit {
		comparisons = comparisons[:opts.Limit]
	}
	return comparisons
}

func toComparison(p domain.Proposition, score float64) domain.HistoricalComparison {
	result := domain.StatusFailed
	if p.Result.Passed {
		result = domain.StatusPassed
	}
	return domain.HistoricalComparison{
		PropositionID: p.ID,
		Number:        p.Number,
		Year:          p.Year,
		Title:         p.Title,
		Similarity:    score,
		Result:        result,
		YesPercentage: utils.Round(p.Result.YesPercentage(), 2),
	}
}
