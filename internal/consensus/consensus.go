package consensus

import (
	"errors"
	"math"
	"strings"
)

// #region errors

// ErrInsufficientJudgments is returned when consensus is requested over an
// empty judgment set.
var ErrInsufficientJudgments = errors.New("consensus requires at least one judgment")

// #endregion errors

// #region feedback-delimiter

// FeedbackDelimiter separates reviewer feedback strings in the aggregate.
const FeedbackDelimiter = " | "

// #endregion feedback-delimiter

// #region consensus

// Consensus computes the per-dimension arithmetic mean across all
// judgments, with each dimension rounded to 2 decimal places.
func Consensus(judgments []ReviewJudgment) (QualityVector, error) {
	if len(judgments) == 0 {
		return QualityVector{}, ErrInsufficientJudgments
	}

	var sums [7]float64
	for _, j := range judgments {
		for i, v := range j.Quality.Dims() {
			sums[i] += v
		}
	}

	n := float64(len(judgments))
	for i := range sums {
		sums[i] = round2(sums[i] / n)
	}
	return FromDims(sums), nil
}

// #endregion consensus

// #region accepted

// IsAccepted applies the strict-majority rule: a contribution is accepted
// only when more than half of the reviewers passed both the end-result
// check and the causal audit. An exact tie rejects.
func IsAccepted(judgments []ReviewJudgment) bool {
	passCount := 0
	for _, j := range judgments {
		if j.Passed() {
			passCount++
		}
	}
	return passCount*2 > len(judgments)
}

// #endregion accepted

// #region aggregate-feedback

// AggregateFeedback concatenates all non-empty reviewer feedback strings.
// Empty feedback is skipped silently.
func AggregateFeedback(judgments []ReviewJudgment) string {
	var parts []string
	for _, j := range judgments {
		if j.Feedback != "" {
			parts = append(parts, j.Feedback)
		}
	}
	return strings.Join(parts, FeedbackDelimiter)
}

// #endregion aggregate-feedback

// #region helpers

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// #endregion helpers
