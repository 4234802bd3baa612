package reputation

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/ChaosChain/fin-studio-sub002/internal/consensus"
)

// #region errors

// ErrNegativeResponseTime is returned when taskEnd precedes taskStart.
// That is a caller error; the reputation record is left untouched.
var ErrNegativeResponseTime = errors.New("negative response time")

// #endregion errors

// #region engine

// Engine maintains per-contributor reputation records, updated from
// consensus results. It is constructed once and injected wherever
// reputation reads or updates are needed; there is no package-level
// instance.
type Engine struct {
	cfg Config

	mu          sync.RWMutex
	reputations map[string]*ContributorReputation
}

// NewEngine creates a reputation engine with the given constants.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:         cfg,
		reputations: make(map[string]*ContributorReputation),
	}
}

// #endregion engine

// #region update

// UpdateReputation folds one completed task's judgments into the
// contributor's record and returns the updated record. Unknown
// contributors are initialized with neutral defaults first.
func (e *Engine) UpdateReputation(contributorID, name string, judgments []consensus.ReviewJudgment, taskStart, taskEnd time.Time) (ContributorReputation, error) {
	responseMinutes := taskEnd.Sub(taskStart).Minutes()
	if responseMinutes < 0 {
		return ContributorReputation{}, fmt.Errorf("%w: task end %s precedes start %s", ErrNegativeResponseTime, taskEnd.Format(time.RFC3339), taskStart.Format(time.RFC3339))
	}

	quality, err := consensus.Consensus(judgments)
	if err != nil {
		return ContributorReputation{}, fmt.Errorf("consensus for %s: %w", contributorID, err)
	}
	accepted := consensus.IsAccepted(judgments)

	e.mu.Lock()
	defer e.mu.Unlock()

	rep, ok := e.reputations[contributorID]
	if !ok {
		rep = &ContributorReputation{
			ContributorID:   contributorID,
			Name:            name,
			AverageQuality:  consensus.DefaultQuality(),
			ReputationScore: 0.5,
		}
		e.reputations[contributorID] = rep
	}
	if name != "" {
		rep.Name = name
	}

	// Counters.
	rep.TotalTasks++
	if accepted {
		rep.AcceptedTasks++
	} else {
		rep.RejectedTasks++
	}

	// Response time: first observation sets it directly, later ones are
	// smoothed with the response-time EMA.
	if rep.TotalTasks == 1 {
		rep.AverageResponseTimeMinutes = responseMinutes
	} else {
		a := e.cfg.ResponseTimeAlpha
		rep.AverageResponseTimeMinutes = a*responseMinutes + (1-a)*rep.AverageResponseTimeMinutes
	}

	// Quality EMA, per dimension, rounded to 2 decimals.
	a := e.cfg.QualityAlpha
	avg := rep.AverageQuality.Dims()
	for i, v := range quality.Dims() {
		avg[i] = round2(a*v + (1-a)*avg[i])
	}
	rep.AverageQuality = consensus.FromDims(avg)

	e.applySpecialtyTags(rep, quality)
	e.applyFeedback(rep, judgments)

	rep.ReputationScore = e.score(rep)
	rep.LastUpdated = time.Now().UTC()

	// Newest-first performance history, capped.
	record := PerformanceRecord{
		Timestamp:           rep.LastUpdated,
		Quality:             quality,
		Accepted:            accepted,
		ResponseTimeMinutes: responseMinutes,
		ScoreAfter:          rep.ReputationScore,
	}
	rep.PerformanceHistory = append([]PerformanceRecord{record}, rep.PerformanceHistory...)
	if len(rep.PerformanceHistory) > e.cfg.MaxPerformanceHistory {
		rep.PerformanceHistory = rep.PerformanceHistory[:e.cfg.MaxPerformanceHistory]
	}

	return copyReputation(rep), nil
}

// applySpecialtyTags awards tags for task dimensions at or above the
// specialty threshold. The tag list keeps at most MaxSpecialtyTags,
// dropping the oldest when exceeded.
func (e *Engine) applySpecialtyTags(rep *ContributorReputation, quality consensus.QualityVector) {
	candidates := []struct {
		value float64
		tag   string
	}{
		{quality.Accuracy, TagHighAccuracy},
		{quality.Originality, TagInnovativeAnalysis},
		{quality.Timeliness, TagFastResponse},
		{quality.Causality, TagDetailedReasoning},
	}
	for _, c := range candidates {
		if c.value < e.cfg.SpecialtyThreshold || hasTag(rep.SpecialtyTags, c.tag) {
			continue
		}
		rep.SpecialtyTags = append(rep.SpecialtyTags, c.tag)
		if len(rep.SpecialtyTags) > e.cfg.MaxSpecialtyTags {
			rep.SpecialtyTags = rep.SpecialtyTags[len(rep.SpecialtyTags)-e.cfg.MaxSpecialtyTags:]
		}
	}
}

// applyFeedback prepends the task's non-empty feedback entries, newest
// first, capped at MaxFeedbackHistory.
func (e *Engine) applyFeedback(rep *ContributorReputation, judgments []consensus.ReviewJudgment) {
	var fresh []string
	for _, j := range judgments {
		if j.Feedback != "" {
			fresh = append(fresh, j.Feedback)
		}
	}
	if len(fresh) == 0 {
		return
	}
	rep.RecentFeedback = append(fresh, rep.RecentFeedback...)
	if len(rep.RecentFeedback) > e.cfg.MaxFeedbackHistory {
		rep.RecentFeedback = rep.RecentFeedback[:e.cfg.MaxFeedbackHistory]
	}
}

// score recomputes the scalar reputation score from the running record.
func (e *Engine) score(rep *ContributorReputation) float64 {
	q := rep.AverageQuality
	base := 0.2*q.Accuracy + 0.15*q.Completeness + 0.15*q.Causality +
		0.1*q.Timeliness + 0.1*q.Originality + 0.2*q.Trustworthiness +
		0.1*q.Confidence

	acceptanceBonus := (float64(rep.AcceptedTasks)/float64(rep.TotalTasks) - 0.5) * 0.2
	experienceBonus := math.Min(0.05, float64(rep.TotalTasks)*0.001)
	responseBonus := clamp(-0.05, 0.05, (10-rep.AverageResponseTimeMinutes)*0.01)

	return round3(clamp(0, 1, base+acceptanceBonus+experienceBonus+responseBonus))
}

// #endregion update

// #region reads

// Reputation returns a copy of the contributor's record.
func (e *Engine) Reputation(contributorID string) (ContributorReputation, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	rep, ok := e.reputations[contributorID]
	if !ok {
		return ContributorReputation{}, false
	}
	return copyReputation(rep), true
}

// TopContributors returns up to limit records sorted descending by
// reputation score. Ties order by contributor id for determinism.
func (e *Engine) TopContributors(limit int) []ContributorReputation {
	e.mu.RLock()
	out := make([]ContributorReputation, 0, len(e.reputations))
	for _, rep := range e.reputations {
		out = append(out, copyReputation(rep))
	}
	e.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].ReputationScore != out[j].ReputationScore {
			return out[i].ReputationScore > out[j].ReputationScore
		}
		return out[i].ContributorID < out[j].ContributorID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ByCapabilityTag returns all contributors carrying the given specialty tag.
func (e *Engine) ByCapabilityTag(tag string) []ContributorReputation {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []ContributorReputation
	for _, rep := range e.reputations {
		if hasTag(rep.SpecialtyTags, tag) {
			out = append(out, copyReputation(rep))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ContributorID < out[j].ContributorID })
	return out
}

// Stats aggregates contributor count, mean reputation, top-5 ids and
// per-tag counts.
func (e *Engine) Stats() Stats {
	top := e.TopContributors(5)

	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := Stats{
		Contributors: len(e.reputations),
		TagCounts:    make(map[string]int),
	}
	var sum float64
	for _, rep := range e.reputations {
		sum += rep.ReputationScore
		for _, tag := range rep.SpecialtyTags {
			stats.TagCounts[tag]++
		}
	}
	if stats.Contributors > 0 {
		stats.MeanReputation = round3(sum / float64(stats.Contributors))
	}
	for _, rep := range top {
		stats.TopContributorIDs = append(stats.TopContributorIDs, rep.ContributorID)
	}
	return stats
}

// #endregion reads

// #region helpers

func copyReputation(rep *ContributorReputation) ContributorReputation {
	out := *rep
	out.SpecialtyTags = append([]string(nil), rep.SpecialtyTags...)
	out.RecentFeedback = append([]string(nil), rep.RecentFeedback...)
	out.PerformanceHistory = append([]PerformanceRecord(nil), rep.PerformanceHistory...)
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// #endregion helpers
