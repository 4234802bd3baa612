package reputation

import (
	"time"

	"github.com/ChaosChain/fin-studio-sub002/internal/consensus"
)

// #region specialty-tags

// Specialty tag labels awarded when a quality dimension reaches the
// specialty threshold.
const (
	TagHighAccuracy       = "high-accuracy"
	TagInnovativeAnalysis = "innovative-analysis"
	TagFastResponse       = "fast-response"
	TagDetailedReasoning  = "detailed-reasoning"
)

// #endregion specialty-tags

// #region performance-record

// PerformanceRecord captures one completed task's outcome for a
// contributor.
type PerformanceRecord struct {
	Timestamp           time.Time               `json:"timestamp"`
	Quality             consensus.QualityVector `json:"quality"`
	Accepted            bool                    `json:"accepted"`
	ResponseTimeMinutes float64                 `json:"response_time_minutes"`
	ScoreAfter          float64                 `json:"score_after"`
}

// #endregion performance-record

// #region contributor-reputation

// ContributorReputation is the running trust record for one contributor.
// It is created on first interaction and mutated after every completed
// task; it is never deleted.
type ContributorReputation struct {
	ContributorID              string                  `json:"contributor_id"`
	Name                       string                  `json:"name"`
	AverageQuality             consensus.QualityVector `json:"average_quality"`
	TotalTasks                 int                     `json:"total_tasks"`
	AcceptedTasks              int                     `json:"accepted_tasks"`
	RejectedTasks              int                     `json:"rejected_tasks"`
	AverageResponseTimeMinutes float64                 `json:"average_response_time_minutes"`
	SpecialtyTags              []string                `json:"specialty_tags,omitempty"`
	RecentFeedback             []string                `json:"recent_feedback,omitempty"`
	ReputationScore            float64                 `json:"reputation_score"`
	PerformanceHistory         []PerformanceRecord     `json:"performance_history,omitempty"`
	LastUpdated                time.Time               `json:"last_updated"`
}

// #endregion contributor-reputation

// #region config

// Config holds the tunable constants of the reputation engine,
// injected at construction so deployments can tune them per
// environment.
type Config struct {
	QualityAlpha          float64 // EMA smoothing for average quality
	ResponseTimeAlpha     float64 // EMA smoothing for response time
	SpecialtyThreshold    float64 // dimension value that earns a tag
	MaxSpecialtyTags      int
	MaxFeedbackHistory    int
	MaxPerformanceHistory int
}

// DefaultConfig returns the production constants.
func DefaultConfig() Config {
	return Config{
		QualityAlpha:          0.3,
		ResponseTimeAlpha:     0.2,
		SpecialtyThreshold:    0.8,
		MaxSpecialtyTags:      5,
		MaxFeedbackHistory:    10,
		MaxPerformanceHistory: 50,
	}
}

// #endregion config

// #region stats

// Stats aggregates the engine's view of the contributor population.
type Stats struct {
	Contributors      int            `json:"contributors"`
	MeanReputation    float64        `json:"mean_reputation"`
	TopContributorIDs []string       `json:"top_contributor_ids,omitempty"`
	TagCounts         map[string]int `json:"tag_counts,omitempty"`
}

// #endregion stats
