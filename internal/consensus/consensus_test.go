package consensus

import (
	"strings"
	"testing"
)

func judgment(accuracy float64, passed bool) ReviewJudgment {
	return ReviewJudgment{
		ReviewerID: "r",
		Quality: QualityVector{
			Accuracy: accuracy, Completeness: accuracy, Causality: accuracy,
			Timeliness: accuracy, Originality: accuracy,
			Trustworthiness: accuracy, Confidence: accuracy,
		},
		EndResultCheckPassed: passed,
		CausalAuditPassed:    passed,
	}
}

func TestConsensus_Mean(t *testing.T) {
	judgments := []ReviewJudgment{
		judgment(0.9, true),
		judgment(0.7, true),
		judgment(0.5, false),
	}

	got, err := Consensus(judgments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (0.9 + 0.7 + 0.5) / 3 = 0.7
	if got.Accuracy != 0.7 {
		t.Errorf("accuracy: got %v, want 0.7", got.Accuracy)
	}
	if got.Confidence != 0.7 {
		t.Errorf("confidence: got %v, want 0.7", got.Confidence)
	}
}

func TestConsensus_Rounding(t *testing.T) {
	// (0.333 + 0.333 + 0.334) / 3 = 0.33333... -> 0.33
	judgments := []ReviewJudgment{
		judgment(0.333, true),
		judgment(0.333, true),
		judgment(0.334, true),
	}
	got, err := Consensus(judgments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Accuracy != 0.33 {
		t.Errorf("accuracy: got %v, want 0.33", got.Accuracy)
	}
}

func TestConsensus_Empty(t *testing.T) {
	if _, err := Consensus(nil); err != ErrInsufficientJudgments {
		t.Errorf("got %v, want ErrInsufficientJudgments", err)
	}
}

func TestIsAccepted_Majority(t *testing.T) {
	tests := []struct {
		name   string
		passed []bool
		want   bool
	}{
		{"unanimous-pass", []bool{true, true, true}, true},
		{"majority-pass", []bool{true, true, false}, true},
		{"tie-rejects", []bool{true, true, false, false}, false},
		{"minority-pass", []bool{true, false, false}, false},
		{"single-pass", []bool{true}, true},
		{"single-fail", []bool{false}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var judgments []ReviewJudgment
			for _, p := range tt.passed {
				judgments = append(judgments, judgment(0.5, p))
			}
			if got := IsAccepted(judgments); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAccepted_RequiresBothChecks(t *testing.T) {
	// Two reviewers pass only one of the two checks each; one passes both.
	// passCount is 1 of 3, so the contribution is rejected.
	judgments := []ReviewJudgment{
		{EndResultCheckPassed: true, CausalAuditPassed: false},
		{EndResultCheckPassed: false, CausalAuditPassed: true},
		{EndResultCheckPassed: true, CausalAuditPassed: true},
	}
	if IsAccepted(judgments) {
		t.Error("single-check passes must not count toward the majority")
	}
}

func TestAggregateFeedback(t *testing.T) {
	judgments := []ReviewJudgment{
		{Feedback: "solid causal reasoning"},
		{Feedback: ""},
		{Feedback: "missing volume data"},
	}
	got := AggregateFeedback(judgments)
	want := "solid causal reasoning" + FeedbackDelimiter + "missing volume data"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(got, FeedbackDelimiter+FeedbackDelimiter) {
		t.Error("empty feedback must be skipped, not joined")
	}
}

func TestAggregateFeedback_AllEmpty(t *testing.T) {
	judgments := []ReviewJudgment{{}, {}}
	if got := AggregateFeedback(judgments); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
