package consensus

// #region quality-vector

// QualityVector scores a contribution along seven bounded dimensions.
// Every dimension is expected to lie in [0,1].
type QualityVector struct {
	Accuracy        float64 `json:"accuracy"`
	Completeness    float64 `json:"completeness"`
	Causality       float64 `json:"causality"`
	Timeliness      float64 `json:"timeliness"`
	Originality     float64 `json:"originality"`
	Trustworthiness float64 `json:"trustworthiness"`
	Confidence      float64 `json:"confidence"`
}

// Dims exposes the dimensions in canonical order for arithmetic.
func (q QualityVector) Dims() [7]float64 {
	return [7]float64{
		q.Accuracy, q.Completeness, q.Causality, q.Timeliness,
		q.Originality, q.Trustworthiness, q.Confidence,
	}
}

// FromDims rebuilds a vector from dimensions in canonical order.
func FromDims(a [7]float64) QualityVector {
	return QualityVector{
		Accuracy:        a[0],
		Completeness:    a[1],
		Causality:       a[2],
		Timeliness:      a[3],
		Originality:     a[4],
		Trustworthiness: a[5],
		Confidence:      a[6],
	}
}

// DefaultQuality is the neutral vector assigned to new contributors.
func DefaultQuality() QualityVector {
	return FromDims([7]float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5})
}

// #endregion quality-vector

// #region review-judgment

// ReviewJudgment is one independent reviewer's assessment of a
// contribution node.
type ReviewJudgment struct {
	ReviewerID           string        `json:"reviewer_id"`
	Quality              QualityVector `json:"quality"`
	EndResultCheckPassed bool          `json:"end_result_check_passed"`
	CausalAuditPassed    bool          `json:"causal_audit_passed"`
	Feedback             string        `json:"feedback,omitempty"`
}

// Passed reports whether the reviewer passed both checks. Acceptance
// requires a strict majority of reviewers for which this holds.
func (j ReviewJudgment) Passed() bool {
	return j.EndResultCheckPassed && j.CausalAuditPassed
}

// #endregion review-judgment
