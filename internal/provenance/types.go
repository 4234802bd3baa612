package provenance

import (
	"bytes"
	"strings"
	"time"
)

// #region component-type

// ComponentType classifies what kind of analytical output a node carries.
type ComponentType string

const (
	ComponentAnalysis  ComponentType = "analysis"
	ComponentForecast  ComponentType = "forecast"
	ComponentReview    ComponentType = "review"
	ComponentSynthesis ComponentType = "synthesis"
)

// #endregion component-type

// #region contribution-node

// ContributionNode is a signed record of one contributor's output for a
// task. Nodes are immutable once stored; the ledger holds its own copy.
type ContributionNode struct {
	ID             string        `json:"id"`
	ContributorID  string        `json:"contributor_id"`
	TaskID         string        `json:"task_id"`
	ComponentType  ComponentType `json:"component_type"`
	Timestamp      time.Time     `json:"timestamp"`
	ResultPayload  string        `json:"result_payload"`
	DataSourceRefs []string      `json:"data_source_refs,omitempty"`
	Reasoning      string        `json:"reasoning,omitempty"`
	ParentNodeIDs  []string      `json:"parent_node_ids,omitempty"`
	Signature      []byte        `json:"signature,omitempty"`
}

// SigningBytes returns the canonical byte sequence covered by the node
// signature: contributor id, timestamp, result payload and data source
// refs, in that order. Reasoning and parents are deliberately outside the
// signed surface, matching the signing contract.
func (n ContributionNode) SigningBytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(n.ContributorID)
	buf.WriteByte('\n')
	buf.WriteString(n.Timestamp.UTC().Format(time.RFC3339Nano))
	buf.WriteByte('\n')
	buf.WriteString(n.ResultPayload)
	buf.WriteByte('\n')
	buf.WriteString(strings.Join(n.DataSourceRefs, "\x1f"))
	return buf.Bytes()
}

// #endregion contribution-node

// #region query-filter

// QueryFilter narrows a ledger query. Zero-value fields match everything.
type QueryFilter struct {
	ComponentType ComponentType
	After         time.Time // inclusive lower bound, zero = unbounded
	Before        time.Time // exclusive upper bound, zero = unbounded
}

func (f QueryFilter) matches(n ContributionNode) bool {
	if f.ComponentType != "" && n.ComponentType != f.ComponentType {
		return false
	}
	if !f.After.IsZero() && n.Timestamp.Before(f.After) {
		return false
	}
	if !f.Before.IsZero() && !n.Timestamp.Before(f.Before) {
		return false
	}
	return true
}

// #endregion query-filter
