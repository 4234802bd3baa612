package provenance

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"sync"
	"time"
)

// #region errors

var (
	// ErrDuplicateNode is returned when a node id is already present.
	ErrDuplicateNode = errors.New("duplicate node id")

	// ErrMalformedNode is returned when a node lacks required fields.
	// The ledger is left untouched.
	ErrMalformedNode = errors.New("malformed node")
)

// #endregion errors

// #region ledger

// Ledger is an append-only-per-task store of contribution nodes. It is a
// rolling window over the active task, not a permanent archive: switching
// the current task purges the previous task's nodes. Callers needing
// history must persist payment records and reputation separately.
type Ledger struct {
	mu            sync.RWMutex
	nodes         map[string]ContributionNode
	byContributor map[string][]string
	byTask        map[string][]string
	order         []string // insertion order of node ids, for stable queries
	currentTask   string
}

// NewLedger constructs an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		nodes:         make(map[string]ContributionNode),
		byContributor: make(map[string][]string),
		byTask:        make(map[string][]string),
	}
}

// #endregion ledger

// #region add-node

// AddNode stores a node and indexes it by contributor and task.
// Malformed nodes and duplicate ids are rejected before any mutation.
func (l *Ledger) AddNode(node ContributionNode) error {
	if node.ID == "" || node.ContributorID == "" || node.TaskID == "" {
		return fmt.Errorf("%w: id, contributor id and task id are required", ErrMalformedNode)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.nodes[node.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, node.ID)
	}

	l.nodes[node.ID] = node
	l.byContributor[node.ContributorID] = append(l.byContributor[node.ContributorID], node.ID)
	l.byTask[node.TaskID] = append(l.byTask[node.TaskID], node.ID)
	l.order = append(l.order, node.ID)
	return nil
}

// #endregion add-node

// #region reads

// NodesByContributor returns the contributor's nodes in insertion order.
func (l *Ledger) NodesByContributor(contributorID string) []ContributionNode {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.collect(l.byContributor[contributorID])
}

// NodesByTask returns the task's nodes in insertion order. Repeated calls
// with no intervening writes return identical, order-stable results.
func (l *Ledger) NodesByTask(taskID string) []ContributionNode {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.collect(l.byTask[taskID])
}

// Query returns all nodes matching the filter, in insertion order.
func (l *Ledger) Query(filter QueryFilter) []ContributionNode {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []ContributionNode
	for _, id := range l.order {
		n := l.nodes[id]
		if filter.matches(n) {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of stored nodes.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.nodes)
}

// collect resolves ids to node copies. Caller holds at least a read lock.
func (l *Ledger) collect(ids []string) []ContributionNode {
	out := make([]ContributionNode, 0, len(ids))
	for _, id := range ids {
		if n, ok := l.nodes[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// #endregion reads

// #region causal-chain

// CausalChain walks the parent links from the given node, depth first,
// deduplicating with a visited set. The result is in discovery order
// (each node precedes its parents); it is a traversal order, not a
// dependency-respecting topological order, since a node with multiple
// parents may share ancestors.
func (l *Ledger) CausalChain(nodeID string) []ContributionNode {
	l.mu.RLock()
	defer l.mu.RUnlock()

	visited := make(map[string]bool)
	var chain []ContributionNode
	l.walk(nodeID, visited, &chain)
	return chain
}

func (l *Ledger) walk(id string, visited map[string]bool, chain *[]ContributionNode) {
	if visited[id] {
		return
	}
	node, ok := l.nodes[id]
	if !ok {
		return
	}
	visited[id] = true
	*chain = append(*chain, node)
	for _, parent := range node.ParentNodeIDs {
		l.walk(parent, visited, chain)
	}
}

// #endregion causal-chain

// #region current-task

// SetCurrentTask switches the active task. The previous current task's
// nodes are purged from the node map and from both indices, bounding the
// ledger's memory to the active task.
func (l *Ledger) SetCurrentTask(taskID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentTask != "" && l.currentTask != taskID {
		l.removeLocked(l.byTask[l.currentTask])
	}
	l.currentTask = taskID
}

// CurrentTask returns the active task id, empty if none was set.
func (l *Ledger) CurrentTask() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentTask
}

// #endregion current-task

// #region eviction

// EvictOlderThan removes nodes whose timestamp is older than the
// retention window, independent of task switching. Returns the number
// of evicted nodes.
func (l *Ledger) EvictOlderThan(retention time.Duration) int {
	cutoff := time.Now().Add(-retention)

	l.mu.Lock()
	defer l.mu.Unlock()

	var stale []string
	for id, n := range l.nodes {
		if n.Timestamp.Before(cutoff) {
			stale = append(stale, id)
		}
	}
	l.removeLocked(stale)
	return len(stale)
}

// removeLocked deletes the given node ids and repairs both indices and
// the insertion-order list. Caller holds the write lock.
func (l *Ledger) removeLocked(ids []string) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := l.nodes[id]; ok {
			drop[id] = true
			delete(l.nodes, id)
		}
	}
	if len(drop) == 0 {
		return
	}

	for contributor, list := range l.byContributor {
		kept := filterIDs(list, drop)
		if len(kept) == 0 {
			delete(l.byContributor, contributor)
		} else {
			l.byContributor[contributor] = kept
		}
	}
	for task, list := range l.byTask {
		kept := filterIDs(list, drop)
		if len(kept) == 0 {
			delete(l.byTask, task)
		} else {
			l.byTask[task] = kept
		}
	}
	l.order = filterIDs(l.order, drop)
}

func filterIDs(ids []string, drop map[string]bool) []string {
	kept := ids[:0]
	for _, id := range ids {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	return kept
}

// #endregion eviction

// #region verify-signature

// VerifySignature recomputes the node's signed surface and checks the
// signature against the contributor's public key. It returns false on
// any mismatch rather than an error: a tampered field is a negative
// verification result, not a fault.
func (l *Ledger) VerifySignature(node ContributionNode, pub ed25519.PublicKey) bool {
	if len(pub) != ed25519.PublicKeySize || len(node.Signature) == 0 {
		return false
	}
	return ed25519.Verify(pub, node.SigningBytes(), node.Signature)
}

// #endregion verify-signature
