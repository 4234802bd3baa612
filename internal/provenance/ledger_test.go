package provenance

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"
)

func testNode(id, contributor, task string, parents ...string) ContributionNode {
	return ContributionNode{
		ID:            id,
		ContributorID: contributor,
		TaskID:        task,
		ComponentType: ComponentAnalysis,
		Timestamp:     time.Now().UTC(),
		ResultPayload: "payload-" + id,
		ParentNodeIDs: parents,
	}
}

func TestAddNode_DuplicateRejected(t *testing.T) {
	l := NewLedger()
	if err := l.AddNode(testNode("n1", "alice", "task-a")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	err := l.AddNode(testNode("n1", "bob", "task-a"))
	if !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("got %v, want ErrDuplicateNode", err)
	}
	// The duplicate must not have leaked into any index.
	if got := len(l.NodesByContributor("bob")); got != 0 {
		t.Errorf("bob index: got %d nodes, want 0", got)
	}
}

func TestAddNode_MalformedRejected(t *testing.T) {
	l := NewLedger()
	tests := []struct {
		name string
		node ContributionNode
	}{
		{"missing-id", ContributionNode{ContributorID: "alice", TaskID: "t"}},
		{"missing-contributor", ContributionNode{ID: "n1", TaskID: "t"}},
		{"missing-task", ContributionNode{ID: "n1", ContributorID: "alice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := l.AddNode(tt.node); !errors.Is(err, ErrMalformedNode) {
				t.Errorf("got %v, want ErrMalformedNode", err)
			}
		})
	}
	if l.Len() != 0 {
		t.Errorf("ledger mutated by rejected nodes: %d entries", l.Len())
	}
}

func TestNodesByTask_OrderStable(t *testing.T) {
	l := NewLedger()
	for _, id := range []string{"n1", "n2", "n3"} {
		if err := l.AddNode(testNode(id, "alice", "task-a")); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	first := l.NodesByTask("task-a")
	second := l.NodesByTask("task-a")
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated reads with no writes must be identical")
	}
	for i, want := range []string{"n1", "n2", "n3"} {
		if first[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, first[i].ID, want)
		}
	}
}

func TestQuery_Filters(t *testing.T) {
	l := NewLedger()
	base := time.Now().UTC()

	old := testNode("old", "alice", "task-a")
	old.Timestamp = base.Add(-2 * time.Hour)
	old.ComponentType = ComponentForecast

	recent := testNode("recent", "bob", "task-a")
	recent.Timestamp = base

	for _, n := range []ContributionNode{old, recent} {
		if err := l.AddNode(n); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	byType := l.Query(QueryFilter{ComponentType: ComponentForecast})
	if len(byType) != 1 || byType[0].ID != "old" {
		t.Errorf("component filter: got %v", byType)
	}

	byTime := l.Query(QueryFilter{After: base.Add(-time.Hour)})
	if len(byTime) != 1 || byTime[0].ID != "recent" {
		t.Errorf("time filter: got %v", byTime)
	}

	all := l.Query(QueryFilter{})
	if len(all) != 2 {
		t.Errorf("empty filter: got %d nodes, want 2", len(all))
	}
}

func TestCausalChain_DiamondVisitsOnce(t *testing.T) {
	l := NewLedger()
	// grandparent <- p1, p2; child <- p1, p2. Classic diamond.
	nodes := []ContributionNode{
		testNode("gp", "alice", "task-a"),
		testNode("p1", "bob", "task-a", "gp"),
		testNode("p2", "carol", "task-a", "gp"),
		testNode("child", "dave", "task-a", "p1", "p2"),
	}
	for _, n := range nodes {
		if err := l.AddNode(n); err != nil {
			t.Fatalf("add %s: %v", n.ID, err)
		}
	}

	chain := l.CausalChain("child")
	if len(chain) != 4 {
		t.Fatalf("got %d nodes, want 4 (each distinct node exactly once)", len(chain))
	}
	seen := make(map[string]int)
	for _, n := range chain {
		seen[n.ID]++
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("node %s visited %d times", id, count)
		}
	}
	if chain[0].ID != "child" {
		t.Errorf("discovery order: first node is %s, want child", chain[0].ID)
	}
}

func TestCausalChain_MissingParentSkipped(t *testing.T) {
	l := NewLedger()
	if err := l.AddNode(testNode("n1", "alice", "task-a", "evicted-parent")); err != nil {
		t.Fatalf("add: %v", err)
	}
	chain := l.CausalChain("n1")
	if len(chain) != 1 {
		t.Errorf("got %d nodes, want 1", len(chain))
	}
}

func TestSetCurrentTask_PurgesPreviousTask(t *testing.T) {
	l := NewLedger()
	l.SetCurrentTask("task-a")
	for _, id := range []string{"a1", "a2"} {
		if err := l.AddNode(testNode(id, "alice", "task-a")); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	l.SetCurrentTask("task-b")

	if got := l.NodesByTask("task-a"); len(got) != 0 {
		t.Errorf("task index: %d nodes survive purge", len(got))
	}
	if got := l.NodesByContributor("alice"); len(got) != 0 {
		t.Errorf("contributor index: %d nodes survive purge", len(got))
	}
	if l.Len() != 0 {
		t.Errorf("node map: %d nodes survive purge", l.Len())
	}
	if l.CurrentTask() != "task-b" {
		t.Errorf("current task: got %s", l.CurrentTask())
	}
}

func TestSetCurrentTask_SameTaskNoPurge(t *testing.T) {
	l := NewLedger()
	l.SetCurrentTask("task-a")
	if err := l.AddNode(testNode("a1", "alice", "task-a")); err != nil {
		t.Fatalf("add: %v", err)
	}
	l.SetCurrentTask("task-a")
	if l.Len() != 1 {
		t.Error("re-setting the same task must not purge it")
	}
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	l := NewLedger()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = l.AddNode(testNode(fmt.Sprintf("n%d", i), "alice", "task-a"))
		}
	}()

	for i := 0; i < 200; i++ {
		l.NodesByTask("task-a")
		l.NodesByContributor("alice")
		l.Query(QueryFilter{})
	}
	<-done

	if l.Len() != 200 {
		t.Errorf("got %d nodes, want 200", l.Len())
	}
}

func TestEvictOlderThan(t *testing.T) {
	l := NewLedger()
	stale := testNode("stale", "alice", "task-a")
	stale.Timestamp = time.Now().Add(-48 * time.Hour)
	fresh := testNode("fresh", "alice", "task-a")

	for _, n := range []ContributionNode{stale, fresh} {
		if err := l.AddNode(n); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if evicted := l.EvictOlderThan(24 * time.Hour); evicted != 1 {
		t.Errorf("evicted %d, want 1", evicted)
	}
	remaining := l.NodesByContributor("alice")
	if len(remaining) != 1 || remaining[0].ID != "fresh" {
		t.Errorf("got %v, want only fresh", remaining)
	}
}
