package settlement

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestTransferWithRetry_FlakyLegRecovers(t *testing.T) {
	transport := &fakeTransport{failuresLeft: map[string]int{"addr-worker-1": 2}}
	cfg := fastConfig()
	cfg.MaxRetries = 2
	e := newTestEngine(t, cfg, transport)

	dist, _ := e.CalculateDistribution(1000, ids("worker", 1), ids("reviewer", 1))
	record, err := e.ExecuteSettlement(context.Background(), "task-1", dist, ModePerContributorTransfer, nil)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(record.Errors) != 0 {
		t.Errorf("recovered leg must not report errors: %v", record.Errors)
	}
	if record.TransactionCount != 2 {
		t.Errorf("transaction count: got %d, want 2", record.TransactionCount)
	}
	// First attempt + 2 retries for the worker, one for the reviewer.
	if transport.transferCalls != 4 {
		t.Errorf("transfer calls: got %d, want 4", transport.transferCalls)
	}
}

func TestTransferWithRetry_GivesUpAfterMaxRetries(t *testing.T) {
	transport := &fakeTransport{failRecipients: map[string]bool{"addr-worker-1": true}}
	cfg := fastConfig()
	cfg.MaxRetries = 1
	e := newTestEngine(t, cfg, transport)

	dist, _ := e.CalculateDistribution(1000, ids("worker", 1), ids("reviewer", 1))
	record, err := e.ExecuteSettlement(context.Background(), "task-1", dist, ModePerContributorTransfer, nil)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(record.Errors) != 1 || !strings.Contains(record.Errors[0], "after 2 attempts") {
		t.Errorf("errors: %v", record.Errors)
	}
	if record.TransactionCount != 1 {
		t.Errorf("transaction count: got %d, want 1", record.TransactionCount)
	}
}

func TestTransferWithRetry_BackoffHonorsCancellation(t *testing.T) {
	transport := &fakeTransport{failRecipients: map[string]bool{"addr-worker-1": true}}
	cfg := fastConfig()
	cfg.MaxRetries = 5
	cfg.RetryBackoff = time.Hour // a retry wait would hang without cancellation
	e := newTestEngine(t, cfg, transport)

	ctx, cancel := context.WithCancel(context.Background())
	dist, _ := e.CalculateDistribution(1000, ids("worker", 1), ids("reviewer", 1))

	done := make(chan PaymentRecord, 1)
	go func() {
		record, _ := e.ExecuteSettlement(ctx, "task-1", dist, ModePerContributorTransfer, nil)
		done <- record
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case record := <-done:
		if transport.transferCalls != 1 {
			t.Errorf("transfer calls: got %d, want 1", transport.transferCalls)
		}
		if len(record.Errors) == 0 {
			t.Error("aborted settlement must record the failure")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("settlement did not abort during retry backoff")
	}
}
