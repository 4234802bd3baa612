package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ChaosChain/fin-studio-sub002/internal/consensus"
	"github.com/ChaosChain/fin-studio-sub002/internal/reputation"
	"github.com/ChaosChain/fin-studio-sub002/internal/settlement"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func samplePayment(paymentID, taskID string, created time.Time) settlement.PaymentRecord {
	return settlement.PaymentRecord{
		PaymentID: paymentID,
		TaskID:    taskID,
		Mode:      settlement.ModePerContributorTransfer,
		Entries: []settlement.SettledEntry{
			{
				Entry: settlement.Entry{
					ContributorID:    "worker-1",
					WalletAddress:    "addr-worker-1",
					Role:             settlement.RoleWorker,
					AmountMinorUnits: 175_000,
					SharePercent:     17.5,
				},
				TransactionID: "tx-1",
				Completed:     true,
			},
			{
				Entry: settlement.Entry{
					ContributorID:    "worker-2",
					WalletAddress:    "addr-worker-2",
					Role:             settlement.RoleWorker,
					AmountMinorUnits: 175_000,
					SharePercent:     17.5,
				},
			},
		},
		TransactionIDs:             []string{"tx-1"},
		TransactionCount:           1,
		TotalDistributedMinorUnits: 175_000,
		PlatformFeeMinorUnits:      50_000,
		Success:                    true,
		Errors:                     []string{"transfer to worker-2: escrow rejected transfer"},
		CreatedAt:                  created,
	}
}

func TestSaveAndLoadPayment(t *testing.T) {
	store := newTestStore(t)

	saved := samplePayment("pay-1", "task-1", time.Now().UTC())
	require.NoError(t, store.SavePayment(saved))

	loaded, err := store.PaymentByTask("task-1")
	require.NoError(t, err)

	require.Equal(t, saved.PaymentID, loaded.PaymentID)
	require.Equal(t, saved.Mode, loaded.Mode)
	require.True(t, loaded.Success)
	require.Equal(t, 1, loaded.TransactionCount)
	require.Equal(t, int64(175_000), loaded.TotalDistributedMinorUnits)
	require.Equal(t, int64(50_000), loaded.PlatformFeeMinorUnits)
	require.Len(t, loaded.Entries, 2)
	require.Equal(t, "tx-1", loaded.Entries[0].TransactionID)
	require.False(t, loaded.Entries[1].Completed)
	require.Equal(t, saved.Errors, loaded.Errors)
	require.Equal(t, []string{"tx-1"}, loaded.TransactionIDs)
}

func TestPaymentByTask_MostRecent(t *testing.T) {
	store := newTestStore(t)
	base := time.Now().UTC()

	require.NoError(t, store.SavePayment(samplePayment("pay-old", "task-1", base.Add(-time.Hour))))
	require.NoError(t, store.SavePayment(samplePayment("pay-new", "task-1", base)))

	loaded, err := store.PaymentByTask("task-1")
	require.NoError(t, err)
	require.Equal(t, "pay-new", loaded.PaymentID)
}

func TestPaymentByTask_Missing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.PaymentByTask("nope")
	require.Error(t, err)
}

func TestListPayments(t *testing.T) {
	store := newTestStore(t)
	base := time.Now().UTC()

	for i, task := range []string{"task-a", "task-b", "task-c"} {
		rec := samplePayment("pay-"+task, task, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.SavePayment(rec))
	}

	records, err := store.ListPayments(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "pay-task-c", records[0].PaymentID)
}

func TestReputationSnapshots(t *testing.T) {
	store := newTestStore(t)

	rep := reputation.ContributorReputation{
		ContributorID:   "alice",
		Name:            "Alice",
		AverageQuality:  consensus.DefaultQuality(),
		TotalTasks:      3,
		AcceptedTasks:   2,
		RejectedTasks:   1,
		ReputationScore: 0.62,
		SpecialtyTags:   []string{reputation.TagHighAccuracy},
	}
	require.NoError(t, store.SnapshotReputation(rep))

	rep.TotalTasks = 4
	rep.ReputationScore = 0.71
	require.NoError(t, store.SnapshotReputation(rep))

	history, err := store.ReputationHistory("alice", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Newest first.
	require.Equal(t, 0.71, history[0].ReputationScore)
	require.Equal(t, 0.62, history[1].ReputationScore)
	require.Equal(t, []string{reputation.TagHighAccuracy}, history[0].SpecialtyTags)

	empty, err := store.ReputationHistory("nobody", 10)
	require.NoError(t, err)
	require.Empty(t, empty)
}
