package settlement

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// #region errors

var (
	// ErrValidation covers malformed request fields. The request is
	// rejected before any transfer is attempted.
	ErrValidation = errors.New("validation error")

	// ErrUnknownMode is returned for an unrecognized settlement mode.
	ErrUnknownMode = errors.New("unknown settlement mode")
)

// #endregion errors

// #region engine

// Engine computes role-weighted payout distributions and executes them
// over the escrow transport. Per-leg failures are accumulated, never
// fatal to the batch: callers always receive a best-effort
// PaymentRecord. Settlements for the same task are serialized.
type Engine struct {
	cfg       Config
	transport Transport
	resolver  AddressResolver
	log       logrus.FieldLogger

	mu        sync.RWMutex
	taskLocks map[string]*sync.Mutex
	wallets   map[string][]ContributorWallet // taskID -> resolved wallets
}

// NewEngine constructs a settlement engine. The logger may be nil, in
// which case logging is discarded.
func NewEngine(cfg Config, transport Transport, resolver AddressResolver, log logrus.FieldLogger) (*Engine, error) {
	if cfg.WorkerSharePercent+cfg.ReviewerSharePercent+cfg.PlatformSharePercent != 100 {
		return nil, fmt.Errorf("role shares must sum to 100, got %d/%d/%d",
			cfg.WorkerSharePercent, cfg.ReviewerSharePercent, cfg.PlatformSharePercent)
	}
	if log == nil {
		quiet := logrus.New()
		quiet.SetLevel(logrus.PanicLevel)
		log = quiet
	}
	return &Engine{
		cfg:       cfg,
		transport: transport,
		resolver:  resolver,
		log:       log,
		taskLocks: make(map[string]*sync.Mutex),
		wallets:   make(map[string][]ContributorWallet),
	}, nil
}

// taskLock returns the mutex serializing settlements for one task.
func (e *Engine) taskLock(taskID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	m, ok := e.taskLocks[taskID]
	if !ok {
		m = &sync.Mutex{}
		e.taskLocks[taskID] = m
	}
	return m
}

// #endregion engine

// #region calculate-distribution

// CalculateDistribution splits the total across roles: the worker pool
// is WorkerSharePercent of the total divided equally among workers, the
// reviewer pool likewise, and the platform retains the remainder of the
// role split (never transferred). Integer division truncates; the
// truncated residual is surfaced on the distribution rather than folded
// into any share, so entries + fee + residual always equal the total.
func (e *Engine) CalculateDistribution(total int64, workerIDs, reviewerIDs []string) (Distribution, error) {
	if total <= 0 {
		return Distribution{}, fmt.Errorf("%w: amount must be positive, got %d", ErrValidation, total)
	}
	if len(workerIDs) == 0 {
		return Distribution{}, fmt.Errorf("%w: at least one worker is required", ErrValidation)
	}
	if len(reviewerIDs) == 0 {
		return Distribution{}, fmt.Errorf("%w: at least one reviewer is required", ErrValidation)
	}

	workerPool := total * e.cfg.WorkerSharePercent / 100
	reviewerPool := total * e.cfg.ReviewerSharePercent / 100
	platformFee := total - workerPool - reviewerPool

	perWorker := workerPool / int64(len(workerIDs))
	perReviewer := reviewerPool / int64(len(reviewerIDs))
	residual := workerPool - perWorker*int64(len(workerIDs)) +
		reviewerPool - perReviewer*int64(len(reviewerIDs))

	dist := Distribution{
		TotalMinorUnits:       total,
		PlatformFeeMinorUnits: platformFee,
		ResidualMinorUnits:    residual,
	}

	for _, id := range workerIDs {
		entry, err := e.entryFor(id, RoleWorker, perWorker, total)
		if err != nil {
			return Distribution{}, err
		}
		dist.Entries = append(dist.Entries, entry)
	}
	for _, id := range reviewerIDs {
		entry, err := e.entryFor(id, RoleReviewer, perReviewer, total)
		if err != nil {
			return Distribution{}, err
		}
		dist.Entries = append(dist.Entries, entry)
	}
	return dist, nil
}

func (e *Engine) entryFor(contributorID string, role Role, amount, total int64) (Entry, error) {
	addr, err := e.resolver.ResolveAddress(contributorID)
	if err != nil {
		return Entry{}, fmt.Errorf("resolve address for %s: %w", contributorID, err)
	}
	return Entry{
		ContributorID:    contributorID,
		WalletAddress:    addr,
		Role:             role,
		AmountMinorUnits: amount,
		SharePercent:     math.Round(float64(amount)/float64(total)*10000) / 100,
	}, nil
}

// #endregion calculate-distribution

// #region execute

// ExecuteSettlement runs the distribution in the given mode and returns
// the reconciled payment record. Success means at least one transfer
// completed; per-leg failures are listed in Errors alongside whatever
// succeeded.
func (e *Engine) ExecuteSettlement(ctx context.Context, taskID string, dist Distribution, mode Mode, proofs []TransferProof) (PaymentRecord, error) {
	lock := e.taskLock(taskID)
	lock.Lock()
	defer lock.Unlock()

	record := PaymentRecord{
		PaymentID:             uuid.New().String(),
		TaskID:                taskID,
		Mode:                  mode,
		PlatformFeeMinorUnits: dist.PlatformFeeMinorUnits,
		ResidualMinorUnits:    dist.ResidualMinorUnits,
		CreatedAt:             time.Now().UTC(),
	}

	switch mode {
	case ModeSingleCustodyBatch:
		e.executeBatch(ctx, dist, &record)
	case ModePerContributorTransfer:
		e.executeTransfers(ctx, dist, &record)
	case ModeExternallyPreExecuted:
		e.recordPreExecuted(dist, proofs, &record)
	default:
		return PaymentRecord{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	record.Success = record.TransactionCount > 0
	e.log.WithFields(logrus.Fields{
		"task":        taskID,
		"payment":     record.PaymentID,
		"mode":        mode,
		"completed":   record.TransactionCount,
		"distributed": record.TotalDistributedMinorUnits,
		"errors":      len(record.Errors),
	}).Info("settlement finished")
	return record, nil
}

// executeBatch moves the full amount to custody with one
// approve-authorize-capture escrow flow. The per-contributor split is
// bookkeeping: every entry is recorded against the capture transaction.
func (e *Engine) executeBatch(ctx context.Context, dist Distribution, record *PaymentRecord) {
	paymentInfo := record.TaskID

	if _, err := e.callWithTimeout(ctx, func(c context.Context) (string, error) {
		return e.transport.Approve(c, e.cfg.CustodyAddress, dist.TotalMinorUnits)
	}); err != nil {
		record.Errors = append(record.Errors, fmt.Sprintf("escrow approve: %v", err))
		e.markAllFailed(dist, record)
		return
	}
	if _, err := e.callWithTimeout(ctx, func(c context.Context) (string, error) {
		return e.transport.Authorize(c, paymentInfo, dist.TotalMinorUnits)
	}); err != nil {
		record.Errors = append(record.Errors, fmt.Sprintf("escrow authorize: %v", err))
		e.markAllFailed(dist, record)
		return
	}

	feeInfo := fmt.Sprintf("platform-fee:%d", dist.PlatformFeeMinorUnits)
	captureID, err := e.callWithTimeout(ctx, func(c context.Context) (string, error) {
		return e.transport.Capture(c, paymentInfo, dist.TotalMinorUnits, feeInfo)
	})
	if err != nil {
		record.Errors = append(record.Errors, fmt.Sprintf("escrow capture: %v", err))
		e.markAllFailed(dist, record)
		return
	}

	for _, entry := range dist.Entries {
		record.Entries = append(record.Entries, SettledEntry{
			Entry:         entry,
			TransactionID: captureID,
			Completed:     true,
		})
	}
	record.TransactionIDs = append(record.TransactionIDs, captureID)
	record.TransactionCount = 1
	record.TotalDistributedMinorUnits = dist.TransferredTotal()
}

// executeTransfers runs one transfer per entry, strictly sequentially:
// entry order is execution order, and each leg's confirmation is awaited
// before the next leg starts. A failed leg is recorded and execution
// continues; completed legs are never rolled back. Cancellation is
// honored between legs, never mid-leg.
func (e *Engine) executeTransfers(ctx context.Context, dist Distribution, record *PaymentRecord) {
	if _, err := e.callWithTimeout(ctx, func(c context.Context) (string, error) {
		return e.transport.PreApprove(c, record.TaskID)
	}); err != nil {
		record.Errors = append(record.Errors, fmt.Sprintf("escrow pre-approve: %v", err))
		e.markAllFailed(dist, record)
		return
	}

	for i, entry := range dist.Entries {
		if err := ctx.Err(); err != nil {
			record.Errors = append(record.Errors, fmt.Sprintf("settlement aborted before entry %d (%s): %v", i, entry.ContributorID, err))
			for _, rest := range dist.Entries[i:] {
				record.Entries = append(record.Entries, SettledEntry{Entry: rest})
			}
			return
		}

		txID, err := e.transferWithRetry(ctx, entry)
		if err != nil {
			record.Errors = append(record.Errors, fmt.Sprintf("transfer to %s (%s): %v", entry.ContributorID, entry.WalletAddress, err))
			record.Entries = append(record.Entries, SettledEntry{Entry: entry})
			e.log.WithFields(logrus.Fields{
				"task":        record.TaskID,
				"contributor": entry.ContributorID,
				"amount":      entry.AmountMinorUnits,
			}).WithError(err).Warn("transfer leg failed")
			continue
		}

		record.Entries = append(record.Entries, SettledEntry{
			Entry:         entry,
			TransactionID: txID,
			Completed:     true,
		})
		record.TransactionIDs = append(record.TransactionIDs, txID)
		record.TransactionCount++
		record.TotalDistributedMinorUnits += entry.AmountMinorUnits
	}
}

// recordPreExecuted matches caller-supplied transfer proofs against the
// expected distribution, recording valid entries and flagging a total
// mismatch as a non-fatal error.
func (e *Engine) recordPreExecuted(dist Distribution, proofs []TransferProof, record *PaymentRecord) {
	byRecipient := make(map[string]TransferProof, len(proofs))
	var suppliedTotal int64
	for _, p := range proofs {
		byRecipient[p.Recipient] = p
		suppliedTotal += p.AmountMinorUnits
	}

	for _, entry := range dist.Entries {
		proof, ok := byRecipient[entry.WalletAddress]
		if !ok {
			record.Errors = append(record.Errors, fmt.Sprintf("no transfer proof for %s (%s)", entry.ContributorID, entry.WalletAddress))
			record.Entries = append(record.Entries, SettledEntry{Entry: entry})
			continue
		}
		record.Entries = append(record.Entries, SettledEntry{
			Entry:         entry,
			TransactionID: proof.TransactionID,
			Completed:     true,
		})
		record.TransactionIDs = append(record.TransactionIDs, proof.TransactionID)
		record.TransactionCount++
		record.TotalDistributedMinorUnits += proof.AmountMinorUnits
	}

	if expected := dist.TransferredTotal(); suppliedTotal != expected {
		record.Errors = append(record.Errors, fmt.Sprintf("reconciliation mismatch: supplied total %d, expected %d", suppliedTotal, expected))
	}
}

// markAllFailed records every entry as incomplete after an escrow-level
// failure that prevented any leg from running.
func (e *Engine) markAllFailed(dist Distribution, record *PaymentRecord) {
	for _, entry := range dist.Entries {
		record.Entries = append(record.Entries, SettledEntry{Entry: entry})
	}
}

// #endregion execute

// #region handle-request

// HandleRequest validates a settlement request, computes the
// distribution, executes it and returns the API response. Validation
// failures reject the call before any transfer.
func (e *Engine) HandleRequest(ctx context.Context, req Request) (Response, error) {
	if err := validateRequest(req); err != nil {
		return Response{}, err
	}

	dist, err := e.CalculateDistribution(req.AmountMinorUnits, req.WorkerIDs, req.ReviewerIDs)
	if err != nil {
		return Response{}, err
	}

	e.rememberWallets(req.TaskID, dist)

	record, err := e.ExecuteSettlement(ctx, req.TaskID, dist, req.Mode, req.PreExecutedTransfers)
	if err != nil {
		return Response{}, err
	}

	return Response{
		Success:   record.Success,
		PaymentID: record.PaymentID,
		Payment:   record,
	}, nil
}

func validateRequest(req Request) error {
	switch {
	case req.TaskID == "":
		return fmt.Errorf("%w: task id is required", ErrValidation)
	case req.UserAddress == "":
		return fmt.Errorf("%w: user address is required", ErrValidation)
	case req.AmountMinorUnits <= 0:
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	case len(req.WorkerIDs) == 0:
		return fmt.Errorf("%w: worker ids are required", ErrValidation)
	case len(req.ReviewerIDs) == 0:
		return fmt.Errorf("%w: reviewer ids are required", ErrValidation)
	}
	switch req.Mode {
	case ModeSingleCustodyBatch, ModePerContributorTransfer:
	case ModeExternallyPreExecuted:
		if len(req.PreExecutedTransfers) == 0 {
			return fmt.Errorf("%w: pre-executed mode requires transfer proofs", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
	}
	return nil
}

// TaskStatus answers the status query for a task whose settlement has
// been requested through this engine.
func (e *Engine) TaskStatus(taskID string) Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Status{
		TaskID:             taskID,
		ContributorWallets: append([]ContributorWallet(nil), e.wallets[taskID]...),
	}
}

func (e *Engine) rememberWallets(taskID string, dist Distribution) {
	wallets := make([]ContributorWallet, 0, len(dist.Entries))
	for _, entry := range dist.Entries {
		wallets = append(wallets, ContributorWallet{
			ContributorID: entry.ContributorID,
			WalletAddress: entry.WalletAddress,
		})
	}
	e.mu.Lock()
	e.wallets[taskID] = wallets
	e.mu.Unlock()
}

// #endregion handle-request
