package settlement

import (
	"context"
	"time"
)

// #region mode

// Mode selects how a settlement is executed.
type Mode string

const (
	// ModeSingleCustodyBatch moves the full amount to custody with one
	// authorize-then-capture escrow flow; the per-contributor split is
	// bookkeeping only.
	ModeSingleCustodyBatch Mode = "single-custody-batch"

	// ModePerContributorTransfer executes one transfer per distribution
	// entry, sequentially, waiting for each confirmation.
	ModePerContributorTransfer Mode = "per-contributor-transfer"

	// ModeExternallyPreExecuted records transfer proofs supplied by the
	// caller and reconciles them against the expected distribution.
	ModeExternallyPreExecuted Mode = "externally-pre-executed"
)

// #endregion mode

// #region role

// Role distinguishes the contributor pools in a distribution.
type Role string

const (
	RoleWorker   Role = "worker"
	RoleReviewer Role = "reviewer"
)

// #endregion role

// #region distribution

// Entry is one contributor's share of a settlement.
type Entry struct {
	ContributorID    string  `json:"contributor_id"`
	WalletAddress    string  `json:"wallet_address"`
	Role             Role    `json:"role"`
	AmountMinorUnits int64   `json:"amount_minor_units"`
	SharePercent     float64 `json:"share_percent"`
}

// Distribution is the computed payout split for one settlement. All
// arithmetic is in integer minor units; ResidualMinorUnits carries the
// integer-division truncation that belongs to no share and is
// deliberately not redistributed.
type Distribution struct {
	TotalMinorUnits       int64   `json:"total_minor_units"`
	PlatformFeeMinorUnits int64   `json:"platform_fee_minor_units"`
	ResidualMinorUnits    int64   `json:"residual_minor_units"`
	Entries               []Entry `json:"entries"`
}

// TransferredTotal sums the entry amounts (excludes fee and residual).
func (d Distribution) TransferredTotal() int64 {
	var sum int64
	for _, e := range d.Entries {
		sum += e.AmountMinorUnits
	}
	return sum
}

// #endregion distribution

// #region transfer-proof

// TransferProof is a caller-supplied record of an already-completed
// transfer, used in externally-pre-executed mode.
type TransferProof struct {
	TransactionID    string `json:"transaction_id"`
	Recipient        string `json:"recipient"`
	AmountMinorUnits int64  `json:"amount_minor_units"`
}

// #endregion transfer-proof

// #region payment-record

// SettledEntry is a distribution entry plus its execution outcome.
type SettledEntry struct {
	Entry
	TransactionID string `json:"transaction_id,omitempty"`
	Completed     bool   `json:"completed"`
}

// PaymentRecord is the reconciled result of one settlement call. It is
// best-effort: per-leg failures appear in Errors while completed legs
// are still reported. Treated as immutable once returned.
type PaymentRecord struct {
	PaymentID                  string         `json:"payment_id"`
	TaskID                     string         `json:"task_id"`
	Mode                       Mode           `json:"mode"`
	Entries                    []SettledEntry `json:"entries"`
	TransactionIDs             []string       `json:"transaction_ids,omitempty"`
	TransactionCount           int            `json:"transaction_count"`
	TotalDistributedMinorUnits int64          `json:"total_distributed_minor_units"`
	PlatformFeeMinorUnits      int64          `json:"platform_fee_minor_units"`
	ResidualMinorUnits         int64          `json:"residual_minor_units"`
	Success                    bool           `json:"success"`
	Errors                     []string       `json:"errors,omitempty"`
	CreatedAt                  time.Time      `json:"created_at"`
}

// #endregion payment-record

// #region request-response

// Request is the settlement request consumed from the API layer.
type Request struct {
	TaskID               string          `json:"task_id"`
	UserAddress          string          `json:"user_address"`
	AmountMinorUnits     int64           `json:"amount_minor_units"`
	WorkerIDs            []string        `json:"worker_ids"`
	ReviewerIDs          []string        `json:"reviewer_ids"`
	Mode                 Mode            `json:"mode"`
	PreExecutedTransfers []TransferProof `json:"pre_executed_transfers,omitempty"`
}

// Response is returned to the API layer.
type Response struct {
	Success   bool          `json:"success"`
	PaymentID string        `json:"payment_id"`
	Payment   PaymentRecord `json:"payment"`
}

// ContributorWallet pairs a contributor with their settlement address.
type ContributorWallet struct {
	ContributorID string `json:"contributor_id"`
	WalletAddress string `json:"wallet_address"`
}

// Status answers a task status query.
type Status struct {
	TaskID             string              `json:"task_id"`
	ContributorWallets []ContributorWallet `json:"contributor_wallets,omitempty"`
}

// #endregion request-response

// #region transport

// Transport is the external escrow/transfer capability. Every method is
// an awaited remote call that returns a transaction identifier once the
// transfer is confirmed on chain.
type Transport interface {
	Approve(ctx context.Context, spender string, amount int64) (string, error)
	PreApprove(ctx context.Context, paymentInfo string) (string, error)
	Authorize(ctx context.Context, paymentInfo string, amount int64) (string, error)
	Capture(ctx context.Context, paymentInfo string, amount int64, feeInfo string) (string, error)
	Transfer(ctx context.Context, to string, amount int64) (string, error)
}

// AddressResolver maps contributors to their stable settlement address.
type AddressResolver interface {
	ResolveAddress(contributorID string) (string, error)
}

// #endregion transport

// #region config

// Config holds the engine's role shares and transfer policy. Shares are
// whole percentages and must sum to 100.
type Config struct {
	WorkerSharePercent   int64
	ReviewerSharePercent int64
	PlatformSharePercent int64

	CustodyAddress string // spender for the batch escrow approval

	TransferTimeout time.Duration // bound on each leg's confirmation wait
	MaxRetries      int           // retries per leg after the first attempt
	RetryBackoff    time.Duration // base backoff, doubled per retry
}

// DefaultConfig returns the standard 70/25/5 split and transfer policy.
func DefaultConfig() Config {
	return Config{
		WorkerSharePercent:   70,
		ReviewerSharePercent: 25,
		PlatformSharePercent: 5,
		TransferTimeout:      30 * time.Second,
		MaxRetries:           2,
		RetryBackoff:         500 * time.Millisecond,
	}
}

// #endregion config
