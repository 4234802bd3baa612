package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ChaosChain/fin-studio-sub002/internal/reputation"
	"github.com/ChaosChain/fin-studio-sub002/internal/settlement"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS payments (
	payment_id         TEXT PRIMARY KEY,
	task_id            TEXT NOT NULL,
	mode               TEXT NOT NULL,
	success            INTEGER NOT NULL,
	transaction_count  INTEGER NOT NULL,
	total_distributed  INTEGER NOT NULL,
	platform_fee       INTEGER NOT NULL,
	residual           INTEGER NOT NULL,
	entries_json       TEXT NOT NULL,
	errors_json        TEXT,
	created_at         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_payments_task ON payments(task_id);

CREATE TABLE IF NOT EXISTS reputation_snapshots (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	contributor_id TEXT NOT NULL,
	score          REAL NOT NULL,
	record_json    TEXT NOT NULL,
	created_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_contributor ON reputation_snapshots(contributor_id);
`

// #endregion schema

// #region store

// Store is the durable history the rolling provenance ledger does not
// keep: payment records and reputation snapshots survive task switches
// and process restarts here.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region save-payment

// SavePayment persists a reconciled payment record.
func (s *Store) SavePayment(rec settlement.PaymentRecord) error {
	entriesJSON, err := json.Marshal(rec.Entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	var errorsJSON interface{}
	if len(rec.Errors) > 0 {
		b, err := json.Marshal(rec.Errors)
		if err != nil {
			return fmt.Errorf("marshal errors: %w", err)
		}
		errorsJSON = string(b)
	}

	_, err = s.db.Exec(
		`INSERT INTO payments (payment_id, task_id, mode, success, transaction_count, total_distributed, platform_fee, residual, entries_json, errors_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.PaymentID,
		rec.TaskID,
		string(rec.Mode),
		boolToInt(rec.Success),
		rec.TransactionCount,
		rec.TotalDistributedMinorUnits,
		rec.PlatformFeeMinorUnits,
		rec.ResidualMinorUnits,
		string(entriesJSON),
		errorsJSON,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// #endregion save-payment

// #region read-payments

// PaymentByTask returns the most recent payment record for a task.
func (s *Store) PaymentByTask(taskID string) (settlement.PaymentRecord, error) {
	row := s.db.QueryRow(
		`SELECT payment_id, task_id, mode, success, transaction_count, total_distributed, platform_fee, residual, entries_json, errors_json, created_at
		 FROM payments WHERE task_id = ? ORDER BY created_at DESC LIMIT 1`, taskID,
	)
	rec, err := scanPayment(row)
	if err != nil {
		return settlement.PaymentRecord{}, fmt.Errorf("payment for task %s: %w", taskID, err)
	}
	return rec, nil
}

// ListPayments returns the most recent payment records.
func (s *Store) ListPayments(limit int) ([]settlement.PaymentRecord, error) {
	rows, err := s.db.Query(
		`SELECT payment_id, task_id, mode, success, transaction_count, total_distributed, platform_fee, residual, entries_json, errors_json, created_at
		 FROM payments ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var records []settlement.PaymentRecord
	for rows.Next() {
		rec, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (settlement.PaymentRecord, error) {
	var rec settlement.PaymentRecord
	var mode string
	var success int
	var entriesJSON string
	var errorsJSON sql.NullString
	var createdStr string

	err := row.Scan(
		&rec.PaymentID, &rec.TaskID, &mode, &success, &rec.TransactionCount,
		&rec.TotalDistributedMinorUnits, &rec.PlatformFeeMinorUnits,
		&rec.ResidualMinorUnits, &entriesJSON, &errorsJSON, &createdStr,
	)
	if err != nil {
		return settlement.PaymentRecord{}, fmt.Errorf("scan payment: %w", err)
	}

	rec.Mode = settlement.Mode(mode)
	rec.Success = success != 0
	if err := json.Unmarshal([]byte(entriesJSON), &rec.Entries); err != nil {
		return settlement.PaymentRecord{}, fmt.Errorf("unmarshal entries: %w", err)
	}
	if errorsJSON.Valid {
		if err := json.Unmarshal([]byte(errorsJSON.String), &rec.Errors); err != nil {
			return settlement.PaymentRecord{}, fmt.Errorf("unmarshal errors: %w", err)
		}
	}
	for _, e := range rec.Entries {
		if e.Completed && e.TransactionID != "" {
			rec.TransactionIDs = append(rec.TransactionIDs, e.TransactionID)
		}
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

// #endregion read-payments

// #region reputation-snapshots

// SnapshotReputation persists a point-in-time copy of a contributor's
// reputation record.
func (s *Store) SnapshotReputation(rep reputation.ContributorReputation) error {
	recordJSON, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal reputation: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO reputation_snapshots (contributor_id, score, record_json, created_at)
		 VALUES (?, ?, ?, ?)`,
		rep.ContributorID,
		rep.ReputationScore,
		string(recordJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// ReputationHistory returns a contributor's snapshots, newest first.
func (s *Store) ReputationHistory(contributorID string, limit int) ([]reputation.ContributorReputation, error) {
	rows, err := s.db.Query(
		`SELECT record_json FROM reputation_snapshots
		 WHERE contributor_id = ? ORDER BY id DESC LIMIT ?`, contributorID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("reputation history: %w", err)
	}
	defer rows.Close()

	var history []reputation.ContributorReputation
	for rows.Next() {
		var recordJSON string
		if err := rows.Scan(&recordJSON); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		var rep reputation.ContributorReputation
		if err := json.Unmarshal([]byte(recordJSON), &rep); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot: %w", err)
		}
		history = append(history, rep)
	}
	return history, rows.Err()
}

// #endregion reputation-snapshots

// #region helpers

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
