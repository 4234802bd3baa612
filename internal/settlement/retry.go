package settlement

import (
	"context"
	"fmt"
	"time"
)

// #region call-with-timeout

// callWithTimeout bounds one escrow call with the configured transfer
// timeout so a stalled confirmation cannot block the rest of the batch.
func (e *Engine) callWithTimeout(ctx context.Context, call func(context.Context) (string, error)) (string, error) {
	if e.cfg.TransferTimeout <= 0 {
		return call(ctx)
	}
	legCtx, cancel := context.WithTimeout(ctx, e.cfg.TransferTimeout)
	defer cancel()

	txID, err := call(legCtx)
	if err != nil && legCtx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("confirmation wait exceeded %s: %w", e.cfg.TransferTimeout, err)
	}
	return txID, err
}

// #endregion call-with-timeout

// #region transfer-with-retry

// transferWithRetry attempts one entry's transfer up to MaxRetries+1
// times, each attempt bounded by the transfer timeout, with doubling
// backoff between attempts. The outer context aborts further attempts
// but never an attempt in flight.
func (e *Engine) transferWithRetry(ctx context.Context, entry Entry) (string, error) {
	backoff := e.cfg.RetryBackoff
	var lastErr error

	for attempt := 0; attempt <= e.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("retry aborted: %w", ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		txID, err := e.callWithTimeout(ctx, func(c context.Context) (string, error) {
			return e.transport.Transfer(c, entry.WalletAddress, entry.AmountMinorUnits)
		})
		if err == nil {
			return txID, nil
		}
		lastErr = err

		// The caller cancelled; further attempts are pointless.
		if ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("after %d attempts: %w", e.cfg.MaxRetries+1, lastErr)
}

// #endregion transfer-with-retry
