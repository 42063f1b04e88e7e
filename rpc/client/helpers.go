package client

import (
	"context"
	"time"
)

const WaitThreshold = 10

// Waiter is informed of the number of blocks still missing and decides whether
// to quit early.
type Waiter func(delta int64) (abort error)

// DefaultWaitStrategy is the standard backoff algorithm,
// but you can plug in another one.
func DefaultWaitStrategy(delta int64) (abort error) {
	if delta > WaitThreshold {
		return ErrWaitThreshold{Got: delta, Expected: WaitThreshold}
	} else if delta > 0 {
		// a block is usually confirmed within a second
		delay := time.Duration(delta-1)*time.Second + 500*time.Millisecond
		time.Sleep(delay)
	}
	return nil
}

// WaitForBlockCount polls account_block_count at reasonable intervals until
// the account chain holds at least n blocks.
//
// If waiter is nil, we use DefaultWaitStrategy, but you can also
// provide your own implementation.
func WaitForBlockCount(ctx context.Context, c AccountsClient, account string, n int64, waiter Waiter) error {
	if waiter == nil {
		waiter = DefaultWaitStrategy
	}
	delta := int64(1)
	for delta > 0 {
		res, err := c.AccountBlockCount(ctx, account)
		if err != nil {
			return err
		}
		// delta might be negative if the chain already grew past n
		delta = n - res.BlockCount
		// wait for the time, or abort early
		if err := waiter(delta); err != nil {
			return err
		}
		if delta > 0 && ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return nil
}
