package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/learnsync/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println("Delivering queued changes to the server...")

	result, err := c.sync.Sync(ctx)
	if err != nil {
		if errors.Is(err, sync.ErrOffline) {
			return fmt.Errorf("server is unreachable, changes stay queued: %w", err)
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization pass finished")
	c.io.Println()
	c.io.Printf("Delivered:        %d\n", result.Processed)
	if result.Failed > 0 {
		c.io.Printf("Failed (retry):   %d\n", result.Failed)
	}
	if result.Deferred > 0 {
		c.io.Printf("Deferred:         %d\n", result.Deferred)
	}
	if result.Dropped > 0 {
		c.io.Printf("Dropped:          %d\n", result.Dropped)
	}
	c.io.Printf("Still queued:     %d\n", result.Remaining)
	return nil
}
