package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/learnsync/internal/client/interceptor"
)

func (c *Cli) runCache(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: learnsync cache status|clear|activate")
	}

	switch args[0] {
	case "status":
		st, err := c.cache.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to read cache status: %w", err)
		}
		c.io.Println("=== Response cache ===")
		c.io.Printf("Active generation:  %s\n", orNone(st.Active))
		c.io.Printf("Waiting generation: %s\n", orNone(st.Waiting))
		c.io.Printf("Generations:        %s\n", orNone(strings.Join(st.Generations, ", ")))
		c.io.Printf("Cached responses:   %d\n", st.Entries)
		c.io.Printf("App shell cached:   %t\n", st.ShellCached)
		return nil

	case "clear":
		if _, err := c.cache.Control(ctx, interceptor.Message{Type: interceptor.MsgClearCache}); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		c.io.Println("✓ Response cache cleared")
		return nil

	case "activate":
		// Новый процесс не хранит ожидающее поколение, поэтому установка и активация сразу
		gen, err := c.cache.Refresh(ctx)
		if err != nil {
			return fmt.Errorf("failed to refresh cache: %w", err)
		}
		c.io.Printf("✓ Cache generation %s is active\n", gen)
		return nil
	}
	return fmt.Errorf("unknown cache command: %s", args[0])
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
