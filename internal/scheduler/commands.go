package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"RSITracker/internal/watchlist"
)

// HandleCommand processes a remote user command and returns a reply.
// Mutations are local to the watchlist; failures never affect other
// symbols.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}

	switch fields[0] {
	case "/list":
		symbols := s.watch.List()
		if len(symbols) == 0 {
			return "Watchlist is empty."
		}
		return fmt.Sprintf("Tracking %d symbols:\n%s", len(symbols), strings.Join(symbols, "\n"))

	case "/add":
		if len(fields) < 2 {
			return "Usage: /add SYMBOL"
		}
		symbol := strings.ToUpper(fields[1])
		if err := s.watch.Add(symbol); err != nil {
			if errors.Is(err, watchlist.ErrDuplicateSymbol) {
				return fmt.Sprintf("%s is already in the watchlist.", symbol)
			}
			return fmt.Sprintf("Could not add %s: %v", symbol, err)
		}
		s.RefreshSymbol(context.Background(), symbol)
		return fmt.Sprintf("Added %s.", symbol)

	case "/remove":
		if len(fields) < 2 {
			return "Usage: /remove SYMBOL"
		}
		symbol := strings.ToUpper(fields[1])
		if err := s.watch.Remove(symbol); err != nil {
			if errors.Is(err, watchlist.ErrNotFound) {
				return fmt.Sprintf("%s is not in the watchlist.", symbol)
			}
			return fmt.Sprintf("Could not remove %s: %v", symbol, err)
		}
		return fmt.Sprintf("Removed %s.", symbol)

	case "/refresh":
		s.RefreshAll(context.Background())
		return "Refreshing all symbols..."

	case "/status":
		return fmt.Sprintf("Scheduler: %s, tracking %d symbols.", s.State(), s.watch.Len())

	default:
		return helpText
	}
}

const helpText = "Commands:\n/list - show watchlist\n/add SYMBOL - track a symbol\n/remove SYMBOL - stop tracking\n/refresh - refresh all now\n/status - scheduler state"
