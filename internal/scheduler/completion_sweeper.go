package scheduler

import (
	"context"
	"log"
	"time"
)

type bookingCompleter interface {
	CompleteExpired(ctx context.Context) (int64, error)
}

// CompletionSweeper periodically flips confirmed bookings whose checkout
// has passed to completed.
type CompletionSweeper struct {
	bookings bookingCompleter
	interval time.Duration
}

func NewCompletionSweeper(bookings bookingCompleter, interval time.Duration) *CompletionSweeper {
	return &CompletionSweeper{bookings: bookings, interval: interval}
}

// Start runs the sweep loop until ctx is cancelled. One sweep runs
// immediately so a restart does not wait a full interval.
func (s *CompletionSweeper) Start(ctx context.Context) {
	go func() {
		s.sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("completion sweeper stopped")
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *CompletionSweeper) sweep(ctx context.Context) {
	n, err := s.bookings.CompleteExpired(ctx)
	if err != nil {
		log.Printf("completion_sweep error=%v", err)
		return
	}
	if n > 0 {
		log.Printf("completion_sweep completed=%d", n)
	}
}
