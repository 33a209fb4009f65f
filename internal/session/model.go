package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/aurodavid1986/ordering-app/internal/order"
)

// Session is one customer's wizard, alive for as long as they keep using it.
type Session struct {
	ID        string
	Flow      *order.Flow
	CreatedAt time.Time

	// mu serialises every operation on Flow.
	mu       sync.Mutex
	lastSeen atomic.Int64
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}
