package session

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Repository defines where live sessions are kept.
// Service depends ONLY on this interface.
type Repository interface {
	Save(s *Session) error
	Get(id string) (*Session, error)
	Delete(id string) error
	// Sweep drops sessions last used before cutoff and reports how many went.
	Sweep(cutoff time.Time) int
	Count() int
}
