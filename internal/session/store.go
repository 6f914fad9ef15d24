// Package session holds the server-side state of the web application: one
// send-money wizard per browser session, kept in memory with an idle TTL.
// Auth state itself lives in cookies (an opaque bearer token plus the user
// profile blob); only the wizard needs a server-side home because its step
// machine and idempotency key must survive page navigation.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Aryanshah010/payhive-web-application/internal/sendmoney"
)

// entry pairs a wizard with its last-touched time for expiry
type entry struct {
	wizard   *sendmoney.Wizard
	lastSeen time.Time
}

// Store keeps per-session wizards and sweeps expired ones in the background
type Store struct {
	logger     *slog.Logger
	newWizard  func() *sendmoney.Wizard
	ttl        time.Duration
	mu         sync.Mutex
	entries    map[string]*entry
	sweepStop  chan struct{}
	sweepDone  chan struct{}
	sweepEvery time.Duration
}

// NewStore creates a session store. newWizard builds a fresh wizard for a
// session that does not have one yet.
func NewStore(logger *slog.Logger, newWizard func() *sendmoney.Wizard, ttl, sweepEvery time.Duration) *Store {
	return &Store{
		logger:     logger,
		newWizard:  newWizard,
		ttl:        ttl,
		entries:    make(map[string]*entry),
		sweepStop:  make(chan struct{}),
		sweepDone:  make(chan struct{}),
		sweepEvery: sweepEvery,
	}
}

// NewSessionID mints an opaque session identifier for the session cookie
func NewSessionID() string {
	return uuid.New().String()
}

// GetOrCreate returns the session's wizard, creating one lazily, and
// refreshes the session's idle timer
func (s *Store) GetOrCreate(sessionID string) *sendmoney.Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		e = &entry{wizard: s.newWizard()}
		s.entries[sessionID] = e
	}
	e.lastSeen = time.Now()
	return e.wizard
}

// Delete removes a session's wizard, e.g. on logout
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}

// Len reports the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Start launches the background sweeper. Stop must be called on shutdown.
func (s *Store) Start() {
	go func() {
		defer close(s.sweepDone)
		ticker := time.NewTicker(s.sweepEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep(time.Now())
			case <-s.sweepStop:
				return
			}
		}
	}()
}

// Stop terminates the background sweeper and waits for it to exit
func (s *Store) Stop() {
	close(s.sweepStop)
	<-s.sweepDone
}

// sweep drops sessions idle past the TTL
func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, id)
			expired++
		}
	}
	if expired > 0 {
		s.logger.Info("Expired idle wizard sessions", "count", expired, "remaining", len(s.entries))
	}
}
