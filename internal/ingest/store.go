package ingest

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"kolosaldash/internal/domain"
)

// Store keeps ingestion runs in memory. Runs untouched for longer than the
// TTL are dropped by Sweep.
type Store struct {
	mu   sync.RWMutex
	runs map[string]*Run
	ttl  time.Duration
}

// NewStore creates an empty Store.
func NewStore(ttl time.Duration) *Store {
	return &Store{runs: make(map[string]*Run), ttl: ttl}
}

// Create registers a new idle run.
func (s *Store) Create() *Run {
	run := NewRun(uuid.New().String())
	s.mu.Lock()
	s.runs[run.ID()] = run
	s.mu.Unlock()
	return run
}

// Get returns the run with the given id.
func (s *Store) Get(id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return run, nil
}

// Delete discards a run. A run with a call in flight cannot be discarded.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	if !ok {
		return domain.ErrRunNotFound
	}
	if _, busy := run.idleSince(); busy {
		return domain.ErrRunBusy
	}
	delete(s.runs, id)
	return nil
}

// Len returns the number of live runs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

// Sweep drops runs last touched before now minus the TTL and returns how many
// were removed. Runs with a call in flight are kept.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, run := range s.runs {
		updated, busy := run.idleSince()
		if busy || !updated.Before(cutoff) {
			continue
		}
		delete(s.runs, id)
		removed++
	}
	return removed
}

// StartSweeper sweeps expired runs every interval until ctx is canceled.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.ttl <= 0 {
		log.Printf("ingest.Store: sweeper disabled (interval=%s, ttl=%s)", interval, s.ttl)
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("ingest.Store: sweeper started (interval=%s, ttl=%s)", interval, s.ttl)
	for {
		select {
		case <-ctx.Done():
			log.Printf("ingest.Store: sweeper stopped")
			return
		case now := <-ticker.C:
			if n := s.Sweep(now); n > 0 {
				log.Printf("ingest.Store: dropped %d expired runs", n)
			}
		}
	}
}
