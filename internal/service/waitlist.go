package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/huynhanx03/waitlist/internal/metrics"
	"github.com/huynhanx03/waitlist/pkg/datastructs/waitlist"
)

// Operation names used in logs and metrics.
const (
	OpAddFront = "add_front"
	OpAddEnd   = "add_end"
	OpRemove   = "remove"
	OpSnapshot = "snapshot"
)

// Waitlist serializes access to a single waitlist.Waitlist and records every
// operation. It is safe for concurrent use.
type Waitlist struct {
	mu      sync.Mutex
	queue   *waitlist.Waitlist
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// New returns a service around an empty waitlist.
func New(logger *zap.Logger, m *metrics.Metrics) *Waitlist {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.New(nil)
	}
	return &Waitlist{
		queue:   waitlist.New(),
		logger:  logger,
		metrics: m,
	}
}

func (s *Waitlist) AddFront(name string) waitlist.Added {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.queue.AddFront(name)
	s.record(OpAddFront, "added", name)
	return res
}

func (s *Waitlist) AddEnd(name string) waitlist.Added {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.queue.AddEnd(name)
	s.record(OpAddEnd, "added", name)
	return res
}

func (s *Waitlist) Remove(name string) waitlist.Removal {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.queue.Remove(name)
	s.record(OpRemove, res.Outcome.String(), name)
	return res
}

func (s *Waitlist) Snapshot() waitlist.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.queue.Snapshot()
	outcome := "listed"
	if snap.Empty() {
		outcome = "empty"
	}
	s.metrics.Observe(OpSnapshot, outcome, s.queue.Len())
	s.logger.Debug("waitlist snapshot", zap.String("outcome", outcome), zap.Int("entries", snap.Len()))
	return snap
}

// Len returns the current number of entries.
func (s *Waitlist) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Close drops every entry.
func (s *Waitlist) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue.Reset()
	s.metrics.Entries.Set(0)
	return nil
}

// record must be called with mu held.
func (s *Waitlist) record(op, outcome, name string) {
	entries := s.queue.Len()
	s.metrics.Observe(op, outcome, entries)
	s.logger.Debug("waitlist "+op,
		zap.String("name", name),
		zap.String("outcome", outcome),
		zap.Int("entries", entries),
	)
}
