package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Request describes one notification to deliver. Either At (a calendar
// trigger) or Interval (a countdown trigger) is set, never both.
type Request struct {
	Identifier string
	Title      string
	Body       string
	At         *time.Time
	Interval   time.Duration
	Repeats    bool
}

// Scheduler is the notification delivery boundary. Scheduling with an
// identifier that is already pending replaces the earlier request, so
// rescheduling and cancellation are idempotent per identifier.
type Scheduler interface {
	Schedule(req Request) error
	Cancel(identifier string) error
}

// MemoryScheduler is an in-process Scheduler that records pending
// requests. It stands in for the platform notification center: delivery
// itself is outside this module's scope.
type MemoryScheduler struct {
	mu      sync.RWMutex
	pending map[string]Request
	logger  *zap.Logger
}

// NewMemoryScheduler creates a scheduler with an empty pending set.
func NewMemoryScheduler(logger *zap.Logger) *MemoryScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryScheduler{
		pending: make(map[string]Request),
		logger:  logger,
	}
}

// Schedule registers a notification request, replacing any pending
// request with the same identifier.
func (s *MemoryScheduler) Schedule(req Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[req.Identifier] = req
	s.logger.Debug("notification scheduled",
		zap.String("identifier", req.Identifier),
		zap.String("title", req.Title),
		zap.Bool("repeats", req.Repeats),
	)
	return nil
}

// Cancel removes a pending request. Cancelling an identifier that is
// not pending is a no-op.
func (s *MemoryScheduler) Cancel(identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, identifier)
	s.logger.Debug("notification cancelled", zap.String("identifier", identifier))
	return nil
}

// Pending returns the request registered under the identifier, if any.
func (s *MemoryScheduler) Pending(identifier string) (Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.pending[identifier]
	return req, ok
}

// PendingCount returns the number of pending requests.
func (s *MemoryScheduler) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}
