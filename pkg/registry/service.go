// Package registry implements the account and property registration workflows,
// the account ledger and the property transfer engine on top of a transactional
// ledger substrate.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandeepmed2/property-registration/pkg/events"
	"github.com/sandeepmed2/property-registration/pkg/keys"
	"github.com/sandeepmed2/property-registration/pkg/storage"
)

// Operation names, as used by the invocation surface and in metrics.
const (
	OpRequestAccount  = "requestAccount"
	OpApproveAccount  = "approveAccount"
	OpViewAccount     = "viewAccount"
	OpRecharge        = "recharge"
	OpRequestProperty = "requestProperty"
	OpApproveProperty = "approveProperty"
	OpViewProperty    = "viewProperty"
	OpUpdateStatus    = "updateStatus"
	OpPurchase        = "purchase"
)

// Recorder receives the outcome of every operation.
type Recorder interface {
	ObserveOperation(operation, outcome string, duration time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveOperation(string, string, time.Duration) {}

// Service runs every registry operation as one invocation of the ledger.
type Service struct {
	ledger    storage.Ledger
	publisher events.Publisher
	recorder  Recorder
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher sets the publisher that receives events for committed invocations.
func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithRecorder sets the recorder of operation outcomes.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock sets the source of record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new Service on ledger.
func NewService(ledger storage.Ledger, opts ...Option) *Service {
	s := &Service{
		ledger:    ledger,
		publisher: events.NoOpPublisher{},
		recorder:  noopRecorder{},
		logger:    slog.Default(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Make sure we conform to the interface
var _ Registry = (*Service)(nil)

// observe records the outcome of an operation. It is deferred with a pointer
// to the operation's named error result.
func (s *Service) observe(ctx context.Context, operation string, start time.Time, errp *error) {
	outcome := "success"
	if err := *errp; err != nil {
		outcome = string(Kind(err))
		level := slog.LevelInfo
		if outcome == string(KindInternal) {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "operation rejected", "operation", operation, "kind", outcome, "error", err)
	} else {
		s.logger.Log(ctx, slog.LevelInfo, "operation committed", "operation", operation)
	}
	s.recorder.ObserveOperation(operation, outcome, time.Since(start))
}

// publish delivers events for an invocation that has already committed.
// Failures are logged and never change the outcome of the invocation.
func (s *Service) publish(ctx context.Context, evs ...events.Event) {
	for _, ev := range evs {
		if err := s.publisher.Publish(ctx, ev); err != nil {
			s.logger.Error("CRITICAL: invocation committed but event was not published",
				"event_id", ev.ID, "event_type", ev.Type, "key", ev.Key, "error", err)
		}
	}
}

// validIdentifier translates a malformed natural identifier into a validation error.
func validIdentifier(ids ...string) error {
	if err := keys.Validate(ids...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
	}
	return nil
}
