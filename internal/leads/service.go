package leads

import (
	"context"
	"errors"
	"time"

	"github.com/hke-expeditions/trip-backend/internal/observability/metrics"
	"github.com/hke-expeditions/trip-backend/internal/sheets"
	"github.com/hke-expeditions/trip-backend/pkg/logging"
)

// SinkWriter appends one row to the external tabular sink.
type SinkWriter interface {
	Append(ctx context.Context, row []interface{}) error
}

// Notifier tells the sales team about a stored lead.
type Notifier interface {
	NotifyNewLead(ctx context.Context, rec *Record) error
}

// Service runs the insert pipeline: normalize, append, notify. It holds no
// state between calls; the appended row is the only durable copy of a lead.
type Service struct {
	sink     SinkWriter
	notifier Notifier
	metrics  *metrics.LeadMetrics
	logger   *logging.Logger
	now      func() time.Time
}

// NewService creates a lead service. notifier and m may be nil.
func NewService(sink SinkWriter, notifier Notifier, m *metrics.LeadMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		sink:     sink,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// InsertLead normalizes raw and appends it as one sheet row. A failure is
// one of the sheets error kinds, propagated untouched; there is no retry.
// Notification runs off the request path and never affects the outcome.
func (s *Service) InsertLead(ctx context.Context, raw map[string]any) (*Record, error) {
	rec := Normalize(raw, s.now())

	start := time.Now()
	err := s.sink.Append(ctx, rec.Row())
	s.metrics.ObserveInsert(outcomeLabel(err), time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	s.logger.Info("lead stored",
		"name", rec.Name,
		"state", rec.State,
		"source", rec.Source,
	)

	if s.notifier != nil {
		go func(rec Record) {
			nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
			defer cancel()
			if err := s.notifier.NotifyNewLead(nctx, &rec); err != nil {
				s.logger.Error("lead notification failed", "error", err, "name", rec.Name)
			}
		}(rec)
	}

	return &rec, nil
}

func outcomeLabel(err error) string {
	if err == nil {
		return "saved"
	}
	var cfgErr *sheets.ConfigurationError
	var sinkErr *sheets.SinkUnavailableError
	var writeErr *sheets.WriteError
	switch {
	case errors.As(err, &cfgErr):
		return "configuration_error"
	case errors.As(err, &sinkErr):
		return "sink_unavailable"
	case errors.As(err, &writeErr):
		return "write_error"
	default:
		return "error"
	}
}
