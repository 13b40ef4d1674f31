package planner

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hke-expeditions/trip-backend/internal/observability/metrics"
	"github.com/hke-expeditions/trip-backend/pkg/logging"
)

var tracer = otel.Tracer("hke.internal.planner")

// Service proxies itinerary generation and editing to an LLM provider.
// Each request is a single blocking completion call; no state survives it.
type Service struct {
	llm       Client
	maxTokens int32
	metrics   *metrics.PlannerMetrics
	logger    *logging.Logger
}

// NewService creates a planner service. maxTokens caps each completion;
// zero or negative falls back to 1200.
func NewService(llm Client, maxTokens int, m *metrics.PlannerMetrics, logger *logging.Logger) *Service {
	if llm == nil {
		panic("planner: llm client cannot be nil")
	}
	if maxTokens <= 0 {
		maxTokens = 1200
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		llm:       llm,
		maxTokens: int32(maxTokens),
		metrics:   m,
		logger:    logger,
	}
}

// GeneratePlan produces a day-wise itinerary for the requested trip.
func (s *Service) GeneratePlan(ctx context.Context, req PlanRequest) (string, error) {
	ctx, span := tracer.Start(ctx, "planner.plan")
	defer span.End()
	span.SetAttributes(
		attribute.String("hke.destination", req.Destination),
		attribute.Int("hke.days", req.Days),
	)

	return s.complete(ctx, "plan", Request{
		System:    systemPrompt,
		Prompt:    buildPlanPrompt(req),
		MaxTokens: s.maxTokens,
	})
}

// EditItinerary rewrites an existing itinerary per the user's request.
func (s *Service) EditItinerary(ctx context.Context, req ChatRequest) (string, error) {
	ctx, span := tracer.Start(ctx, "planner.chat")
	defer span.End()

	return s.complete(ctx, "chat", Request{
		System:    systemPrompt,
		Prompt:    buildChatPrompt(req),
		MaxTokens: s.maxTokens,
	})
}

func (s *Service) complete(ctx context.Context, endpoint string, req Request) (string, error) {
	start := time.Now()
	resp, err := s.llm.Complete(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.ObserveRequest(endpoint, "error", elapsed.Seconds())
		return "", err
	}

	s.metrics.ObserveRequest(endpoint, "ok", elapsed.Seconds())
	s.logger.Info("itinerary completion finished",
		"endpoint", endpoint,
		"duration_ms", elapsed.Milliseconds(),
		"input_tokens", resp.InputTokens,
		"output_tokens", resp.OutputTokens,
		"stop_reason", resp.StopReason,
	)
	return resp.Text, nil
}
