package probe

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single probe attempt.
const DefaultTimeout = 5 * time.Second

type HTTPChecker struct {
	Client *http.Client
	Logger *zap.Logger
}

func NewHTTPChecker(logger *zap.Logger, timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
		Logger: logger,
	}
}

// Check issues one GET against target. No retries; a transport failure is
// reported through Result.Completed, never as a panic or Go error.
func (h *HTTPChecker) Check(ctx context.Context, target string) Result {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		h.Logger.Error("probe_request_error", zap.String("url", target), zap.Error(err))
		return Result{Message: err.Error()}
	}

	h.Logger.Info("probe_attempt", zap.String("url", target))

	resp, err := h.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000
	if err != nil {
		h.Logger.Error("probe_transport_error",
			zap.String("url", target),
			zap.Float64("latency_ms", latency),
			zap.Error(err),
		)
		return Result{Message: err.Error(), LatencyMS: latency}
	}
	defer resp.Body.Close()

	return Result{
		StatusCode: resp.StatusCode,
		Completed:  true,
		Message:    resp.Status,
		LatencyMS:  latency,
	}
}
