package probe

import (
	"context"
	"net/http"
)

// Result is the outcome of a single probe attempt.
//
// Completed is false when the request failed at transport level (DNS,
// connection refused, timeout, TLS); StatusCode is 0 in that case. A
// completed response always carries its status code, 4xx/5xx included:
// those are valid responses, not errors.
type Result struct {
	StatusCode int     `json:"status_code"`
	Completed  bool    `json:"completed"`
	Message    string  `json:"message,omitempty"`
	LatencyMS  float64 `json:"latency_ms,omitempty"`
}

// OK reports whether the probe observed a healthy target: exactly HTTP 200.
// Transport failures and every other status code are not OK.
func (r Result) OK() bool {
	return r.Completed && r.StatusCode == http.StatusOK
}

// Checker performs a single check for a given target URL.
type Checker interface {
	Check(ctx context.Context, target string) Result
}
