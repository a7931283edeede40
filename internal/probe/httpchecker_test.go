package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestHTTPChecker_StatusOK(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	chk := NewHTTPChecker(zap.NewNop(), 2*time.Second)
	out := chk.Check(context.Background(), s.URL)
	if !out.Completed {
		t.Fatalf("want completed response, got %+v", out)
	}
	if out.StatusCode != 200 {
		t.Fatalf("want status 200, got %d", out.StatusCode)
	}
	if !out.OK() {
		t.Fatalf("want OK, got %+v", out)
	}
	if !strings.HasPrefix(out.Message, "200") {
		t.Fatalf("want message to start with 200, got %q", out.Message)
	}
	if out.LatencyMS < 0 {
		t.Fatalf("latency should be >= 0, got %f", out.LatencyMS)
	}
}

func TestHTTPChecker_Status500IsCompletedButNotOK(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 500)
	}))
	defer s.Close()

	chk := NewHTTPChecker(zap.NewNop(), 2*time.Second)
	out := chk.Check(context.Background(), s.URL)
	if !out.Completed {
		t.Fatalf("4xx/5xx is a completed response, got %+v", out)
	}
	if out.StatusCode != 500 {
		t.Fatalf("want status 500, got %d", out.StatusCode)
	}
	if out.OK() {
		t.Fatalf("500 must not be OK")
	}
}

func TestHTTPChecker_TransportFailureIsSentinel(t *testing.T) {
	// Server sleeps longer than client timeout
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer s.Close()

	chk := NewHTTPChecker(zap.NewNop(), 50*time.Millisecond)
	out := chk.Check(context.Background(), s.URL)
	if out.Completed {
		t.Fatalf("want transport failure, got %+v", out)
	}
	if out.StatusCode != 0 {
		t.Fatalf("want status 0 on transport error, got %d", out.StatusCode)
	}
	if out.OK() {
		t.Fatalf("sentinel must not be OK")
	}
	if out.Message == "" {
		t.Fatalf("want non-empty error message")
	}
}

func TestHTTPChecker_ConnectionRefused(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := s.URL
	s.Close() // nothing listens here anymore

	chk := NewHTTPChecker(zap.NewNop(), time.Second)
	out := chk.Check(context.Background(), url)
	if out.Completed || out.OK() {
		t.Fatalf("want sentinel on refused connection, got %+v", out)
	}
}

func TestResult_OKTable(t *testing.T) {
	cases := []struct {
		name string
		in   Result
		want bool
	}{
		{"200", Result{StatusCode: 200, Completed: true}, true},
		{"301", Result{StatusCode: 301, Completed: true}, false},
		{"404", Result{StatusCode: 404, Completed: true}, false},
		{"500", Result{StatusCode: 500, Completed: true}, false},
		{"sentinel", Result{}, false},
		{"uncompleted 200 never happens, still not ok", Result{StatusCode: 200}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.OK(); got != tc.want {
				t.Fatalf("OK(%+v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
