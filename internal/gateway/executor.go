// Package gateway is the authenticated request layer every other part of the
// client goes through: it attaches the bearer token, normalizes responses
// into a uniform result shape, and detects session expiry from 401/403.
//
// The layer deliberately performs exactly one attempt per call: no retries,
// no backoff, no deduplication of in-flight requests, and no timeout beyond
// what the injected HTTP client enforces. Callers that want resilience build
// it above this layer.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"roamtable/internal/platform/metrics"
	"roamtable/internal/platform/tracer"
	"roamtable/internal/session"
)

// genericFailure is the fallback error message when a failed response carries
// no usable message field.
const genericFailure = "request failed"

// Doer is the minimal interface needed from an HTTP client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Executor performs one HTTP request per call and returns a normalized
// Result. It never returns a Go error: all failure modes are represented as
// data in the Result.
type Executor struct {
	baseURL  string
	client   Doer
	sessions session.Store
	log      *slog.Logger
	trace    tracer.Tracer
	metrics  *metrics.Metrics
}

// Config configures an Executor. BaseURL and Sessions are required;
// everything else has a working default.
type Config struct {
	BaseURL    string
	Sessions   session.Store
	HTTPClient Doer
	Logger     *slog.Logger
	Tracer     tracer.Tracer
	Metrics    *metrics.Metrics
}

// NewExecutor creates an Executor from cfg.
func NewExecutor(cfg Config) *Executor {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	tr := cfg.Tracer
	if tr == nil {
		tr = tracer.NewNoop()
	}
	return &Executor{
		baseURL:  cfg.BaseURL,
		client:   client,
		sessions: cfg.Sessions,
		log:      log,
		trace:    tr,
		metrics:  cfg.Metrics,
	}
}

// Fetch performs one request against path (relative to the base URL) and
// returns the normalized result.
func (e *Executor) Fetch(ctx context.Context, path string, opts FetchOptions) Result {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	ctx, span := e.trace.Start(ctx, tracer.SpanFetch,
		tracer.String(tracer.AttrMethod, method),
		tracer.String(tracer.AttrPath, path),
		tracer.Bool(tracer.AttrSkipAuth, opts.SkipAuth),
	)

	start := time.Now()
	res := e.fetch(ctx, method, path, opts)

	span.SetAttributes(
		tracer.Int64(tracer.AttrStatus, int64(res.Status)),
		tracer.Bool(tracer.AttrSessionExpired, res.SessionExpired),
	)
	if res.Err != "" {
		span.End(errors.New(res.Err))
	} else {
		span.End(nil)
	}

	e.metrics.RecordRequest(method, res.Status, time.Since(start).Seconds())
	if res.SessionExpired {
		e.metrics.RecordSessionExpiry()
	}

	e.log.DebugContext(ctx, "gateway fetch",
		"method", method,
		"path", path,
		"status", res.Status,
		"session_expired", res.SessionExpired,
	)
	return res
}

func (e *Executor) fetch(ctx context.Context, method, path string, opts FetchOptions) Result {
	var bodyReader io.Reader
	hasBody := opts.Body != nil
	if hasBody {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return Result{Status: 0, Err: "encode request body: " + err.Error()}
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, bodyReader)
	if err != nil {
		return Result{Status: 0, Err: err.Error()}
	}

	// Gateway defaults first, caller headers last: an explicit caller
	// header always wins.
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if !opts.SkipAuth {
		if token := session.Token(e.sessions); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "network error"
		}
		return Result{Status: 0, Err: msg}
	}
	defer resp.Body.Close()

	status := resp.StatusCode
	expired := IsExpired(status)
	success := status >= 200 && status < 300

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 || !json.Valid(body) {
		// Unreadable, empty, or non-JSON body: a failed status still
		// reports a generic failure; a 2xx is success with no data.
		if success {
			return Result{Status: status}
		}
		return Result{Status: status, Err: genericFailure, SessionExpired: expired}
	}

	if success {
		return Result{Data: body, Status: status}
	}
	return Result{Status: status, Err: errorMessage(body), SessionExpired: expired}
}

// errorMessage extracts the backend's message field from a JSON error body,
// falling back to the error field, then to a generic string.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return genericFailure
}
