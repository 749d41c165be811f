// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Every route runs this global chain:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging
//
// /api/v1 routes add Chain(Timeout, RateLimit) and task routes add Identity
// after that. Each middleware is a func(http.Handler) http.Handler.
package middleware

import "net/http"

// statusRecorder wraps http.ResponseWriter to remember the status code and
// body size of a response. Recovery, OpenTelemetry and Logging read it after
// the handler returns.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	started bool
	bytes   int64
}

// record returns w itself when it is already a statusRecorder, so nested
// middleware share one recorder per request.
func record(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader keeps the first status code; later calls are dropped.
func (rec *statusRecorder) WriteHeader(code int) {
	if rec.started {
		return
	}
	rec.status = code
	rec.started = true
	rec.ResponseWriter.WriteHeader(code)
}

// Write counts body bytes. A Write before WriteHeader implies 200 OK.
func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.started = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
