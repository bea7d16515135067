package server

import (
	"context"
	"net/http"
	"regexp"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type ctxKey int

const ctxKeyRequestID ctxKey = iota

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]{1,64}$`)

// requestID keeps a well-formed inbound X-Request-ID and replaces anything
// else with a fresh one. The ID is echoed on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if !requestIDPattern.MatchString(rid) {
			rid = uuid.NewString()
		}

		r = r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, rid))
		w.Header().Set(requestIDHeader, rid)

		next.ServeHTTP(w, r)
	})
}

// RequestID returns the ID assigned to r by the request ID middleware.
func RequestID(r *http.Request) string {
	rid, _ := r.Context().Value(ctxKeyRequestID).(string)
	return rid
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(logger lager.Logger, clk clock.Clock, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := clk.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		logger.Info("request", lager.Data{
			"request-id": RequestID(r),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     recorder.status,
			"duration":   clk.Since(start).String(),
		})
	})
}
