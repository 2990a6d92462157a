package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"subrewriter/internal/http/httputils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const slowRequestThreshold = 500 * time.Millisecond

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

// MiddlewareLogging tags every request with an X-Request-ID, stores a request
// scoped logger in the context (zerolog.Ctx) and logs the outcome. Panics are
// recovered and answered with 500.
func MiddlewareLogging(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(httputils.HeaderRequestID)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(httputils.HeaderRequestID, reqID)

			reqLog := log.With().Str("request_id", reqID).Logger()
			r = r.WithContext(reqLog.WithContext(r.Context()))
			recorder := &responseRecorder{ResponseWriter: w}

			reqLog.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("ip", r.RemoteAddr).
				Msg("request started")

			defer func() {
				if err := recover(); err != nil {
					reqLog.Error().
						Str("panic", fmt.Sprintf("%v", err)).
						Str("stack", string(debug.Stack())).
						Msg("request panic")
					if recorder.statusCode == 0 {
						httputils.WriteTextError(recorder, http.StatusInternalServerError, "internal server error")
					}
				}

				if recorder.statusCode == 0 {
					recorder.statusCode = http.StatusOK
				}

				duration := time.Since(start)
				var event *zerolog.Event
				switch {
				case recorder.statusCode >= 500:
					event = reqLog.Error()
				case recorder.statusCode >= 400:
					event = reqLog.Warn()
				default:
					event = reqLog.Info()
				}

				event = event.
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", recorder.statusCode).
					Dur("duration", duration).
					Int("bytes", recorder.size).
					Str("ip", r.RemoteAddr)

				if duration > slowRequestThreshold {
					event = event.Bool("slow", true)
				}

				event.Msg("request completed")
			}()

			next.ServeHTTP(recorder, r)
		})
	}
}
