package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/libra-works/pkg/ctxutil"
)

// requestLog collects values that are only known further down the chain.
type requestLog struct {
	actor string
}

type requestLogKey struct{}

// noteActor makes the actor visible to the request log line.
func noteActor(ctx context.Context, actor string) {
	if rl, ok := ctx.Value(requestLogKey{}).(*requestLog); ok {
		rl.actor = actor
	}
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, request id and the acting user when known.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			rl := &requestLog{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), requestLogKey{}, rl)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if rl.actor != "" {
				attrs = append(attrs, slog.String("actor", rl.actor))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

type requestObserver interface {
	ObserveRequest(method string, status int)
}

// Metrics returns middleware that counts requests by method and status.
func Metrics(obs requestObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			obs.ObserveRequest(r.Method, sw.status)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
