package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type LoggingMiddleware struct {
	log *logrus.Logger
}

func NewLoggingMiddleware(log *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		entry := m.log.WithFields(logrus.Fields{
			"method":   req.Method,
			"path":     req.URL.Path,
			"query":    req.URL.RawQuery,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Warn("HTTP request failed")
			return
		}
		entry.Info("HTTP request")
	})
}
