package middleware

import (
	"net/http"
	"time"

	"people-pets-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger registra una línea por request con status, bytes y duración.
// Debe ir después de chimw.RequestID para poder incluir el request_id.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				fields := map[string]any{
					"request_id":  chimw.GetReqID(r.Context()),
					"method":      r.Method,
					"path":        r.URL.Path,
					"status":      status,
					"bytes":       ww.BytesWritten(),
					"duration_ms": time.Since(start).Milliseconds(),
					"remote_addr": r.RemoteAddr,
				}
				if status >= http.StatusInternalServerError {
					log.Error("http request", fields)
					return
				}
				log.Info("http request", fields)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
