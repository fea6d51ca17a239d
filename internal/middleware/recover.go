package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/baharkarakas/portfolio-api/internal/api/httpx"
)

func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Error("panic",
						"err", rec,
						"request_id", RequestIDFrom(r.Context()),
						"stack", string(debug.Stack()),
					)
					httpx.WriteInternal(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
