package httpapi

import (
	"net/http"
	"strings"

	"github.com/Gedeon250/football-api-app/internal/platform/logging"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	// MetricsHandler is mounted on GET /metrics when non-nil.
	MetricsHandler http.Handler
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.MetricsHandler)
	registerPageRoutes(mux, handler)
	registerPublicDomainRoutes(mux, handler)

	return RequestTracing(RequestID(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				if isAPIPath(r.URL.Path) {
					writeInternalError(ctx, w)
					return
				}
				writeMinimalPage(w, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/v1/") || path == "/healthz"
}
