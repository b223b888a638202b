package middlewares

import (
	"net/http"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit allows App.MaxRequests requests per second and client IP.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil, r.RemoteAddr))
		}),
	)
}
