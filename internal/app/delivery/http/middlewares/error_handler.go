package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic in any handler into a generic 500 response.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			var err error
			switch x := rec.(type) {
			case string:
				err = errors.New(x)
			case error:
				err = x
			default:
				err = fmt.Errorf("unknown panic: %v", x)
			}

			m.Log.Error("ErrorHandler recovered from panic",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(r.Context())),
				zap.Error(err),
				zap.Stack("stacktrace"),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(err))
		}()
		next.ServeHTTP(w, r)
	})
}
