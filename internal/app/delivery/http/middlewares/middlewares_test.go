package middlewares

import (
	"net/http"
	"net/http/httptest"
	"pacientes-service/internal/app/config"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(maxRequests int) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{MaxRequests: maxRequests},
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(10)

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestIDFromContext(r.Context())
	}))

	t.Run("Generates An ID", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/pacientes", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps The Client ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/pacientes", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", seen)
		assert.Equal(t, "client-id-1", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestLogging_PassesStatusThrough(t *testing.T) {
	m := newTestMiddlewares(10)
	handler := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(10)

	for name, value := range map[string]interface{}{
		"String Panic": "boom",
		"Error Panic":  assert.AnError,
		"Other Panic":  42,
	} {
		t.Run(name, func(t *testing.T) {
			handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(value)
			}))

			rr := httptest.NewRecorder()
			require.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			var body exceptions.CustomError
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body.ClientMessage)
			assert.NotContains(t, rr.Body.String(), "boom")
		})
	}
}

func TestRateLimit(t *testing.T) {
	m := newTestMiddlewares(2)
	handler := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
