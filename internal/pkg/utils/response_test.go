package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"pacientes-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildErrorResponse(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Custom Error Keeps Status And Client Message", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(logger, rr, exceptions.ErrPatientNotFound(nil, "abc"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Paciente no encontrado", body["message"])
		assert.Equal(t, false, body["success"])
		assert.NotContains(t, rr.Body.String(), "abc", "dev message must not leak")
	})

	t.Run("Plain Error Becomes Generic Server Error", func(t *testing.T) {
		rr := httptest.NewRecorder()

		BuildErrorResponse(logger, rr, errors.New("connection refused to mongo:27017"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "mongo")
		assert.Contains(t, rr.Body.String(), "Error en el servidor")
	})

	t.Run("Validation Error Lists Fields", func(t *testing.T) {
		rr := httptest.NewRecorder()

		invalid := validPatientRequest()
		invalid.Sexo = strPtr("")
		BuildErrorResponse(logger, rr, exceptions.ErrInputValidation(ValidateStruct(invalid)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var body struct {
			Errors []exceptions.FieldError `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "sexo", body.Errors[0].Field)
		assert.Equal(t, "El sexo es obligatorio", body.Errors[0].Message)
	})
}
