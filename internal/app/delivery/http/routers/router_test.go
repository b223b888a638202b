package routers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"pacientes-service/internal/app/config"
	"pacientes-service/internal/app/delivery/http/controllers"
	"pacientes-service/internal/app/delivery/http/middlewares"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/app/services/core/patients"
	"pacientes-service/internal/app/services/core/uploads"
	"pacientes-service/internal/app/services/shared/storage"
	"pacientes-service/internal/pkg/constvars"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryPatientRepository keeps patients in insertion order and applies changes the way
// the Mongo $set update does.
type memoryPatientRepository struct {
	mu       sync.Mutex
	patients []models.Patient
}

func (m *memoryPatientRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *patient
	stored.ID = fmt.Sprintf("%024x", len(m.patients)+1)
	m.patients = append(m.patients, stored)
	return stored.ID, nil
}

func (m *memoryPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, patient := range m.patients {
		if patient.ID == patientID {
			return &patient, nil
		}
	}
	return nil, nil
}

func (m *memoryPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return m.FindByFilter(ctx, models.PatientFilter{})
}

func (m *memoryPatientRepository) FindByFilter(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []models.Patient{}
	for _, patient := range m.patients {
		if filter.Sexo != "" && patient.Sexo != filter.Sexo {
			continue
		}
		if filter.Enfermedad != "" && patient.Enfermedad != filter.Enfermedad {
			continue
		}
		if filter.FechaIngresoDesde != nil && patient.FechaIngreso.Before(*filter.FechaIngresoDesde) {
			continue
		}
		result = append(result, patient)
	}
	return result, nil
}

func (m *memoryPatientRepository) UpdateByID(ctx context.Context, patientID string, changes models.PatientChanges) (*models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.patients {
		patient := &m.patients[i]
		if patient.ID != patientID {
			continue
		}
		if changes.Nombre != nil {
			patient.Nombre = *changes.Nombre
		}
		if changes.Rut != nil {
			patient.Rut = *changes.Rut
		}
		if changes.Edad != nil {
			patient.Edad = *changes.Edad
		}
		if changes.Sexo != nil {
			patient.Sexo = *changes.Sexo
		}
		if changes.Enfermedad != nil {
			patient.Enfermedad = *changes.Enfermedad
		}
		if changes.FotoPersonal != nil {
			patient.FotoPersonal = *changes.FotoPersonal
		}
		if changes.FechaIngreso != nil {
			patient.FechaIngreso = *changes.FechaIngreso
		}
		if changes.Revisado != nil {
			patient.Revisado = *changes.Revisado
		}
		updated := *patient
		return &updated, nil
	}
	return nil, nil
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return newLimitedTestServer(t, 1000)
}

func newLimitedTestServer(t *testing.T, maxRequests int) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			MaxRequests:                maxRequests,
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
		},
		Upload: config.Upload{Dir: t.TempDir(), MaxSizeInMB: 1},
	}

	patientUsecase := patients.NewPatientUsecase(&memoryPatientRepository{}, nil, time.Minute, logger)
	uploadUsecase := uploads.NewUploadUsecase(storage.NewLocalStorage(internalConfig.Upload.Dir, logger), logger)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewPatientController(logger, patientUsecase, internalConfig),
		controllers.NewUploadController(logger, uploadUsecase, internalConfig),
	)
	return router
}

func do(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeInto(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), rr.Body.String())
}

type patientBody struct {
	ID           string    `json:"_id"`
	Rut          string    `json:"rut"`
	Nombre       string    `json:"nombre"`
	Edad         int       `json:"edad"`
	Sexo         string    `json:"sexo"`
	FotoPersonal string    `json:"fotoPersonal"`
	FechaIngreso time.Time `json:"fechaIngreso"`
	Enfermedad   string    `json:"enfermedad"`
	Revisado     bool      `json:"revisado"`
}

func TestPatientLifecycle(t *testing.T) {
	server := newTestServer(t)

	rr := do(t, server, http.MethodGet, "/api/pacientes", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))

	rr = do(t, server, http.MethodPost, "/api/pacientes",
		`{"rut":"11.111.111-1","nombre":"Ana","edad":30,"sexo":"F","enfermedad":"gripe"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created patientBody
	decodeInto(t, rr, &created)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Revisado)
	assert.Equal(t, "", created.FotoPersonal)
	assert.False(t, created.FechaIngreso.IsZero())

	rr = do(t, server, http.MethodGet, "/api/pacientes/"+created.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var fetched patientBody
	decodeInto(t, rr, &fetched)
	assert.Equal(t, created.ID, fetched.ID)

	rr = do(t, server, http.MethodPut, "/api/pacientes/"+created.ID, `{"nombre":"X"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated patientBody
	decodeInto(t, rr, &updated)
	assert.Equal(t, "X", updated.Nombre)
	assert.Equal(t, "11.111.111-1", updated.Rut)
	assert.Equal(t, 30, updated.Edad)

	rr = do(t, server, http.MethodGet, "/api/pacientes/buscar?sexo=F", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var found []patientBody
	decodeInto(t, rr, &found)
	require.Len(t, found, 1)

	rr = do(t, server, http.MethodGet, "/api/pacientes/buscar?sexo=X", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	for i := 0; i < 2; i++ {
		rr = do(t, server, http.MethodDelete, "/api/pacientes/"+created.ID, "")
		require.Equal(t, http.StatusOK, rr.Code)
		var disabled struct {
			Message  string      `json:"message"`
			Paciente patientBody `json:"paciente"`
		}
		decodeInto(t, rr, &disabled)
		assert.Equal(t, "Paciente inhabilitado", disabled.Message)
		assert.False(t, disabled.Paciente.Revisado)
	}

	rr = do(t, server, http.MethodGet, "/api/pacientes", "")
	var all []patientBody
	decodeInto(t, rr, &all)
	assert.Len(t, all, 1, "disabled patients are still listed")
}

func TestPatientErrors(t *testing.T) {
	server := newTestServer(t)

	t.Run("Missing Fields", func(t *testing.T) {
		rr := do(t, server, http.MethodPost, "/api/pacientes", `{"nombre":"Ana"}`)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		var body struct {
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		decodeInto(t, rr, &body)
		assert.Len(t, body.Errors, 4)
		assert.Contains(t, rr.Body.String(), "El RUT es obligatorio")
	})

	t.Run("Unknown ID", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			rr := do(t, server, method, "/api/pacientes/000000000000000000000000", "")
			assert.Equal(t, http.StatusNotFound, rr.Code, method)
		}
		rr := do(t, server, http.MethodPut, "/api/pacientes/000000000000000000000000", `{"nombre":"X"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Bad Search Date", func(t *testing.T) {
		rr := do(t, server, http.MethodGet, "/api/pacientes/buscar?fechaIngreso=31-12-2024", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func uploadFile(t *testing.T, handler http.Handler, fileName, contentType string, data []byte) string {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var uploaded struct {
		FileName string `json:"fileName"`
	}
	decodeInto(t, rr, &uploaded)
	return uploaded.FileName
}

func TestUploadRoundTrip(t *testing.T) {
	server := newTestServer(t)
	gif := []byte{
		0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
	}

	fileName := uploadFile(t, server, "foto.gif", "image/gif", gif)
	assert.True(t, strings.HasSuffix(fileName, "-foto.gif"))

	rr := do(t, server, http.MethodGet, "/api/upload/"+fileName, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, gif, rr.Body.Bytes())
	assert.Equal(t, "image/gif", rr.Header().Get(constvars.HeaderContentType))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

	rr = do(t, server, http.MethodGet, "/api/upload/..%2F..%2Fetc%2Fpasswd", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUploadWithHTMLBodyIsServedAsBinary(t *testing.T) {
	server := newTestServer(t)
	page := []byte("<html><body><script>alert(document.domain)</script></body></html>")

	fileName := uploadFile(t, server, "x-foto.png", "image/png", page)

	rr := do(t, server, http.MethodGet, "/api/upload/"+fileName, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, page, rr.Body.Bytes())
	assert.Equal(t, constvars.MIMEOctetStream, rr.Header().Get(constvars.HeaderContentType))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestRateLimitedResponseIsTagged(t *testing.T) {
	server := newLimitedTestServer(t, 1)

	rr := do(t, server, http.MethodGet, "/api/pacientes", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, server, http.MethodGet, "/api/pacientes", "")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
}
