package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/exceptions"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMinioClient(t *testing.T, handler http.HandlerFunc) *minio.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	client, err := minio.New(serverURL.Host, &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Secure: false,
		Region: "us-east-1",
	})
	require.NoError(t, err)
	return client
}

func TestMinioStorage_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Object Maps To Not Found", func(t *testing.T) {
		client := newTestMinioClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		s := NewMinioStorage(client, "pacientes", zap.NewNop())

		_, err := s.Open(ctx, "123e4567-e89b-42d3-a456-426614174000-a.png")

		assert.ErrorIs(t, err, contracts.ErrStoredFileNotFound)
	})

	t.Run("Denied Access Is A Server Error", func(t *testing.T) {
		client := newTestMinioClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		s := NewMinioStorage(client, "pacientes", zap.NewNop())

		_, err := s.Open(ctx, "123e4567-e89b-42d3-a456-426614174000-a.png")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
		assert.NotErrorIs(t, err, contracts.ErrStoredFileNotFound)
	})
}
