package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("APP_PORT", "")
		t.Setenv("UPLOAD_BACKEND", "")

		cfg := NewInternalConfig()

		assert.Equal(t, ":3000", cfg.App.Port)
		assert.Equal(t, "api", cfg.App.EndpointPrefix)
		assert.Equal(t, UploadBackendLocal, cfg.Upload.Backend)
	})

	t.Run("Reads Environment", func(t *testing.T) {
		t.Setenv("APP_REQUEST_TIMEOUT_IN_SECONDS", "3")
		t.Setenv("UPLOAD_MAX_SIZE_IN_MB", "2")
		t.Setenv("CACHE_PATIENT_TTL_IN_SECONDS", "60")
		t.Setenv("UPLOAD_BACKEND", UploadBackendMinio)

		cfg := NewInternalConfig()

		assert.Equal(t, 3*time.Second, cfg.App.RequestTimeout())
		assert.Equal(t, int64(2<<20), cfg.Upload.MaxSizeInBytes())
		assert.Equal(t, time.Minute, cfg.Cache.PatientTTL())
		assert.Equal(t, UploadBackendMinio, cfg.Upload.Backend)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("MONGODB_URI", "mongodb://example:27017")

	cfg := NewDriverConfig()

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "mongodb://example:27017", cfg.MongoDB.URI)
	assert.Equal(t, "pacientes", cfg.MongoDB.DbName)
}
