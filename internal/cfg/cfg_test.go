package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/products-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("QDRANT_HOST", "qdrant.internal")
	t.Setenv("COLLECTION_NAME", "products")
	t.Setenv("EMBEDDING_ENDPOINT", "https://models.internal/v1")
	t.Setenv("EMBEDDING_API_KEY", "test-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Http.Port)
	assert.Equal(t, 30*time.Second, cfg.Http.WriteTimeout)
	assert.Equal(t, 6334, cfg.Qdrant.Port)
	assert.False(t, cfg.Qdrant.UseTLS)
	assert.Equal(t, uint64(1536), cfg.Qdrant.VectorSize)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("QDRANT_GRPC_PORT", "7334")
	t.Setenv("QDRANT_USE_TLS", "true")
	t.Setenv("VECTOR_SIZE", "768")
	t.Setenv("EMBEDDING_MODEL", "text-embedding-3-large")

	cfg, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Http.Port)
	assert.Equal(t, 7334, cfg.Qdrant.Port)
	assert.True(t, cfg.Qdrant.UseTLS)
	assert.Equal(t, uint64(768), cfg.Qdrant.VectorSize)
	assert.Equal(t, "text-embedding-3-large", cfg.Embedding.Model)
}

func TestLoad_MissingRequiredVariable(t *testing.T) {
	tests := []string{"QDRANT_HOST", "COLLECTION_NAME", "EMBEDDING_ENDPOINT", "EMBEDDING_API_KEY"}

	for _, missing := range tests {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")

			_, err := Load(logger.NewNopLogger())
			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestLoad_InvalidNumericVariable(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("VECTOR_SIZE", "lots")

	_, err := Load(logger.NewNopLogger())
	assert.Error(t, err)
}
