package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/DRSN-tech/products-api/internal/cfg"
	"github.com/DRSN-tech/products-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type embeddingsRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

func newTestService(t *testing.T, handler http.HandlerFunc) *EmbeddingService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewEmbeddingService(&config.EmbeddingCfg{
		BaseURL: srv.URL + "/v1",
		ApiKey:  "test-key",
		Model:   "text-embedding-3-small",
	}, logger.NewNopLogger())
}

func embeddingsResponse(vectors ...[]float32) map[string]any {
	data := make([]map[string]any, 0, len(vectors))
	for i, v := range vectors {
		data = append(data, map[string]any{"object": "embedding", "index": i, "embedding": v})
	}

	return map[string]any{
		"object": "list",
		"data":   data,
		"model":  "text-embedding-3-small",
	}
}

func TestVectorize_PassesThroughModelVector(t *testing.T) {
	want := []float32{0.25, -0.5, 0.75}

	var got embeddingsRequest
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/embeddings", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(embeddingsResponse(want)))
	})

	vec, err := svc.Vectorize(context.Background(), "smart lighting")
	require.NoError(t, err)
	assert.Equal(t, want, vec)
	assert.Equal(t, []string{"smart lighting"}, got.Input)
	assert.Equal(t, "text-embedding-3-small", got.Model)
}

func TestVectorize_ErrorOnNon2xx(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
	})

	_, err := svc.Vectorize(context.Background(), "smart lighting")
	assert.Error(t, err)
}

func TestVectorize_ErrorOnEmptyData(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(embeddingsResponse()))
	})

	_, err := svc.Vectorize(context.Background(), "smart lighting")
	assert.Error(t, err)
}
