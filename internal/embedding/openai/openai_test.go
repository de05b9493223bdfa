package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, vecs map[string][]float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req embeddingsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		type datum struct {
			Embedding []float64 `json:"embedding"`
			Index     int       `json:"index"`
		}
		data := make([]datum, len(req.Input))
		// Reverse order on purpose; the client must reassemble by index.
		for i := len(req.Input) - 1; i >= 0; i-- {
			data[len(req.Input)-1-i] = datum{Embedding: vecs[req.Input[i]], Index: i}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
}

func TestEmbedDocumentsOrder(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	srv := newTestServer(t, map[string][]float64{
		"alpha": {1, 0},
		"beta":  {0, 1},
	})
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	vecs, err := c.EmbedDocuments(context.Background(), []string{"alpha", "beta"})
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.Equal(t, []float64{1, 0}, vecs[0])
	assert.Equal(t, []float64{0, 1}, vecs[1])
	assert.Equal(t, 2, c.Dimension())
}

func TestEmbedQuery(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	srv := newTestServer(t, map[string][]float64{"question": {0.5, 0.5, 0.5}})
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	vec, err := c.EmbedQuery(context.Background(), "question")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, vec)
}

func TestNewClientMissingKey(t *testing.T) {
	t.Setenv("SOME_UNSET_EMBED_KEY", "")
	_, err := NewClient(Config{APIKeyEnv: "SOME_UNSET_EMBED_KEY"})
	assert.Error(t, err)
}

func TestEmbedAPIError(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "bad key"}})
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.EmbedQuery(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}
