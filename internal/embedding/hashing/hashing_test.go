package hashing

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedDeterministic(t *testing.T) {
	e := NewEmbedder(128)
	ctx := context.Background()

	a, err := e.EmbedQuery(ctx, "the sky is blue today")
	require.NoError(t, err)
	b, err := e.EmbedQuery(ctx, "the sky is blue today")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmbedDimension(t *testing.T) {
	e := NewEmbedder(0)
	assert.Equal(t, DefaultDimension, e.Dimension())

	vec, err := e.EmbedQuery(context.Background(), "hello")
	require.NoError(t, err)
	assert.Len(t, vec, DefaultDimension)
}

func TestEmbedDocumentsPreservesOrder(t *testing.T) {
	e := NewEmbedder(64)
	ctx := context.Background()
	texts := []string{"first document", "second document", "third document"}

	vecs, err := e.EmbedDocuments(ctx, texts)
	require.NoError(t, err)
	require.Len(t, vecs, 3)

	for i, txt := range texts {
		single, err := e.EmbedQuery(ctx, txt)
		require.NoError(t, err)
		assert.Equal(t, single, vecs[i], "vector %d should match the single-text embedding", i)
	}
}

func TestEmbedUnitNorm(t *testing.T) {
	e := NewEmbedder(256)
	vec, err := e.EmbedQuery(context.Background(), "grass is green and the sun is bright")
	require.NoError(t, err)

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestEmbedStopwordsOnly(t *testing.T) {
	e := NewEmbedder(64)
	vec, err := e.EmbedQuery(context.Background(), "the and of in")
	require.NoError(t, err)
	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestSimilarTextsCloser(t *testing.T) {
	e := NewEmbedder(384)
	ctx := context.Background()

	sky, err := e.EmbedQuery(ctx, "The sky is blue.")
	require.NoError(t, err)
	skyQ, err := e.EmbedQuery(ctx, "sky blue")
	require.NoError(t, err)
	grass, err := e.EmbedQuery(ctx, "mowing regularly")
	require.NoError(t, err)

	assert.Greater(t, dot(sky, skyQ), dot(grass, skyQ))
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
