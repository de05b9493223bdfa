package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkDeterministic(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 60)
	c := NewRecursiveChunker(500, 50)

	first := c.Chunk(text)
	second := c.Chunk(text)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestChunkRespectsSizeBound(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
	}{
		{"paragraphs", strings.Repeat("Some paragraph with several words in it.\n\n", 40), 120},
		{"sentences", strings.Repeat("A sentence here. Another one there. ", 50), 100},
		{"single long word", strings.Repeat("x", 1200), 200},
		{"multibyte runes", strings.Repeat("héllø wörld ", 200), 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRecursiveChunker(tt.size, tt.size/10)
			for _, ch := range c.Chunk(tt.text) {
				assert.LessOrEqual(t, len([]rune(ch)), tt.size)
			}
		})
	}
}

func TestChunkBelowBoundStaysWhole(t *testing.T) {
	c := NewRecursiveChunker(500, 50)
	text := "The sky is blue. Grass is green."

	chunks := c.Chunk(text)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0])
}

func TestChunkOverlap(t *testing.T) {
	words := make([]string, 120)
	for i := range words {
		words[i] = "word" + string(rune('a'+i%26))
	}
	text := strings.Join(words, " ")

	c := NewRecursiveChunker(100, 30)
	chunks := c.Chunk(text)
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		head := chunks[i]
		if len(head) > 10 {
			head = head[:10]
		}
		assert.Contains(t, chunks[i-1], head, "chunk %d should begin inside chunk %d", i, i-1)
	}
}

func TestChunkEmptyInput(t *testing.T) {
	c := NewRecursiveChunker(500, 50)
	assert.Nil(t, c.Chunk(""))
	assert.Nil(t, c.Chunk("   \n\t "))
}

func TestChunkCoversAllContent(t *testing.T) {
	text := strings.Repeat("Alpha beta gamma delta epsilon. ", 40)
	c := NewRecursiveChunker(90, 15)

	joined := strings.Join(c.Chunk(text), " ")
	for _, word := range []string{"Alpha", "beta", "gamma", "delta", "epsilon"} {
		assert.Contains(t, joined, word)
	}
}

func TestNewRecursiveChunkerGuards(t *testing.T) {
	c := NewRecursiveChunker(0, -1)
	assert.Equal(t, DefaultChunkSize, c.chunkSize)
	assert.Equal(t, DefaultOverlap, c.overlap)

	// Overlap may not swallow the whole chunk.
	c = NewRecursiveChunker(100, 100)
	assert.Equal(t, 25, c.overlap)
}
