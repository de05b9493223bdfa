package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeShortTextPassesThrough(t *testing.T) {
	s := NewFrequencySummarizer()
	out, err := s.Summarize("One sentence. Two sentence.", 3)
	require.NoError(t, err)
	assert.Equal(t, "One sentence. Two sentence.", out)
}

func TestSummarizeLimitsSentences(t *testing.T) {
	s := NewFrequencySummarizer()
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("Databases store rows and columns reliably. ")
		b.WriteString("Cats nap. ")
	}
	out, err := s.Summarize(b.String(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "."))
}

func TestSummarizeNoPunctuation(t *testing.T) {
	s := NewFrequencySummarizer()
	out, err := s.Summarize("just a fragment without punctuation", 3)
	require.NoError(t, err)
	assert.Equal(t, "just a fragment without punctuation", out)
}

func TestSummarizeDefaultMax(t *testing.T) {
	s := NewFrequencySummarizer()
	out, err := s.Summarize("A. B. C. D. E. F.", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "."))
}
