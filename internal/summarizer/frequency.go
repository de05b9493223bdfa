// Package summarizer produces a short extractive summary of the ingested
// corpus, shown in the TUI header. Pure local computation, no API calls.
package summarizer

import (
	"math"
	"sort"
	"strings"

	"rag-assistant/internal/text"
)

// FrequencySummarizer ranks sentences by normalized token frequency,
// stopwords filtered, and keeps the top sentences in original order.
type FrequencySummarizer struct{}

func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{}
}

// Summarize returns up to maxSentences sentences that best represent the
// text.
func (s *FrequencySummarizer) Summarize(content string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = 3
	}
	sentences := text.Sentences(content)
	if len(sentences) <= maxSentences {
		out := make([]string, 0, len(sentences))
		for _, sent := range sentences {
			out = append(out, strings.TrimSpace(sent))
		}
		return strings.Join(out, " "), nil
	}

	freq := map[string]float64{}
	for _, sent := range sentences {
		for _, tok := range text.Tokenize(sent) {
			if text.IsStopword(tok) {
				continue
			}
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(sentences))
	for i, sent := range sentences {
		tokens := text.Tokenize(sent)
		total := 0.0
		for _, tok := range tokens {
			total += freq[tok]
		}
		// Length normalization keeps long sentences from dominating.
		if n := float64(len(tokens)); n > 0 {
			total /= math.Sqrt(n)
		}
		scores[i] = scored{i, total}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	selected := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)

	out := make([]string, 0, maxSentences)
	for _, idx := range selected {
		out = append(out, strings.TrimSpace(sentences[idx]))
	}
	return strings.Join(out, " "), nil
}
