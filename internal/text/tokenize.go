// Package text holds the tokenizer and stopword list shared by the
// hashing embedder and the summarizer.
package text

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

var sentenceRe = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// Tokenize lowercases the text and extracts unicode word tokens.
func Tokenize(s string) []string {
	return wordRe.FindAllString(strings.ToLower(s), -1)
}

// Sentences splits text into sentences on terminal punctuation. Text with
// no terminal punctuation comes back as a single trimmed sentence.
func Sentences(s string) []string {
	out := sentenceRe.FindAllString(s, -1)
	if len(out) == 0 {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}
	return out
}

// IsStopword reports whether the token is a common English stopword.
func IsStopword(tok string) bool {
	_, ok := stopwords[tok]
	return ok
}

var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
