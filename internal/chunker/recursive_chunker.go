package chunker

import (
	"strings"
)

// DefaultChunkSize is the target chunk size in characters.
const DefaultChunkSize = 500

// DefaultOverlap is the number of characters shared by consecutive chunks.
const DefaultOverlap = 50

// separators, in boundary preference order: paragraph, line, sentence,
// word, then a hard character cut.
var separators = []string{"\n\n", "\n", ". ", " ", ""}

// RecursiveChunker splits text into overlapping chunks of bounded size,
// preferring natural boundaries before falling back to a hard cut.
// Output is deterministic for identical input and parameters.
type RecursiveChunker struct {
	chunkSize int
	overlap   int
}

func NewRecursiveChunker(chunkSize, overlap int) *RecursiveChunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 4
	}
	return &RecursiveChunker{chunkSize: chunkSize, overlap: overlap}
}

// Chunk splits content into chunks of at most chunkSize characters, with
// consecutive chunks sharing approximately overlap characters.
func (c *RecursiveChunker) Chunk(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	pieces := c.split(content, separators)
	return c.merge(pieces)
}

// split recursively cuts text at the first separator present until every
// piece fits within chunkSize. Sizes are measured in runes so multi-byte
// text never splits mid-character.
func (c *RecursiveChunker) split(text string, seps []string) []string {
	if text == "" {
		return nil
	}
	if runeLen(text) <= c.chunkSize {
		return []string{text}
	}

	sep := ""
	var rest []string
	for i, s := range seps {
		if s == "" {
			break
		}
		if strings.Contains(text, s) {
			sep, rest = s, seps[i+1:]
			break
		}
	}
	if sep == "" {
		return hardCut(text, c.chunkSize)
	}

	var pieces []string
	for _, part := range strings.SplitAfter(text, sep) {
		if part == "" {
			continue
		}
		if runeLen(part) <= c.chunkSize {
			pieces = append(pieces, part)
		} else {
			pieces = append(pieces, c.split(part, rest)...)
		}
	}
	return pieces
}

// merge greedily joins consecutive pieces up to chunkSize, carrying a tail
// of up to overlap characters into the next chunk.
func (c *RecursiveChunker) merge(pieces []string) []string {
	var chunks []string
	var cur []string
	curLen := 0

	flush := func() {
		joined := strings.TrimSpace(strings.Join(cur, ""))
		if joined != "" {
			chunks = append(chunks, joined)
		}
	}

	for _, p := range pieces {
		pl := runeLen(p)
		if curLen+pl > c.chunkSize && curLen > 0 {
			flush()
			// Keep a tail of pieces within the overlap budget.
			for len(cur) > 0 && (curLen > c.overlap || curLen+pl > c.chunkSize) {
				curLen -= runeLen(cur[0])
				cur = cur[1:]
			}
		}
		cur = append(cur, p)
		curLen += pl
	}
	if curLen > 0 {
		flush()
	}
	return chunks
}

func hardCut(text string, size int) []string {
	runes := []rune(text)
	var out []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
