package sqlite

import (
	"encoding/binary"
	"fmt"
	"math"
)

// encodeEmbedding packs a vector into a BLOB as a little-endian sequence
// of IEEE 754 float64 values. No length prefix; the length is derived
// from the BLOB size on decode.
func encodeEmbedding(vec []float64) []byte {
	b := make([]byte, len(vec)*8)
	for i, v := range vec {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(v))
	}
	return b
}

// decodeEmbedding reverses encodeEmbedding.
func decodeEmbedding(b []byte) ([]float64, error) {
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("invalid embedding blob length %d (not a multiple of 8)", len(b))
	}
	vec := make([]float64, len(b)/8)
	for i := range vec {
		vec[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return vec, nil
}
