package seqcdc

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrBadCoverage is returned when a chunk sequence does not contiguously
// cover its source buffer.
var ErrBadCoverage = errors.New("invalid chunk coverage")

// VerifyChunks reports whether concatenating the chunk views in order
// reproduces original exactly.
func VerifyChunks(original []byte, chunks []Chunk) bool {
	offset := 0

	for _, chunk := range chunks {
		if offset+chunk.Length > len(original) {
			return false
		}

		if !bytes.Equal(original[offset:offset+chunk.Length], chunk.Data) {
			return false
		}

		offset += chunk.Length
	}

	return offset == len(original)
}

// ValidateCoverage checks the contiguity invariants of a materialized chunk
// sequence against the source buffer length: the first chunk starts at 0,
// each chunk starts where the previous ended, no chunk is empty, and the
// last chunk ends exactly at dataLen.
func ValidateCoverage(dataLen int, chunks []Chunk) error {
	if len(chunks) == 0 {
		if dataLen == 0 {
			return nil
		}

		return fmt.Errorf("%w: no chunks for %d bytes of data", ErrBadCoverage, dataLen)
	}

	expectedStart := 0

	for i, chunk := range chunks {
		if chunk.Start != expectedStart {
			return fmt.Errorf("%w: chunk %d starts at %d, want %d", ErrBadCoverage, i, chunk.Start, expectedStart)
		}

		if chunk.Length == 0 {
			return fmt.Errorf("%w: chunk %d is empty", ErrBadCoverage, i)
		}

		expectedStart = chunk.End()
	}

	if expectedStart != dataLen {
		return fmt.Errorf("%w: chunks end at %d, data length is %d", ErrBadCoverage, expectedStart, dataLen)
	}

	return nil
}
