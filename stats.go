package seqcdc

import "math"

// Stats summarizes the chunk sizes produced for a buffer.
type Stats struct {
	ChunkCount   int     // Total number of chunks
	TotalSize    int     // Total size of the processed data
	AvgChunkSize float64 // Mean chunk size
	MinChunkSize int     // Smallest chunk size
	MaxChunkSize int     // Largest chunk size
	SizeStddev   float64 // Population standard deviation of chunk sizes
}

// ComputeStats reduces a materialized chunk sequence to statistics. An empty
// sequence yields zero for every size-derived field; this is a defined
// result, not an error.
func ComputeStats(chunks []Chunk, totalSize int) Stats {
	if len(chunks) == 0 {
		return Stats{TotalSize: totalSize}
	}

	sum := 0
	minSize := chunks[0].Length
	maxSize := chunks[0].Length

	for _, chunk := range chunks {
		sum += chunk.Length

		if chunk.Length < minSize {
			minSize = chunk.Length
		}

		if chunk.Length > maxSize {
			maxSize = chunk.Length
		}
	}

	mean := float64(sum) / float64(len(chunks))

	var variance float64

	for _, chunk := range chunks {
		diff := float64(chunk.Length) - mean
		variance += diff * diff
	}

	variance /= float64(len(chunks))

	return Stats{
		ChunkCount:   len(chunks),
		TotalSize:    totalSize,
		AvgChunkSize: mean,
		MinChunkSize: minSize,
		MaxChunkSize: maxSize,
		SizeStddev:   math.Sqrt(variance),
	}
}
