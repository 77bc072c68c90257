// Package seqcdc provides content-defined chunking (CDC) based on monotonic
// byte-sequence detection instead of a rolling hash.
//
// # Overview
//
// SeqCDC divides a byte buffer into variable-size chunks whose boundaries are
// aligned to the content: a sufficiently long run of increasing (or
// decreasing) byte values marks a cut point. Small local edits therefore only
// shift nearby boundaries, which is the property deduplication, delta-sync
// and incremental-backup systems rely on.
//
// Unlike hash-based chunkers, SeqCDC never computes a fingerprint. Boundary
// detection is a smoothed slope detector: a run-length counter accumulates
// reinforcing comparisons, an opposing-slope counter triggers a sparse
// skip-ahead once a region looks unstructured, and runs of identical bytes
// are absorbed without disturbing either counter.
//
// # Quick Start
//
//	chunker, err := seqcdc.NewChunker()
//	if err != nil {
//	    // invalid configuration
//	}
//
//	it := chunker.Chunks(data)
//	for {
//	    chunk, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    // Process chunk.Data (a sub-slice of data, never a copy)
//	}
//
// Custom configuration:
//
//	chunker, err := seqcdc.NewChunker(
//	    seqcdc.WithSeqThreshold(10),
//	    seqcdc.WithMode(seqcdc.Decreasing),
//	    seqcdc.WithBlockSizes(2048, 4096, 32768),
//	)
//
// # Algorithm
//
// For each chunk the finder scans the remaining buffer:
//  1. Skip to the minimum block size without comparing anything.
//  2. Compare each byte with its predecessor as a signed difference.
//  3. Equal bytes are absorbed: the cursor advances, the counters do not move.
//  4. A run of reinforcing comparisons of length seqThreshold cuts the chunk.
//  5. jumpTrigger opposing comparisons cause a jumpSize skip-ahead, bounding
//     the scan cost over data with no usable monotonic signal.
//  6. The scan is capped at the maximum block size.
//
// # Concurrency
//
// A Chunker is immutable after construction and safe to share across
// goroutines. Iterators hold only a private cursor over a buffer they never
// mutate, so any number of iterators may run concurrently over the same or
// different buffers.
package seqcdc
