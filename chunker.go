package seqcdc

// Chunk is a non-owning view over a contiguous range of the source buffer.
// Data points into the caller's buffer and is valid only as long as the
// caller retains it; the chunker never copies bytes.
type Chunk struct {
	Start  int    // Offset of the chunk in the source buffer
	Length int    // Chunk size in bytes
	Data   []byte // Sub-slice of the source buffer
}

// End returns the offset one past the last byte of the chunk.
func (c Chunk) End() int {
	return c.Start + c.Length
}

// Iterator produces the chunks of a buffer one at a time. The sequence is
// finite, forward-only and not restartable; create a new iterator to rescan
// the same buffer.
type Iterator struct {
	chunker  *Chunker
	data     []byte
	position int
}

// Chunks returns an iterator over all chunks of data.
func (c *Chunker) Chunks(data []byte) *Iterator {
	return &Iterator{
		chunker: c,
		data:    data,
	}
}

// Next returns the next chunk and true, or the zero Chunk and false once the
// buffer is exhausted.
func (it *Iterator) Next() (Chunk, bool) {
	if it.position >= len(it.data) {
		return Chunk{}, false
	}

	remaining := it.data[it.position:]

	cut := it.chunker.FindCutpoint(remaining, len(remaining))
	if cut > len(remaining) {
		cut = len(remaining)
	}

	// Unreachable given the finder's guarantees, but an empty chunk must
	// never be emitted.
	if cut == 0 {
		return Chunk{}, false
	}

	chunk := Chunk{
		Start:  it.position,
		Length: cut,
		Data:   remaining[:cut],
	}

	it.position += cut

	return chunk, true
}

// ChunkAll materializes every chunk of data into a slice.
func (c *Chunker) ChunkAll(data []byte) []Chunk {
	var chunks []Chunk

	it := c.Chunks(data)

	for {
		chunk, ok := it.Next()
		if !ok {
			break
		}

		chunks = append(chunks, chunk)
	}

	return chunks
}

// First returns the first chunk of data, or false if data is empty.
func (c *Chunker) First(data []byte) (Chunk, bool) {
	return c.Chunks(data).Next()
}

// Stats chunks data and returns statistics over the resulting chunk sizes.
func (c *Chunker) Stats(data []byte) Stats {
	return ComputeStats(c.ChunkAll(data), len(data))
}
