package seqcdc

// Synthetic data generators for tests, benchmarks and examples. All output
// is deterministic.

// GenerateIncreasing returns size bytes of zeroes with seqCount evenly
// spaced runs of seqLen strictly increasing values.
func GenerateIncreasing(size, seqLen, seqCount int) []byte {
	data := make([]byte, size)

	spacing := size
	if seqCount > 1 {
		spacing = size / seqCount
	}

	for seq := 0; seq < seqCount; seq++ {
		start := seq * spacing

		end := start + seqLen
		if end > size {
			end = size
		}

		for i := start; i < end; i++ {
			data[i] = byte(i - start)
		}
	}

	return data
}

// GenerateDecreasing returns size bytes of 0xFF with seqCount evenly spaced
// runs of seqLen strictly decreasing values.
func GenerateDecreasing(size, seqLen, seqCount int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = 255
	}

	spacing := size
	if seqCount > 1 {
		spacing = size / seqCount
	}

	for seq := 0; seq < seqCount; seq++ {
		start := seq * spacing

		end := start + seqLen
		if end > size {
			end = size
		}

		for i := start; i < end; i++ {
			data[i] = byte(255 - (i - start))
		}
	}

	return data
}

// GenerateMixed returns size bytes interleaving increasing, decreasing and
// pseudo-random stretches.
func GenerateMixed(size int) []byte {
	data := make([]byte, size)

	for i := range data {
		switch i % 10 {
		case 0, 1, 2, 3, 4:
			data[i] = byte(i)
		case 5, 6, 7:
			data[i] = byte(255 - i)
		default:
			data[i] = byte(i * 7)
		}
	}

	return data
}

// GeneratePseudoRandom returns size bytes from a seeded linear congruential
// generator. The same seed always yields the same data.
func GeneratePseudoRandom(size int, seed uint64) []byte {
	data := make([]byte, size)
	state := seed

	for i := range data {
		state = state*1103515245 + 12345
		data[i] = byte(state >> 16)
	}

	return data
}
