package seqcdc

// Chunker implements sequence-based content-defined chunking. It is an
// immutable parameter set after construction; all methods are safe for
// concurrent use.
type Chunker struct {
	seqThreshold int
	jumpTrigger  int
	jumpSize     int
	mode         Mode
	minBlockSize int
	avgBlockSize int
	maxBlockSize int
}

// NewChunker creates a new Chunker with the given options. The configuration
// is validated eagerly; chunking itself never fails once construction
// succeeds.
func NewChunker(opts ...Option) (*Chunker, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Chunker{
		seqThreshold: cfg.seqThreshold,
		jumpTrigger:  cfg.jumpTrigger,
		jumpSize:     cfg.jumpSize,
		mode:         cfg.mode,
		minBlockSize: cfg.minBlockSize,
		avgBlockSize: cfg.avgBlockSize,
		maxBlockSize: cfg.maxBlockSize,
	}, nil
}

// FindCutpoint returns the offset at which the next chunk ends, relative to
// the start of buff. size is the number of bytes of buff eligible for this
// chunk; callers normally pass len(buff). The returned offset lies in
// [1, size] for any size > 0.
//
// The finder is a pure function of its inputs: it keeps no state between
// calls and never reads outside buff[:size].
func (c *Chunker) FindCutpoint(buff []byte, size int) int {
	// Too short to scan: the remainder becomes one final chunk.
	if size < c.minBlockSize {
		return size
	}

	limit := size
	if limit > c.maxBlockSize {
		limit = c.maxBlockSize
	}

	// Capture config into locals for the hot loop.
	threshold := c.seqThreshold
	trigger := c.jumpTrigger
	jump := c.jumpSize
	decreasing := c.mode == Decreasing

	pos := c.minBlockSize
	runLength := 0
	opposing := 0

	for pos < limit && pos < len(buff) {
		diff := int(buff[pos]) - int(buff[pos-1])

		// Equal bytes are absorbed: flat runs neither reinforce nor
		// oppose the slope.
		if diff == 0 {
			pos++
			continue
		}

		opposes := diff < 0
		if decreasing {
			opposes = diff > 0
		}

		if opposes {
			opposing++
			runLength = 0
		} else {
			runLength++
		}

		if runLength >= threshold {
			return pos
		}

		if opposing >= trigger {
			// The region looks unstructured; sample sparsely instead
			// of comparing every byte. Overshooting the limit caps the
			// chunk rather than resuming the scan.
			pos += jump
			opposing = 0
			runLength = 0
		} else {
			pos++
		}
	}

	return limit
}

// SeqThreshold returns the configured run-length threshold.
func (c *Chunker) SeqThreshold() int {
	return c.seqThreshold
}

// Mode returns the configured sequence detection mode.
func (c *Chunker) Mode() Mode {
	return c.mode
}

// MinBlockSize returns the minimum chunk size.
func (c *Chunker) MinBlockSize() int {
	return c.minBlockSize
}

// AvgBlockSize returns the informational target average chunk size.
func (c *Chunker) AvgBlockSize() int {
	return c.avgBlockSize
}

// MaxBlockSize returns the maximum chunk size.
func (c *Chunker) MaxBlockSize() int {
	return c.maxBlockSize
}
