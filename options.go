package seqcdc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSeqThreshold is returned when seqThreshold is 0.
	ErrInvalidSeqThreshold = errors.New("seqThreshold must be greater than 0")

	// ErrInvalidJumpSize is returned when jumpSize is 0.
	ErrInvalidJumpSize = errors.New("jumpSize must be greater than 0")

	// ErrInvalidMinBlockSize is returned when minBlockSize is 0.
	ErrInvalidMinBlockSize = errors.New("minBlockSize must be greater than 0")

	// ErrInvalidMaxBlockSize is returned when maxBlockSize is smaller than minBlockSize.
	ErrInvalidMaxBlockSize = errors.New("maxBlockSize must be greater than or equal to minBlockSize")

	// ErrInvalidMode is returned when the mode is neither Increasing nor Decreasing.
	ErrInvalidMode = errors.New("mode must be Increasing or Decreasing")
)

const (
	// DefaultSeqThreshold is the default run length needed to declare a boundary.
	DefaultSeqThreshold = 5

	// DefaultJumpTrigger is the default count of opposing comparisons before skipping ahead.
	DefaultJumpTrigger = 50

	// DefaultJumpSize is the default number of bytes skipped per trigger.
	DefaultJumpSize = 256

	// DefaultMinBlockSize is the default minimum chunk size (4 KiB).
	DefaultMinBlockSize = 4096

	// DefaultAvgBlockSize is the default target average chunk size (8 KiB).
	// It is informational: the algorithm never enforces it directly.
	DefaultAvgBlockSize = 8192

	// DefaultMaxBlockSize is the default maximum chunk size (16 KiB).
	DefaultMaxBlockSize = 16384
)

// Mode selects which sign of byte difference counts as reinforcing a run.
type Mode uint8

const (
	// Increasing detects runs of increasing byte values.
	Increasing Mode = iota

	// Decreasing detects runs of decreasing byte values.
	Decreasing
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Increasing:
		return "Increasing"
	case Decreasing:
		return "Decreasing"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Option is a function that configures a Chunker.
type Option func(*config) error

// config holds the configuration for chunking.
type config struct {
	seqThreshold int
	jumpTrigger  int
	jumpSize     int
	mode         Mode
	minBlockSize int
	avgBlockSize int
	maxBlockSize int
}

func defaultConfig() config {
	return config{
		seqThreshold: DefaultSeqThreshold,
		jumpTrigger:  DefaultJumpTrigger,
		jumpSize:     DefaultJumpSize,
		mode:         Increasing,
		minBlockSize: DefaultMinBlockSize,
		avgBlockSize: DefaultAvgBlockSize,
		maxBlockSize: DefaultMaxBlockSize,
	}
}

// validate checks that the configuration is valid.
func (c *config) validate() error {
	if c.seqThreshold <= 0 {
		return ErrInvalidSeqThreshold
	}

	if c.minBlockSize <= 0 {
		return ErrInvalidMinBlockSize
	}

	if c.maxBlockSize < c.minBlockSize {
		return fmt.Errorf("%w: maxBlockSize (%d), minBlockSize (%d)", ErrInvalidMaxBlockSize, c.maxBlockSize, c.minBlockSize)
	}

	if c.jumpSize <= 0 {
		return ErrInvalidJumpSize
	}

	return nil
}

// WithSeqThreshold sets the number of consecutive reinforcing comparisons
// needed to declare a chunk boundary.
func WithSeqThreshold(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return ErrInvalidSeqThreshold
		}

		c.seqThreshold = n

		return nil
	}
}

// WithJumpTrigger sets the number of opposing comparisons before the scan
// skips ahead. A trigger of 0 makes every opposing comparison jump.
func WithJumpTrigger(n int) Option {
	return func(c *config) error {
		c.jumpTrigger = n

		return nil
	}
}

// WithJumpSize sets the number of bytes skipped when the jump trigger is hit.
func WithJumpSize(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return ErrInvalidJumpSize
		}

		c.jumpSize = n

		return nil
	}
}

// WithMode sets the sequence detection mode.
func WithMode(m Mode) Option {
	return func(c *config) error {
		if m > Decreasing {
			return fmt.Errorf("%w: got %d", ErrInvalidMode, m)
		}

		c.mode = m

		return nil
	}
}

// WithMinBlockSize sets the minimum chunk size.
func WithMinBlockSize(size int) Option {
	return func(c *config) error {
		if size <= 0 {
			return ErrInvalidMinBlockSize
		}

		c.minBlockSize = size

		return nil
	}
}

// WithAvgBlockSize sets the target average chunk size. The value is
// informational and does not influence boundary detection.
func WithAvgBlockSize(size int) Option {
	return func(c *config) error {
		c.avgBlockSize = size

		return nil
	}
}

// WithMaxBlockSize sets the maximum chunk size. The ordering constraint
// against the minimum is checked at construction.
func WithMaxBlockSize(size int) Option {
	return func(c *config) error {
		c.maxBlockSize = size

		return nil
	}
}

// WithBlockSizes sets the minimum, average and maximum chunk size at once.
func WithBlockSizes(minSize, avgSize, maxSize int) Option {
	return func(c *config) error {
		if minSize <= 0 {
			return ErrInvalidMinBlockSize
		}

		c.minBlockSize = minSize
		c.avgBlockSize = avgSize
		c.maxBlockSize = maxSize

		return nil
	}
}
