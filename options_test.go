package seqcdc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalbasit/seqcdc"
)

func TestNewChunkerDefaults(t *testing.T) {
	t.Parallel()

	chunker, err := seqcdc.NewChunker()
	require.NoError(t, err)

	assert.Equal(t, seqcdc.DefaultSeqThreshold, chunker.SeqThreshold())
	assert.Equal(t, seqcdc.Increasing, chunker.Mode())
	assert.Equal(t, seqcdc.DefaultMinBlockSize, chunker.MinBlockSize())
	assert.Equal(t, seqcdc.DefaultAvgBlockSize, chunker.AvgBlockSize())
	assert.Equal(t, seqcdc.DefaultMaxBlockSize, chunker.MaxBlockSize())
}

func TestNewChunkerCustom(t *testing.T) {
	t.Parallel()

	chunker, err := seqcdc.NewChunker(
		seqcdc.WithSeqThreshold(10),
		seqcdc.WithMode(seqcdc.Decreasing),
		seqcdc.WithBlockSizes(2048, 4096, 32768),
	)
	require.NoError(t, err)

	assert.Equal(t, 10, chunker.SeqThreshold())
	assert.Equal(t, seqcdc.Decreasing, chunker.Mode())
	assert.Equal(t, 2048, chunker.MinBlockSize())
	assert.Equal(t, 4096, chunker.AvgBlockSize())
	assert.Equal(t, 32768, chunker.MaxBlockSize())
}

func TestOptionsValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []seqcdc.Option
		wantErr error
	}{
		{
			name: "valid default",
			opts: []seqcdc.Option{},
		},
		{
			name: "valid custom",
			opts: []seqcdc.Option{
				seqcdc.WithSeqThreshold(3),
				seqcdc.WithJumpTrigger(10),
				seqcdc.WithJumpSize(64),
				seqcdc.WithBlockSizes(1024, 2048, 4096),
			},
		},
		{
			name:    "zero seqThreshold",
			opts:    []seqcdc.Option{seqcdc.WithSeqThreshold(0)},
			wantErr: seqcdc.ErrInvalidSeqThreshold,
		},
		{
			name:    "zero minBlockSize",
			opts:    []seqcdc.Option{seqcdc.WithMinBlockSize(0)},
			wantErr: seqcdc.ErrInvalidMinBlockSize,
		},
		{
			name: "max below min",
			opts: []seqcdc.Option{
				seqcdc.WithMinBlockSize(8192),
				seqcdc.WithMaxBlockSize(4096),
			},
			wantErr: seqcdc.ErrInvalidMaxBlockSize,
		},
		{
			name:    "zero jumpSize",
			opts:    []seqcdc.Option{seqcdc.WithJumpSize(0)},
			wantErr: seqcdc.ErrInvalidJumpSize,
		},
		{
			name:    "unknown mode",
			opts:    []seqcdc.Option{seqcdc.WithMode(seqcdc.Mode(7))},
			wantErr: seqcdc.ErrInvalidMode,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			chunker, err := seqcdc.NewChunker(tt.opts...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, chunker)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, chunker)
		})
	}
}

// The error must identify which parameter failed so callers can fix it.
func TestValidationErrorsNameTheParameter(t *testing.T) {
	t.Parallel()

	_, err := seqcdc.NewChunker(seqcdc.WithSeqThreshold(0))
	require.ErrorContains(t, err, "seqThreshold")

	_, err = seqcdc.NewChunker(seqcdc.WithMinBlockSize(8192), seqcdc.WithMaxBlockSize(4096))
	require.ErrorContains(t, err, "maxBlockSize")

	_, err = seqcdc.NewChunker(seqcdc.WithJumpSize(0))
	require.ErrorContains(t, err, "jumpSize")
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Increasing", seqcdc.Increasing.String())
	assert.Equal(t, "Decreasing", seqcdc.Decreasing.String())
}
