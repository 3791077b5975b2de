package codec_test

import (
	"testing"

	"github.com/introprep/assay/internal/assay/codec"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeDetailsRoundTrip(t *testing.T) {
	t.Parallel()

	payload := []map[string]any{
		{
			"question_no":      float64(1),
			"matched_keywords": "teamwork, ownership",
			"keyword_count":    float64(2),
			"score":            20.0,
			"best_match":       "experience",
		},
		{
			"question_no": float64(2),
			"passed":      true,
			"nested":      map[string]any{"similarity": 0.87},
		},
	}

	text, err := codec.EncodeDetails(payload)
	require.NoError(t, err)
	require.NotEmpty(t, text)

	decoded, ok := codec.DecodeDetails(text)
	require.True(t, ok)
	require.Equal(t, payload, decoded)
}

func TestEncodeDetailsEmpty(t *testing.T) {
	t.Parallel()

	text, err := codec.EncodeDetails(nil)
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestDecodeDetailsLenient(t *testing.T) {
	t.Parallel()

	// Absent text is an empty payload, not an error.
	decoded, ok := codec.DecodeDetails("")
	require.True(t, ok)
	require.Empty(t, decoded)

	// Malformed text decodes to an empty payload and reports the problem.
	decoded, ok = codec.DecodeDetails("{not json")
	require.False(t, ok)
	require.Empty(t, decoded)

	// A JSON value of the wrong shape is malformed too.
	decoded, ok = codec.DecodeDetails(`"just a string"`)
	require.False(t, ok)
	require.Empty(t, decoded)
}
