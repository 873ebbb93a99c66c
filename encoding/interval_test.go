package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/structbio/bcif/errs"
)

func TestIntervalQuantization_RoundTrip_ExactLevels(t *testing.T) {
	in := Numbers[float64]{0, 1, 2, 1, 0}

	raw, steps, err := Encode(in, []Step{IntervalQuantization{Min: 0, Max: 2, NumSteps: 3}, ByteArray{}})
	require.NoError(t, err)

	decoded, err := Decode(raw, steps)
	require.NoError(t, err)
	require.Equal(t, in, decoded)
}

func TestIntervalQuantization_Encode_ClampsOutOfRange(t *testing.T) {
	out, _, err := encodeIntervalQuantization(Numbers[float64]{-5, 0.6, 99},
		IntervalQuantization{Min: 0, Max: 2, NumSteps: 3})
	require.NoError(t, err)
	require.Equal(t, Numbers[int32]{0, 1, 2}, out)
}

func TestIntervalQuantization_Decode_LevelOutOfRangeRejected(t *testing.T) {
	_, err := decodeIntervalQuantization(Numbers[int32]{3},
		IntervalQuantization{Min: 0, Max: 2, NumSteps: 3})
	require.ErrorIs(t, err, errs.ErrEncodingParameter)

	_, err = decodeIntervalQuantization(Numbers[int32]{-1},
		IntervalQuantization{Min: 0, Max: 2, NumSteps: 3})
	require.ErrorIs(t, err, errs.ErrEncodingParameter)
}

func TestIntervalQuantization_Validate_Rejected(t *testing.T) {
	_, err := decodeIntervalQuantization(Numbers[int32]{0},
		IntervalQuantization{Min: 0, Max: 2, NumSteps: 1})
	require.ErrorIs(t, err, errs.ErrEncodingParameter)

	_, err = decodeIntervalQuantization(Numbers[int32]{0},
		IntervalQuantization{Min: 2, Max: 0, NumSteps: 3})
	require.ErrorIs(t, err, errs.ErrEncodingParameter)
}

func TestIntervalQuantization_Encode_DegenerateIntervalRejected(t *testing.T) {
	_, _, err := encodeIntervalQuantization(Numbers[float64]{1},
		IntervalQuantization{Min: 1, Max: 1, NumSteps: 3})
	require.ErrorIs(t, err, errs.ErrEncodingParameter)
}

func TestIntervalQuantization_PreservesFloat32SourceType(t *testing.T) {
	in := Numbers[float32]{0, 2}

	raw, steps, err := Encode(in, []Step{IntervalQuantization{Min: 0, Max: 2, NumSteps: 3}, ByteArray{}})
	require.NoError(t, err)

	decoded, err := Decode(raw, steps)
	require.NoError(t, err)
	require.Equal(t, in, decoded)
}
