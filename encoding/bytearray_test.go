package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

func TestByteArray_RoundTrip_AllTypes(t *testing.T) {
	arrays := []Array{
		Numbers[int8]{-128, -1, 0, 1, 127},
		Numbers[int16]{-32768, -1, 0, 1, 32767},
		Numbers[int32]{-2147483648, -1, 0, 1, 2147483647},
		Numbers[int64]{-9007199254740993, 0, 9007199254740993},
		Numbers[uint8]{0, 1, 255},
		Numbers[uint16]{0, 1, 65535},
		Numbers[uint32]{0, 1, 4294967295},
		Numbers[uint64]{0, 1, 18446744073709551615},
		Numbers[float32]{-1.5, 0, 1.5},
		Numbers[float64]{-2.5, 0, 2.5},
	}

	for _, arr := range arrays {
		t.Run(arr.DataType().String(), func(t *testing.T) {
			raw, steps, err := Encode(arr, []Step{ByteArray{}})
			require.NoError(t, err)
			require.Len(t, steps, 1)
			require.Equal(t, arr.DataType(), steps[0].(ByteArray).Type)

			decoded, err := Decode(raw, steps)
			require.NoError(t, err)
			require.True(t, Equal(arr, decoded))
		})
	}
}

func TestByteArray_Decode_LittleEndianFloat32(t *testing.T) {
	// 1.5 = 0x3FC00000, 2.5 = 0x40200000, little-endian on the wire.
	raw := []byte{0x00, 0x00, 0xC0, 0x3F, 0x00, 0x00, 0x20, 0x40}

	decoded, err := Decode(raw, []Step{ByteArray{Type: format.TypeFloat32}})
	require.NoError(t, err)
	require.Equal(t, Numbers[float32]{1.5, 2.5}, decoded)
}

func TestByteArray_Encode_LittleEndianFloat32(t *testing.T) {
	raw, _, err := Encode(Numbers[float32]{1.5, 2.5}, []Step{ByteArray{}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0xC0, 0x3F, 0x00, 0x00, 0x20, 0x40}, raw)
}

func TestByteArray_RoundTrip_Empty(t *testing.T) {
	raw, steps, err := Encode(Numbers[int32]{}, nil)
	require.NoError(t, err)
	require.Empty(t, raw)

	decoded, err := Decode(raw, steps)
	require.NoError(t, err)
	require.Equal(t, 0, decoded.Len())
	require.Equal(t, format.TypeInt32, decoded.DataType())
}

func TestByteArray_Decode_LengthMismatch(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3}, []Step{ByteArray{Type: format.TypeInt16}})
	require.ErrorIs(t, err, errs.ErrEncodingParameter)
}

func TestByteArray_Decode_InvalidType(t *testing.T) {
	_, err := Decode([]byte{1, 2}, []Step{ByteArray{Type: 99}})
	require.ErrorIs(t, err, errs.ErrEncodingParameter)
}

func TestByteArray_Encode_ExplicitNarrowing(t *testing.T) {
	raw, steps, err := Encode(Numbers[int32]{1, 2, 3}, []Step{ByteArray{Type: format.TypeInt8}})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, raw)
	require.Equal(t, format.TypeInt8, steps[0].(ByteArray).Type)

	_, _, err = Encode(Numbers[int32]{300}, []Step{ByteArray{Type: format.TypeInt8}})
	require.ErrorIs(t, err, errs.ErrEncodingParameter)
}

func TestByteArray_Encode_StringsRejected(t *testing.T) {
	_, _, err := Encode(Strings{"a"}, []Step{ByteArray{}})
	require.ErrorIs(t, err, errs.ErrEncodingParameter)
}
