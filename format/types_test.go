package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataType_Size(t *testing.T) {
	require.Equal(t, 1, TypeInt8.Size())
	require.Equal(t, 1, TypeUint8.Size())
	require.Equal(t, 2, TypeInt16.Size())
	require.Equal(t, 4, TypeInt32.Size())
	require.Equal(t, 4, TypeFloat32.Size())
	require.Equal(t, 8, TypeInt64.Size())
	require.Equal(t, 8, TypeFloat64.Size())
	require.Equal(t, 0, DataType(0).Size())
	require.Equal(t, 0, DataType(99).Size())
}

func TestDataType_WireCodes(t *testing.T) {
	// Codes are fixed by the published format and must never drift.
	require.EqualValues(t, 1, TypeInt8)
	require.EqualValues(t, 2, TypeInt16)
	require.EqualValues(t, 3, TypeInt32)
	require.EqualValues(t, 4, TypeUint8)
	require.EqualValues(t, 5, TypeUint16)
	require.EqualValues(t, 6, TypeUint32)
	require.EqualValues(t, 32, TypeFloat32)
	require.EqualValues(t, 33, TypeFloat64)
}

func TestDataType_Predicates(t *testing.T) {
	require.True(t, TypeFloat32.IsFloat())
	require.False(t, TypeInt32.IsFloat())
	require.True(t, TypeUint16.IsUnsigned())
	require.False(t, TypeInt16.IsUnsigned())
	require.True(t, TypeUint64.Valid())
	require.False(t, DataType(12).Valid())
}

func TestMaskValue_Codes(t *testing.T) {
	require.EqualValues(t, 0, MaskPresent)
	require.EqualValues(t, 1, MaskInapplicable)
	require.EqualValues(t, 2, MaskMissing)
}
