package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/structbio/bcif/format"
)

func TestAutoChain_RunsGetRunLength(t *testing.T) {
	in := Numbers[int32]{1, 1, 1, 1, 2, 2, 2, 2}

	chain := AutoChain(in)
	require.Equal(t, format.KindRunLength, chain[0].Kind())

	raw, steps, err := Encode(in, chain)
	require.NoError(t, err)

	decoded, err := Decode(raw, steps)
	require.NoError(t, err)
	require.Equal(t, in, decoded)
}

func TestAutoChain_MonotonicGetsDelta(t *testing.T) {
	in := Numbers[int32]{100, 101, 102, 104, 107, 110}

	chain := AutoChain(in)
	require.Equal(t, format.KindDelta, chain[0].Kind())

	raw, steps, err := Encode(in, chain)
	require.NoError(t, err)

	decoded, err := Decode(raw, steps)
	require.NoError(t, err)
	require.Equal(t, in, decoded)
}

func TestAutoChain_IrregularIntsGetPackingOnly(t *testing.T) {
	in := Numbers[int32]{9, -4, 200, 3, -77, 18}

	chain := AutoChain(in)
	require.Len(t, chain, 2)
	require.Equal(t, format.KindIntegerPacking, chain[0].Kind())
	require.Equal(t, format.KindByteArray, chain[1].Kind())
}

func TestAutoChain_WideIntsStayOnByteArray(t *testing.T) {
	in := Numbers[int64]{5_000_000_000, 5_000_000_001, 5_000_000_002, 5_000_000_003}

	chain := AutoChain(in)
	require.Equal(t, []Step{ByteArray{}}, chain)

	// The probed chain must always encode its own input.
	raw, steps, err := Encode(in, chain)
	require.NoError(t, err)

	decoded, err := Decode(raw, steps)
	require.NoError(t, err)
	require.Equal(t, in, decoded)
}

func TestAutoChain_FloatsStayOnByteArray(t *testing.T) {
	require.Equal(t, []Step{ByteArray{}}, AutoChain(Numbers[float64]{1.5, 2.5}))
	require.Equal(t, []Step{ByteArray{}}, AutoChain(Numbers[float32]{1.5}))
}

func TestAutoChain_StringsGetStringArrayWithProbedIndexChain(t *testing.T) {
	in := Strings{"ALA", "ALA", "ALA", "ALA", "GLY", "GLY", "GLY", "GLY"}

	chain := AutoChain(in)
	require.Len(t, chain, 1)
	sa := chain[0].(StringArray)
	require.Equal(t, format.KindRunLength, sa.DataEncoding[0].Kind())

	raw, steps, err := Encode(in, chain)
	require.NoError(t, err)

	decoded, err := Decode(raw, steps)
	require.NoError(t, err)
	require.Equal(t, in, decoded)
}
