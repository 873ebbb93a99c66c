package bcif

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/structbio/bcif/encoding"
	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
	"github.com/structbio/bcif/internal/framing"
)

func TestEncodedData_DefaultChainRoundTrip(t *testing.T) {
	d, err := NewEncodedData(encoding.Numbers[int32]{1, 2, 3})
	require.NoError(t, err)

	steps, err := d.Steps()
	require.NoError(t, err)
	require.Len(t, steps, 1)
	require.Equal(t, format.KindByteArray, steps[0].Kind())

	arr, err := d.Decode()
	require.NoError(t, err)
	require.Equal(t, encoding.Numbers[int32]{1, 2, 3}, arr)
}

func TestEncodedData_DecodeIsCached(t *testing.T) {
	d, err := NewEncodedData(encoding.Strings{"a", "b", "a"})
	require.NoError(t, err)

	first, err := d.Decode()
	require.NoError(t, err)
	second, err := d.Decode()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEncodedData_EqualAcrossDifferentChains(t *testing.T) {
	values := encoding.Numbers[int32]{7, 7, 7, 7, 8, 9, 10, 11}

	plain, err := NewEncodedData(values)
	require.NoError(t, err)
	packed, err := NewEncodedData(values, encoding.AutoChain(values)...)
	require.NoError(t, err)

	require.True(t, plain.Equal(packed))
	require.True(t, packed.Equal(plain))

	other, err := NewEncodedData(encoding.Numbers[int32]{7, 7, 7, 7, 8, 9, 10, 12})
	require.NoError(t, err)
	require.False(t, plain.Equal(other))
}

func TestEncodedData_DigestMatchesContentNotChain(t *testing.T) {
	values := encoding.Numbers[int32]{5, 4, 3, 2, 1, 0}

	a, err := NewEncodedData(values)
	require.NoError(t, err)
	b, err := NewEncodedData(values, encoding.Delta{}, encoding.IntegerPacking{}, encoding.ByteArray{})
	require.NoError(t, err)

	da, err := a.Digest()
	require.NoError(t, err)
	db, err := b.Digest()
	require.NoError(t, err)
	require.Equal(t, da, db)

	c, err := NewEncodedData(encoding.Numbers[int32]{5, 4, 3, 2, 1, 1})
	require.NoError(t, err)
	dc, err := c.Digest()
	require.NoError(t, err)
	require.NotEqual(t, da, dc)
}

func TestEncodedData_DigestDistinguishesElementTypes(t *testing.T) {
	a, err := NewEncodedData(encoding.Numbers[int32]{1, 2})
	require.NoError(t, err)
	b, err := NewEncodedData(encoding.Numbers[int16]{1, 2})
	require.NoError(t, err)

	da, err := a.Digest()
	require.NoError(t, err)
	db, err := b.Digest()
	require.NoError(t, err)
	require.NotEqual(t, da, db)
}

func TestEncodedData_WireDescriptorsParseLazily(t *testing.T) {
	d, err := newWireData(framing.Data{
		Encoding: []framing.Encoding{{Kind: "NotARealEncoding"}},
		Data:     []byte{1, 2, 3},
	})
	require.NoError(t, err)

	_, err = d.Decode()
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func TestEncodedData_EmptyWireChainRejected(t *testing.T) {
	_, err := newWireData(framing.Data{Data: []byte{1}})
	require.ErrorIs(t, err, errs.ErrFormat)
}

func TestEncodedData_EqualNilSemantics(t *testing.T) {
	d, err := NewEncodedData(encoding.Numbers[int32]{1})
	require.NoError(t, err)

	var nilData *EncodedData
	require.False(t, d.Equal(nil))
	require.True(t, nilData.Equal(nil))
	require.True(t, d.Equal(d))
}
