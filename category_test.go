package bcif

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/structbio/bcif/encoding"
	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

func TestNewCategory_Validation(t *testing.T) {
	_, err := NewCategory("", 1)
	require.ErrorIs(t, err, errs.ErrUsage)

	_, err = NewCategory("atom_site", -1)
	require.ErrorIs(t, err, errs.ErrUsage)

	cat, err := NewCategory("atom_site", 0)
	require.NoError(t, err)
	require.Equal(t, "atom_site", cat.Name())
	require.Equal(t, 0, cat.Rows())
}

func TestCategory_SetColumn_LengthMustMatchRowCount(t *testing.T) {
	cat, err := NewCategory("cell", 2)
	require.NoError(t, err)

	err = cat.SetColumn("length_a", encoding.Numbers[float64]{10.0, 20.0, 30.0})
	require.ErrorIs(t, err, errs.ErrUsage)

	err = cat.SetColumn("length_a", encoding.Numbers[float64]{10.0, 20.0})
	require.NoError(t, err)
}

func TestCategory_SetColumn_InsertionOrderAndReplacement(t *testing.T) {
	cat, err := NewCategory("atom_site", 3)
	require.NoError(t, err)

	require.NoError(t, cat.SetColumn("x", encoding.Numbers[float32]{1, 2, 3}))
	require.NoError(t, cat.SetColumn("y", encoding.Numbers[float32]{4, 5, 6}))
	require.NoError(t, cat.SetColumn("z", encoding.Numbers[float32]{7, 8, 9}))
	require.Equal(t, []string{"x", "y", "z"}, cat.ColumnNames())

	// Replacement keeps the position.
	require.NoError(t, cat.SetColumn("y", encoding.Numbers[float32]{40, 50, 60}))
	require.Equal(t, []string{"x", "y", "z"}, cat.ColumnNames())

	arr, err := cat.Column("y").Values()
	require.NoError(t, err)
	require.Equal(t, encoding.Numbers[float32]{40, 50, 60}, arr)
}

func TestCategory_RemoveColumn(t *testing.T) {
	cat, err := NewCategory("atom_site", 1)
	require.NoError(t, err)
	require.NoError(t, cat.SetColumn("x", encoding.Numbers[float32]{1}))
	require.NoError(t, cat.SetColumn("y", encoding.Numbers[float32]{2}))

	require.True(t, cat.RemoveColumn("x"))
	require.False(t, cat.RemoveColumn("x"))
	require.Nil(t, cat.Column("x"))
	require.Equal(t, []string{"y"}, cat.ColumnNames())

	arr, err := cat.Column("y").Values()
	require.NoError(t, err)
	require.Equal(t, encoding.Numbers[float32]{2}, arr)
}

func TestCategory_ColumnMask_RoundTrip(t *testing.T) {
	cat, err := NewCategory("atom_site", 3)
	require.NoError(t, err)

	mask := []format.MaskValue{format.MaskPresent, format.MaskMissing, format.MaskPresent}
	require.NoError(t, cat.SetColumn("occupancy", encoding.Numbers[int32]{1, 2, 3}, WithMask(mask)))

	col := cat.Column("occupancy")
	require.True(t, col.HasMask())
	require.Equal(t, 3, col.Rows())

	got, err := col.Mask()
	require.NoError(t, err)
	require.Equal(t, mask, got)

	// Masked rows still carry their value slot.
	arr, err := col.Values()
	require.NoError(t, err)
	require.Equal(t, encoding.Numbers[int32]{1, 2, 3}, arr)
}

func TestCategory_MaskDistinguishesInapplicableFromMissing(t *testing.T) {
	cat, err := NewCategory("atom_site", 2)
	require.NoError(t, err)

	require.NoError(t, cat.SetColumn("b_iso", encoding.Numbers[int32]{0, 0},
		WithMask([]format.MaskValue{format.MaskInapplicable, format.MaskMissing})))

	got, err := cat.Column("b_iso").Mask()
	require.NoError(t, err)
	require.Equal(t, format.MaskInapplicable, got[0])
	require.Equal(t, format.MaskMissing, got[1])
}

func TestCategory_SetColumn_MaskLengthMustMatch(t *testing.T) {
	cat, err := NewCategory("atom_site", 2)
	require.NoError(t, err)

	err = cat.SetColumn("x", encoding.Numbers[int32]{1, 2},
		WithMask([]format.MaskValue{format.MaskPresent}))
	require.ErrorIs(t, err, errs.ErrUsage)
}

func TestColumn_NoMaskEqualsAllPresentMask(t *testing.T) {
	a, err := NewCategory("atom_site", 2)
	require.NoError(t, err)
	require.NoError(t, a.SetColumn("x", encoding.Numbers[int32]{1, 2}))

	b, err := NewCategory("atom_site", 2)
	require.NoError(t, err)
	require.NoError(t, b.SetColumn("x", encoding.Numbers[int32]{1, 2},
		WithMask([]format.MaskValue{format.MaskPresent, format.MaskPresent})))

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))

	c, err := NewCategory("atom_site", 2)
	require.NoError(t, err)
	require.NoError(t, c.SetColumn("x", encoding.Numbers[int32]{1, 2},
		WithMask([]format.MaskValue{format.MaskPresent, format.MaskMissing})))

	require.False(t, a.Equal(c))
}

func TestCategory_EqualIgnoresEncodingChains(t *testing.T) {
	values := encoding.Numbers[int32]{3, 3, 3, 3, 4, 4, 4, 4}

	a, err := NewCategory("atom_site", 8)
	require.NoError(t, err)
	require.NoError(t, a.SetColumn("id", values))

	b, err := NewCategory("atom_site", 8)
	require.NoError(t, err)
	require.NoError(t, b.SetColumn("id", values, WithAutoChain()))

	require.True(t, a.Equal(b))
}

func TestCategory_EqualRequiresSameColumnOrder(t *testing.T) {
	a, err := NewCategory("atom_site", 1)
	require.NoError(t, err)
	require.NoError(t, a.SetColumn("x", encoding.Numbers[int32]{1}))
	require.NoError(t, a.SetColumn("y", encoding.Numbers[int32]{2}))

	b, err := NewCategory("atom_site", 1)
	require.NoError(t, err)
	require.NoError(t, b.SetColumn("y", encoding.Numbers[int32]{2}))
	require.NoError(t, b.SetColumn("x", encoding.Numbers[int32]{1}))

	require.False(t, a.Equal(b))
}

func TestCategory_Decoded(t *testing.T) {
	cat, err := NewCategory("cell", 1)
	require.NoError(t, err)
	require.NoError(t, cat.SetColumn("length_a", encoding.Numbers[float64]{10.0}))
	require.NoError(t, cat.SetColumn("space_group", encoding.Strings{"P 1"}))

	decoded, err := cat.Decoded()
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	require.Equal(t, encoding.Numbers[float64]{10.0}, decoded["length_a"])
	require.Equal(t, encoding.Strings{"P 1"}, decoded["space_group"])
}

func TestColumn_RowCountMismatchSurfacesOnAccess(t *testing.T) {
	cat, err := NewCategory("atom_site", 2)
	require.NoError(t, err)

	data, err := NewEncodedData(encoding.Numbers[int32]{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, cat.SetColumnData("id", data, nil))

	_, err = cat.Column("id").Values()
	require.ErrorIs(t, err, errs.ErrFormat)
}
