package bcif

import (
	"fmt"

	"github.com/structbio/bcif/encoding"
	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

// Column is one named field of a category: an encoded value payload plus an
// optional encoded mask marking rows as present, not-applicable or unknown.
type Column struct {
	name string
	data *EncodedData
	mask *EncodedData
	rows int // expected decoded length; -1 when unattached
}

// NewColumn wraps already-encoded payloads into a column. mask may be nil,
// meaning every row is present.
func NewColumn(name string, data, mask *EncodedData) (*Column, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty column name", errs.ErrUsage)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: column %q without data", errs.ErrUsage, name)
	}

	return &Column{name: name, data: data, mask: mask, rows: -1}, nil
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Rows returns the row count declared by the owning category, or -1 for a
// column not yet attached to one.
func (c *Column) Rows() int { return c.rows }

// Data returns the encoded value payload.
func (c *Column) Data() *EncodedData { return c.data }

// MaskData returns the encoded mask payload, or nil when the column has no
// mask.
func (c *Column) MaskData() *EncodedData { return c.mask }

// HasMask reports whether the column carries a mask.
func (c *Column) HasMask() bool { return c.mask != nil }

// Values decodes the value payload. When the column belongs to a category,
// the decoded length is checked against the category's declared row count;
// a mismatch is a format error. The decoded array is cached, so repeated
// calls are cheap.
//
// Rows whose mask is not MaskPresent still carry a value slot here; consult
// Mask to distinguish them.
func (c *Column) Values() (encoding.Array, error) {
	arr, err := c.data.Decode()
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", c.name, err)
	}
	if c.rows >= 0 && arr.Len() != c.rows {
		return nil, fmt.Errorf("%w: column %q decodes to %d values, category declares %d rows",
			errs.ErrFormat, c.name, arr.Len(), c.rows)
	}

	return arr, nil
}

// Mask decodes the mask payload into per-row codes. A nil result with a nil
// error means the column has no mask and every row is present.
func (c *Column) Mask() ([]format.MaskValue, error) {
	if c.mask == nil {
		return nil, nil
	}

	arr, err := c.mask.Decode()
	if err != nil {
		return nil, fmt.Errorf("column %q mask: %w", c.name, err)
	}
	codes, ok := encoding.Ints(arr)
	if !ok {
		return nil, fmt.Errorf("%w: column %q mask decodes to a non-integer payload", errs.ErrFormat, c.name)
	}
	if c.rows >= 0 && len(codes) != c.rows {
		return nil, fmt.Errorf("%w: column %q mask decodes to %d values, category declares %d rows",
			errs.ErrFormat, c.name, len(codes), c.rows)
	}

	out := make([]format.MaskValue, len(codes))
	for i, v := range codes {
		if v < 0 || v > int64(format.MaskMissing) {
			return nil, fmt.Errorf("%w: column %q mask code %d at row %d", errs.ErrFormat, c.name, v, i)
		}
		out[i] = format.MaskValue(v)
	}

	return out, nil
}

// Equal reports deep structural equality of decoded content: element-wise
// equal values and equivalent masks. A column without a mask equals one
// whose mask is all-present. Encoding chains are not compared; the same
// data encoded two different ways is still equal.
func (c *Column) Equal(other *Column) bool {
	if c == nil || other == nil {
		return c == other
	}
	if !c.data.Equal(other.data) {
		return false
	}

	am, err := c.Mask()
	if err != nil {
		return false
	}
	bm, err := other.Mask()
	if err != nil {
		return false
	}

	n := 0
	if arr, err := c.Values(); err == nil {
		n = arr.Len()
	} else {
		return false
	}
	for i := 0; i < n; i++ {
		if maskAt(am, i) != maskAt(bm, i) {
			return false
		}
	}

	return true
}

func maskAt(m []format.MaskValue, i int) format.MaskValue {
	if m == nil || i >= len(m) {
		return format.MaskPresent
	}

	return m[i]
}
