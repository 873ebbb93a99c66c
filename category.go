package bcif

import (
	"fmt"

	"github.com/structbio/bcif/encoding"
	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

// Category is a named table: an ordered set of uniquely named columns
// sharing a declared row count.
type Category struct {
	name  string
	rows  int
	cols  []*Column
	index map[string]int
}

// NewCategory creates an empty category with the given name and row count.
func NewCategory(name string, rowCount int) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty category name", errs.ErrUsage)
	}
	if rowCount < 0 {
		return nil, fmt.Errorf("%w: negative row count %d", errs.ErrUsage, rowCount)
	}

	return &Category{name: name, rows: rowCount, index: make(map[string]int)}, nil
}

// Name returns the category name (without the leading underscore used in
// textual CIF).
func (c *Category) Name() string { return c.name }

// Rows returns the declared row count.
func (c *Category) Rows() int { return c.rows }

// Column returns the named column, or nil when absent.
func (c *Category) Column(name string) *Column {
	i, ok := c.index[name]
	if !ok {
		return nil
	}

	return c.cols[i]
}

// Columns returns the columns in insertion order. The slice is a copy; the
// columns are not.
func (c *Category) Columns() []*Column {
	out := make([]*Column, len(c.cols))
	copy(out, c.cols)

	return out
}

// ColumnNames returns the column names in insertion order.
func (c *Category) ColumnNames() []string {
	names := make([]string, len(c.cols))
	for i, col := range c.cols {
		names[i] = col.name
	}

	return names
}

// ColumnOption configures how SetColumn encodes a column.
type ColumnOption func(*columnConfig)

type columnConfig struct {
	chain []encoding.Step
	auto  bool
	mask  []format.MaskValue
}

// WithChain encodes the column with the given chain shape instead of the
// conservative passthrough. Data-dependent parameters are filled in by the
// encoder.
func WithChain(steps ...encoding.Step) ColumnOption {
	return func(cfg *columnConfig) { cfg.chain = steps }
}

// WithAutoChain probes the data and picks a compressing chain: run-length
// or delta plus integer packing for suitable integer columns, a packed
// index array for repetitive string columns.
func WithAutoChain() ColumnOption {
	return func(cfg *columnConfig) { cfg.auto = true }
}

// WithMask attaches a per-row mask. Its length must equal the category's
// row count.
func WithMask(mask []format.MaskValue) ColumnOption {
	return func(cfg *columnConfig) { cfg.mask = mask }
}

// SetColumn encodes values into a column, inserting it or replacing the
// column of the same name. Replacement keeps the column's position;
// insertion appends. The value length must equal the category's row count.
func (c *Category) SetColumn(name string, values encoding.Array, opts ...ColumnOption) error {
	if name == "" {
		return fmt.Errorf("%w: empty column name", errs.ErrUsage)
	}
	if values == nil {
		return fmt.Errorf("%w: column %q without values", errs.ErrUsage, name)
	}
	if values.Len() != c.rows {
		return fmt.Errorf("%w: column %q has %d values, category %q declares %d rows",
			errs.ErrUsage, name, values.Len(), c.name, c.rows)
	}

	var cfg columnConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	chain := cfg.chain
	if cfg.auto && chain == nil {
		chain = encoding.AutoChain(values)
	}
	data, err := NewEncodedData(values, chain...)
	if err != nil {
		return fmt.Errorf("column %q: %w", name, err)
	}

	var mask *EncodedData
	if cfg.mask != nil {
		if len(cfg.mask) != c.rows {
			return fmt.Errorf("%w: column %q mask has %d entries, category %q declares %d rows",
				errs.ErrUsage, name, len(cfg.mask), c.name, c.rows)
		}
		codes := make(encoding.Numbers[uint8], len(cfg.mask))
		for i, m := range cfg.mask {
			codes[i] = uint8(m)
		}
		mask, err = NewEncodedData(codes)
		if err != nil {
			return fmt.Errorf("column %q mask: %w", name, err)
		}
	}

	col, err := NewColumn(name, data, mask)
	if err != nil {
		return err
	}

	return c.setColumn(col)
}

// SetColumnData inserts or replaces a column built from already-encoded
// payloads, e.g. data carried over from another file. mask may be nil.
func (c *Category) SetColumnData(name string, data, mask *EncodedData) error {
	col, err := NewColumn(name, data, mask)
	if err != nil {
		return err
	}

	return c.setColumn(col)
}

func (c *Category) setColumn(col *Column) error {
	col.rows = c.rows
	if i, ok := c.index[col.name]; ok {
		c.cols[i] = col
		return nil
	}
	c.index[col.name] = len(c.cols)
	c.cols = append(c.cols, col)

	return nil
}

// RemoveColumn removes the named column, reporting whether it existed.
func (c *Category) RemoveColumn(name string) bool {
	i, ok := c.index[name]
	if !ok {
		return false
	}
	c.cols = append(c.cols[:i], c.cols[i+1:]...)
	c.rebuildIndex()

	return true
}

func (c *Category) rebuildIndex() {
	c.index = make(map[string]int, len(c.cols))
	for i, col := range c.cols {
		c.index[col.name] = i
	}
}

// Decoded returns every column's decoded payload keyed by column name.
func (c *Category) Decoded() (map[string]encoding.Array, error) {
	out := make(map[string]encoding.Array, len(c.cols))
	for _, col := range c.cols {
		arr, err := col.Values()
		if err != nil {
			return nil, err
		}
		out[col.name] = arr
	}

	return out, nil
}

// Equal reports deep structural equality of decoded content: same row
// count, same column names in the same order, and element-wise equal
// values and masks. Encoding chains are not compared. The category name
// itself is not part of the comparison.
func (c *Category) Equal(other *Category) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.rows != other.rows || len(c.cols) != len(other.cols) {
		return false
	}
	for i, col := range c.cols {
		o := other.cols[i]
		if col.name != o.name || !col.Equal(o) {
			return false
		}
	}

	return true
}
