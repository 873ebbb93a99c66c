package bcif

import (
	"fmt"

	"github.com/structbio/bcif/errs"
)

// DataBlock is a named top-level grouping of categories, roughly one
// dataset within a file.
type DataBlock struct {
	header string
	cats   []*Category
	index  map[string]int
}

// NewDataBlock creates an empty block with the given header.
func NewDataBlock(header string) *DataBlock {
	return &DataBlock{header: header, index: make(map[string]int)}
}

// Header returns the block header.
func (b *DataBlock) Header() string { return b.header }

// Category returns the named category, or nil when absent.
func (b *DataBlock) Category(name string) *Category {
	i, ok := b.index[name]
	if !ok {
		return nil
	}

	return b.cats[i]
}

// Categories returns the categories in insertion order. The slice is a
// copy; the categories are not.
func (b *DataBlock) Categories() []*Category {
	out := make([]*Category, len(b.cats))
	copy(out, b.cats)

	return out
}

// CategoryNames returns the category names in insertion order.
func (b *DataBlock) CategoryNames() []string {
	names := make([]string, len(b.cats))
	for i, cat := range b.cats {
		names[i] = cat.name
	}

	return names
}

// SetCategory inserts cat or replaces the category of the same name.
// Replacement discards the old category entirely and keeps its position;
// insertion appends.
func (b *DataBlock) SetCategory(cat *Category) error {
	if cat == nil {
		return fmt.Errorf("%w: nil category", errs.ErrUsage)
	}
	if i, ok := b.index[cat.name]; ok {
		b.cats[i] = cat
		return nil
	}
	b.index[cat.name] = len(b.cats)
	b.cats = append(b.cats, cat)

	return nil
}

// RemoveCategory removes the named category, reporting whether it existed.
func (b *DataBlock) RemoveCategory(name string) bool {
	i, ok := b.index[name]
	if !ok {
		return false
	}
	b.cats = append(b.cats[:i], b.cats[i+1:]...)
	b.rebuildIndex()

	return true
}

func (b *DataBlock) rebuildIndex() {
	b.index = make(map[string]int, len(b.cats))
	for i, cat := range b.cats {
		b.index[cat.name] = i
	}
}

// Equal reports deep structural equality of decoded content: same header,
// same category names in the same order, and equal categories.
func (b *DataBlock) Equal(other *DataBlock) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.header != other.header || len(b.cats) != len(other.cats) {
		return false
	}
	for i, cat := range b.cats {
		o := other.cats[i]
		if cat.name != o.name || !cat.Equal(o) {
			return false
		}
	}

	return true
}
