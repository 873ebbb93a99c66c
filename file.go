package bcif

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/structbio/bcif/compress"
	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
	"github.com/structbio/bcif/internal/framing"
)

// File is a BinaryCIF document: an ordered list of uniquely named data
// blocks, fully materialized in memory. Column payloads stay encoded until
// first access.
//
// A File is not safe for concurrent mutation; confine it to one goroutine
// for its mutation lifetime. Concurrent readers of an unmutated File are
// safe, including the lazy per-column decode.
type File struct {
	encoder string
	version string
	blocks  []*DataBlock
	index   map[string]int
}

// NewFile creates an empty document.
func NewFile() *File {
	return &File{
		encoder: encoderName,
		version: Version,
		index:   make(map[string]int),
	}
}

// Encoder returns the name of the program that wrote the file.
func (f *File) Encoder() string { return f.encoder }

// EncoderVersion returns the version string the writing program recorded.
func (f *File) EncoderVersion() string { return f.version }

// Blocks returns the data blocks in file order. The slice is a copy; the
// blocks are not.
func (f *File) Blocks() []*DataBlock {
	out := make([]*DataBlock, len(f.blocks))
	copy(out, f.blocks)

	return out
}

// Headers returns the block headers in file order.
func (f *File) Headers() []string {
	out := make([]string, len(f.blocks))
	for i, b := range f.blocks {
		out[i] = b.header
	}

	return out
}

// Block returns the block with the given header, or nil when absent.
func (f *File) Block(header string) *DataBlock {
	i, ok := f.index[header]
	if !ok {
		return nil
	}

	return f.blocks[i]
}

// AddBlock appends a block. Block headers are unique within a document;
// adding a duplicate is a usage error.
func (f *File) AddBlock(b *DataBlock) error {
	if b == nil {
		return fmt.Errorf("%w: nil block", errs.ErrUsage)
	}
	if _, ok := f.index[b.header]; ok {
		return fmt.Errorf("%w: duplicate block header %q", errs.ErrUsage, b.header)
	}
	f.index[b.header] = len(f.blocks)
	f.blocks = append(f.blocks, b)

	return nil
}

// RemoveBlock removes the block with the given header, reporting whether it
// existed.
func (f *File) RemoveBlock(header string) bool {
	i, ok := f.index[header]
	if !ok {
		return false
	}
	f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
	f.rebuildIndex()

	return true
}

func (f *File) rebuildIndex() {
	f.index = make(map[string]int, len(f.blocks))
	for i, b := range f.blocks {
		f.index[b.header] = i
	}
}

// Category returns the named category from the first data block, the
// common case for single-block files. It returns nil when the file has no
// blocks or the first block lacks the category.
func (f *File) Category(name string) *Category {
	if len(f.blocks) == 0 {
		return nil
	}

	return f.blocks[0].Category(name)
}

// CategoryFrom returns the named category from the block with the given
// header, or nil when either is absent.
func (f *File) CategoryFrom(header, name string) *Category {
	b := f.Block(header)
	if b == nil {
		return nil
	}

	return b.Category(name)
}

// SetCategory inserts cat into the first data block, replacing any category
// of the same name. On a file with no blocks a new block is created with a
// header derived from the category name.
func (f *File) SetCategory(cat *Category) error {
	if cat == nil {
		return fmt.Errorf("%w: nil category", errs.ErrUsage)
	}
	if len(f.blocks) == 0 {
		b := NewDataBlock(strings.ToUpper(cat.name))
		if err := b.SetCategory(cat); err != nil {
			return err
		}

		return f.AddBlock(b)
	}

	return f.blocks[0].SetCategory(cat)
}

// SetCategoryIn inserts cat into the block with the given header, creating
// and appending the block when no block carries that header.
func (f *File) SetCategoryIn(header string, cat *Category) error {
	if cat == nil {
		return fmt.Errorf("%w: nil category", errs.ErrUsage)
	}
	b := f.Block(header)
	if b == nil {
		b = NewDataBlock(header)
		if err := f.AddBlock(b); err != nil {
			return err
		}
	}

	return b.SetCategory(cat)
}

// Equal reports deep structural equality of decoded content across the
// whole document. Encoding chains and container compression do not take
// part in the comparison.
func (f *File) Equal(other *File) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.blocks) != len(other.blocks) {
		return false
	}
	for i, b := range f.blocks {
		if !b.Equal(other.blocks[i]) {
			return false
		}
	}

	return true
}

// Parse builds a document from BinaryCIF bytes. Container compression
// (gzip, zstd, lz4, s2) is detected by magic bytes and undone first.
// Column payloads are not decoded; their chains are kept as read, so an
// unsupported encoding in one column surfaces only when that column is
// accessed.
func Parse(data []byte) (*File, error) {
	codec, err := compress.ForType(compress.Detect(data))
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: container: %v", errs.ErrFormat, err)
	}

	wire, err := framing.Unpack(raw)
	if err != nil {
		return nil, err
	}

	return fromWire(wire)
}

// Read builds a document from a byte-oriented stream.
func Read(r io.Reader) (*File, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", errs.ErrUsage)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// ReadFile builds a document from the file at path.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// WriteOption configures serialization.
type WriteOption func(*writeConfig)

type writeConfig struct {
	compression format.CompressionType
}

// WithCompression wraps the packed bytes in the given container format.
// The default is no container.
func WithCompression(t format.CompressionType) WriteOption {
	return func(cfg *writeConfig) { cfg.compression = t }
}

// Bytes serializes the document. Columns read from a file and never
// replaced are passed through with their original payloads and chains;
// nothing is re-encoded.
func (f *File) Bytes(opts ...WriteOption) ([]byte, error) {
	var cfg writeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	raw, err := framing.Pack(f.toWire())
	if err != nil {
		return nil, err
	}

	codec, err := compress.ForType(cfg.compression)
	if err != nil {
		return nil, err
	}

	return codec.Compress(raw)
}

// Write serializes the document to w.
func (f *File) Write(w io.Writer, opts ...WriteOption) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", errs.ErrUsage)
	}
	data, err := f.Bytes(opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

// WriteFile serializes the document to the file at path.
func (f *File) WriteFile(path string, opts ...WriteOption) error {
	data, err := f.Bytes(opts...)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func fromWire(w *framing.File) (*File, error) {
	f := NewFile()
	if w.Encoder != "" {
		f.encoder = w.Encoder
	}
	if w.Version != "" {
		f.version = w.Version
	}

	for _, wb := range w.DataBlocks {
		if _, ok := f.index[wb.Header]; ok {
			return nil, fmt.Errorf("%w: duplicate block header %q", errs.ErrFormat, wb.Header)
		}
		b := NewDataBlock(wb.Header)

		for _, wc := range wb.Categories {
			if wc.Name == "" {
				return nil, fmt.Errorf("%w: block %q has a category without a name", errs.ErrFormat, wb.Header)
			}
			if wc.RowCount < 0 {
				return nil, fmt.Errorf("%w: category %q declares row count %d", errs.ErrFormat, wc.Name, wc.RowCount)
			}
			if b.Category(wc.Name) != nil {
				return nil, fmt.Errorf("%w: duplicate category %q in block %q", errs.ErrFormat, wc.Name, wb.Header)
			}
			cat, err := NewCategory(wc.Name, int(wc.RowCount))
			if err != nil {
				return nil, err
			}

			for _, wcol := range wc.Columns {
				if wcol.Name == "" {
					return nil, fmt.Errorf("%w: category %q has a column without a name", errs.ErrFormat, wc.Name)
				}
				if cat.Column(wcol.Name) != nil {
					return nil, fmt.Errorf("%w: duplicate column %q in category %q", errs.ErrFormat, wcol.Name, wc.Name)
				}
				data, err := newWireData(wcol.Data)
				if err != nil {
					return nil, fmt.Errorf("column %q in category %q: %w", wcol.Name, wc.Name, err)
				}
				var mask *EncodedData
				if wcol.Mask != nil {
					mask, err = newWireData(*wcol.Mask)
					if err != nil {
						return nil, fmt.Errorf("column %q mask in category %q: %w", wcol.Name, wc.Name, err)
					}
				}
				if err := cat.SetColumnData(wcol.Name, data, mask); err != nil {
					return nil, err
				}
			}

			if err := b.SetCategory(cat); err != nil {
				return nil, err
			}
		}

		if err := f.AddBlock(b); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrFormat, err)
		}
	}

	return f, nil
}

func (f *File) toWire() *framing.File {
	w := &framing.File{
		Encoder:    f.encoder,
		Version:    f.version,
		DataBlocks: make([]framing.Block, len(f.blocks)),
	}
	for i, b := range f.blocks {
		wb := framing.Block{
			Header:     b.header,
			Categories: make([]framing.Category, len(b.cats)),
		}
		for j, cat := range b.cats {
			wc := framing.Category{
				Name:     cat.name,
				RowCount: int32(cat.rows),
				Columns:  make([]framing.Column, len(cat.cols)),
			}
			for k, col := range cat.cols {
				wcol := framing.Column{
					Name: col.name,
					Data: col.data.wireData(),
				}
				if col.mask != nil {
					m := col.mask.wireData()
					wcol.Mask = &m
				}
				wc.Columns[k] = wcol
			}
			wb.Categories[j] = wc
		}
		w.DataBlocks[i] = wb
	}

	return w
}
