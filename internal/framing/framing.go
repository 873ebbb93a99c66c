// Package framing (de)serializes the BinaryCIF map-of-arrays tree to and
// from msgpack bytes. It is the boundary between the document model and the
// wire: the document model never touches msgpack directly, and this package
// never interprets encoded column payloads.
package framing

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/structbio/bcif/errs"
)

// File is the top-level wire structure.
type File struct {
	Encoder    string  `msgpack:"encoder"`
	Version    string  `msgpack:"version"`
	DataBlocks []Block `msgpack:"dataBlocks"`
}

type Block struct {
	Header     string     `msgpack:"header"`
	Categories []Category `msgpack:"categories"`
}

type Category struct {
	Name     string   `msgpack:"name"`
	RowCount int32    `msgpack:"rowCount"`
	Columns  []Column `msgpack:"columns"`
}

type Column struct {
	Name string `msgpack:"name"`
	Data Data   `msgpack:"data"`
	Mask *Data  `msgpack:"mask,omitempty"`
}

// Data is an encoded payload: raw bytes plus the encoding chain that
// produced them, in application order.
type Data struct {
	Encoding []Encoding `msgpack:"encoding"`
	Data     []byte     `msgpack:"data"`
}

// Encoding is one encoding-step descriptor. It is the union of the fields
// of every step kind; which fields are meaningful depends on Kind.
type Encoding struct {
	Kind           string     `msgpack:"kind"`
	Type           int32      `msgpack:"type,omitempty"`
	Factor         float64    `msgpack:"factor,omitempty"`
	SrcType        int32      `msgpack:"srcType,omitempty"`
	Min            float64    `msgpack:"min,omitempty"`
	Max            float64    `msgpack:"max,omitempty"`
	NumSteps       int32      `msgpack:"numSteps,omitempty"`
	ByteCount      int32      `msgpack:"byteCount,omitempty"`
	IsUnsigned     bool       `msgpack:"isUnsigned,omitempty"`
	SrcSize        int32      `msgpack:"srcSize,omitempty"`
	Origin         int64      `msgpack:"origin,omitempty"`
	StringData     string     `msgpack:"stringData,omitempty"`
	Offsets        []byte     `msgpack:"offsets,omitempty"`
	DataEncoding   []Encoding `msgpack:"dataEncoding,omitempty"`
	OffsetEncoding []Encoding `msgpack:"offsetEncoding,omitempty"`
}

// Unpack deserializes a msgpack-framed BinaryCIF file.
func Unpack(data []byte) (*File, error) {
	var f File
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFormat, err)
	}

	return &f, nil
}

// Pack serializes the wire tree to msgpack bytes.
func Pack(f *File) ([]byte, error) {
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFormat, err)
	}

	return data, nil
}
