// Package format defines the wire-level type and encoding identifiers of the
// BinaryCIF format.
package format

type (
	// DataType identifies the element type of a decoded column payload.
	// The numeric values are the codes used by the ByteArray encoding
	// descriptor on the wire.
	DataType int32

	// EncodingKind is the "kind" discriminator of an encoding-step
	// descriptor.
	EncodingKind string

	// MaskValue is a per-row presence code carried by a column mask.
	MaskValue uint8

	// CompressionType identifies an optional whole-file container
	// compression. It is not part of the BinaryCIF format itself.
	CompressionType uint8
)

// DataType wire codes. Int8..Uint32 and the two float widths follow the
// published BinaryCIF table. Int64/Uint64 are an extension of this
// implementation: files using them are not readable by readers that
// implement only the published table.
const (
	TypeInt8    DataType = 1
	TypeInt16   DataType = 2
	TypeInt32   DataType = 3
	TypeUint8   DataType = 4
	TypeUint16  DataType = 5
	TypeUint32  DataType = 6
	TypeInt64   DataType = 7
	TypeUint64  DataType = 8
	TypeFloat32 DataType = 32
	TypeFloat64 DataType = 33
)

const (
	KindByteArray            EncodingKind = "ByteArray"
	KindFixedPoint           EncodingKind = "FixedPoint"
	KindIntervalQuantization EncodingKind = "IntervalQuantization"
	KindRunLength            EncodingKind = "RunLength"
	KindDelta                EncodingKind = "Delta"
	KindIntegerPacking       EncodingKind = "IntegerPacking"
	KindStringArray          EncodingKind = "StringArray"
)

// Mask codes. A column without a mask behaves as all-MaskPresent.
const (
	MaskPresent      MaskValue = 0 // value is present
	MaskInapplicable MaskValue = 1 // "." in textual CIF: not applicable
	MaskMissing      MaskValue = 2 // "?" in textual CIF: unknown/missing
)

const (
	CompressionNone CompressionType = 0x0
	CompressionGzip CompressionType = 0x1
	CompressionZstd CompressionType = 0x2
	CompressionS2   CompressionType = 0x3
	CompressionLZ4  CompressionType = 0x4
)

// Size returns the element size in bytes, or 0 for an invalid type.
func (t DataType) Size() int {
	switch t {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeInt64, TypeUint64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether t is one of the defined data types.
func (t DataType) Valid() bool {
	return t.Size() != 0
}

// IsFloat reports whether t is a floating-point type.
func (t DataType) IsFloat() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// IsUnsigned reports whether t is an unsigned integer type.
func (t DataType) IsUnsigned() bool {
	switch t {
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		return true
	default:
		return false
	}
}

func (t DataType) String() string {
	switch t {
	case TypeInt8:
		return "Int8"
	case TypeInt16:
		return "Int16"
	case TypeInt32:
		return "Int32"
	case TypeUint8:
		return "Uint8"
	case TypeUint16:
		return "Uint16"
	case TypeUint32:
		return "Uint32"
	case TypeInt64:
		return "Int64"
	case TypeUint64:
		return "Uint64"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	default:
		return "Unknown"
	}
}

func (m MaskValue) String() string {
	switch m {
	case MaskPresent:
		return "Present"
	case MaskInapplicable:
		return "Inapplicable"
	case MaskMissing:
		return "Missing"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
