package encoding

import (
	"fmt"

	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

// Step is one transform of an encoding chain. The set of implementations is
// closed: ByteArray, FixedPoint, IntervalQuantization, RunLength, Delta,
// IntegerPacking and StringArray. The chain evaluator dispatches over the
// concrete types exhaustively, so an unknown kind can only surface while
// parsing a descriptor, never mid-fold.
type Step interface {
	// Kind returns the wire discriminator of the step.
	Kind() format.EncodingKind
	// Validate checks the step parameters for internal consistency.
	Validate() error

	isStep()
}

// ByteArray reinterprets a raw little-endian byte buffer as a typed numeric
// array. It is the terminal step of every numeric chain: the only step that
// touches raw bytes directly.
type ByteArray struct {
	// Type is the element type. Left zero on an encode chain, it is
	// filled in from the array being encoded.
	Type format.DataType
}

// FixedPoint stores floats as integers scaled by Factor. Encoding is lossy
// for values needing more precision than Factor provides; decoding followed
// by re-encoding of already-rounded values is exact.
type FixedPoint struct {
	Factor float64
	// SrcType is the float type to reproduce on decode (Float64 when zero).
	SrcType format.DataType
}

// IntervalQuantization maps floats in [Min, Max] onto NumSteps evenly
// spaced levels stored as small integers.
type IntervalQuantization struct {
	Min, Max float64
	NumSteps int32
	// SrcType is the float type to reproduce on decode (Float64 when zero).
	SrcType format.DataType
}

// RunLength stores an integer array as flattened (value, run length) pairs.
type RunLength struct {
	// SrcType is the integer type to reproduce on decode (Int32 when zero).
	SrcType format.DataType
	// SrcSize is the decoded length; filled in on encode.
	SrcSize int32
}

// Delta stores an integer array as successive differences. The first
// decoded element is Origin plus the first stored difference.
type Delta struct {
	Origin int64
	// SrcType is the integer type to reproduce on decode (Int32 when zero).
	SrcType format.DataType
}

// IntegerPacking stores 32-bit integers as runs of ByteCount-wide values,
// chaining on the width's sentinel (max for positive, min for negative
// signed values) so magnitudes beyond the width accumulate across entries.
type IntegerPacking struct {
	// ByteCount is the packed width: 1, 2 or 4. Left zero on an encode
	// chain, the narrowest profitable width is chosen.
	ByteCount  int32
	IsUnsigned bool
	// SrcSize is the unpacked length; filled in on encode.
	SrcSize int32
}

// StringArray stores a string column as a dictionary of unique strings plus
// a per-row index array. The dictionary is the concatenation Data sliced at
// Offsets; a negative row index denotes the empty string. Both the index
// array (whose encoded form is the column payload) and Offsets carry their
// own nested numeric chains.
type StringArray struct {
	Data           string
	Offsets        []byte
	DataEncoding   []Step
	OffsetEncoding []Step
}

func (ByteArray) Kind() format.EncodingKind            { return format.KindByteArray }
func (FixedPoint) Kind() format.EncodingKind           { return format.KindFixedPoint }
func (IntervalQuantization) Kind() format.EncodingKind { return format.KindIntervalQuantization }
func (RunLength) Kind() format.EncodingKind            { return format.KindRunLength }
func (Delta) Kind() format.EncodingKind                { return format.KindDelta }
func (IntegerPacking) Kind() format.EncodingKind       { return format.KindIntegerPacking }
func (StringArray) Kind() format.EncodingKind          { return format.KindStringArray }

func (ByteArray) isStep()            {}
func (FixedPoint) isStep()           {}
func (IntervalQuantization) isStep() {}
func (RunLength) isStep()            {}
func (Delta) isStep()                {}
func (IntegerPacking) isStep()       {}
func (StringArray) isStep()          {}

func (s ByteArray) Validate() error {
	if !s.Type.Valid() {
		return fmt.Errorf("%w: ByteArray type %d", errs.ErrEncodingParameter, s.Type)
	}

	return nil
}

func (s FixedPoint) Validate() error {
	if !(s.Factor > 0) {
		return fmt.Errorf("%w: FixedPoint factor %v must be positive", errs.ErrEncodingParameter, s.Factor)
	}
	if s.SrcType != 0 && !s.SrcType.IsFloat() {
		return fmt.Errorf("%w: FixedPoint srcType %s is not a float type", errs.ErrEncodingParameter, s.SrcType)
	}

	return nil
}

func (s IntervalQuantization) Validate() error {
	if s.NumSteps < 2 {
		return fmt.Errorf("%w: IntervalQuantization numSteps %d < 2", errs.ErrEncodingParameter, s.NumSteps)
	}
	if s.Max < s.Min {
		return fmt.Errorf("%w: IntervalQuantization max %v < min %v", errs.ErrEncodingParameter, s.Max, s.Min)
	}
	if s.SrcType != 0 && !s.SrcType.IsFloat() {
		return fmt.Errorf("%w: IntervalQuantization srcType %s is not a float type", errs.ErrEncodingParameter, s.SrcType)
	}

	return nil
}

func (s RunLength) Validate() error {
	if s.SrcSize < 0 {
		return fmt.Errorf("%w: RunLength srcSize %d", errs.ErrEncodingParameter, s.SrcSize)
	}
	if s.SrcType != 0 && (!s.SrcType.Valid() || s.SrcType.IsFloat()) {
		return fmt.Errorf("%w: RunLength srcType %s is not an integer type", errs.ErrEncodingParameter, s.SrcType)
	}

	return nil
}

func (s Delta) Validate() error {
	if s.SrcType != 0 && (!s.SrcType.Valid() || s.SrcType.IsFloat()) {
		return fmt.Errorf("%w: Delta srcType %s is not an integer type", errs.ErrEncodingParameter, s.SrcType)
	}

	return nil
}

func (s IntegerPacking) Validate() error {
	switch s.ByteCount {
	case 1, 2, 4:
	default:
		return fmt.Errorf("%w: IntegerPacking byteCount %d not in {1, 2, 4}", errs.ErrEncodingParameter, s.ByteCount)
	}
	if s.SrcSize < 0 {
		return fmt.Errorf("%w: IntegerPacking srcSize %d", errs.ErrEncodingParameter, s.SrcSize)
	}

	return nil
}

func (s StringArray) Validate() error {
	for _, sub := range s.DataEncoding {
		if _, ok := sub.(StringArray); ok {
			return fmt.Errorf("%w: StringArray dataEncoding cannot nest StringArray", errs.ErrEncodingParameter)
		}
		if err := sub.Validate(); err != nil {
			return err
		}
	}
	for _, sub := range s.OffsetEncoding {
		if _, ok := sub.(StringArray); ok {
			return fmt.Errorf("%w: StringArray offsetEncoding cannot nest StringArray", errs.ErrEncodingParameter)
		}
		if err := sub.Validate(); err != nil {
			return err
		}
	}

	return nil
}
