package framing

import (
	"fmt"

	"github.com/structbio/bcif/encoding"
	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

// ToSteps parses wire descriptors into the closed encoding.Step sum,
// validating each step's parameters. Descriptors are carried through reads
// unparsed so an unsupported kind only fails the column that uses it; this
// is where that failure surfaces.
func ToSteps(es []Encoding) ([]encoding.Step, error) {
	if len(es) == 0 {
		return nil, fmt.Errorf("%w: empty encoding chain", errs.ErrFormat)
	}

	steps := make([]encoding.Step, len(es))
	for i, e := range es {
		step, err := toStep(e)
		if err != nil {
			return nil, err
		}
		steps[i] = step
	}

	return steps, nil
}

func toStep(e Encoding) (encoding.Step, error) {
	var step encoding.Step
	switch format.EncodingKind(e.Kind) {
	case format.KindByteArray:
		step = encoding.ByteArray{Type: format.DataType(e.Type)}
	case format.KindFixedPoint:
		step = encoding.FixedPoint{Factor: e.Factor, SrcType: format.DataType(e.SrcType)}
	case format.KindIntervalQuantization:
		step = encoding.IntervalQuantization{
			Min:      e.Min,
			Max:      e.Max,
			NumSteps: e.NumSteps,
			SrcType:  format.DataType(e.SrcType),
		}
	case format.KindRunLength:
		step = encoding.RunLength{SrcType: format.DataType(e.SrcType), SrcSize: e.SrcSize}
	case format.KindDelta:
		step = encoding.Delta{Origin: e.Origin, SrcType: format.DataType(e.SrcType)}
	case format.KindIntegerPacking:
		step = encoding.IntegerPacking{ByteCount: e.ByteCount, IsUnsigned: e.IsUnsigned, SrcSize: e.SrcSize}
	case format.KindStringArray:
		dataSteps, err := ToSteps(e.DataEncoding)
		if err != nil {
			return nil, fmt.Errorf("StringArray dataEncoding: %w", err)
		}
		offsetSteps, err := ToSteps(e.OffsetEncoding)
		if err != nil {
			return nil, fmt.Errorf("StringArray offsetEncoding: %w", err)
		}
		step = encoding.StringArray{
			Data:           e.StringData,
			Offsets:        e.Offsets,
			DataEncoding:   dataSteps,
			OffsetEncoding: offsetSteps,
		}
	default:
		return nil, fmt.Errorf("%w: kind %q", errs.ErrUnsupportedEncoding, e.Kind)
	}

	if err := step.Validate(); err != nil {
		return nil, err
	}

	return step, nil
}

// FromSteps serializes steps into wire descriptors.
func FromSteps(steps []encoding.Step) []Encoding {
	es := make([]Encoding, len(steps))
	for i, step := range steps {
		es[i] = fromStep(step)
	}

	return es
}

func fromStep(step encoding.Step) Encoding {
	e := Encoding{Kind: string(step.Kind())}
	switch s := step.(type) {
	case encoding.ByteArray:
		e.Type = int32(s.Type)
	case encoding.FixedPoint:
		e.Factor = s.Factor
		e.SrcType = int32(s.SrcType)
	case encoding.IntervalQuantization:
		e.Min = s.Min
		e.Max = s.Max
		e.NumSteps = s.NumSteps
		e.SrcType = int32(s.SrcType)
	case encoding.RunLength:
		e.SrcType = int32(s.SrcType)
		e.SrcSize = s.SrcSize
	case encoding.Delta:
		e.Origin = s.Origin
		e.SrcType = int32(s.SrcType)
	case encoding.IntegerPacking:
		e.ByteCount = s.ByteCount
		e.IsUnsigned = s.IsUnsigned
		e.SrcSize = s.SrcSize
	case encoding.StringArray:
		e.StringData = s.Data
		e.Offsets = s.Offsets
		e.DataEncoding = FromSteps(s.DataEncoding)
		e.OffsetEncoding = FromSteps(s.OffsetEncoding)
	}

	return e
}
