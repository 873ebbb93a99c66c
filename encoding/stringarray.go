package encoding

import (
	"fmt"
	"strings"

	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/format"
)

func decodeStringArray(raw []byte, s StringArray) (Array, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	offsetArr, err := Decode(s.Offsets, s.OffsetEncoding)
	if err != nil {
		return nil, fmt.Errorf("StringArray offsets: %w", err)
	}
	offsets, ok := asInt64s(offsetArr)
	if !ok {
		return nil, fmt.Errorf("%w: StringArray offsets decode to %s, not integers",
			errs.ErrEncodingParameter, offsetArr.DataType())
	}

	indexArr, err := Decode(raw, s.DataEncoding)
	if err != nil {
		return nil, fmt.Errorf("StringArray indices: %w", err)
	}
	indices, ok := asInt64s(indexArr)
	if !ok {
		return nil, fmt.Errorf("%w: StringArray indices decode to %s, not integers",
			errs.ErrEncodingParameter, indexArr.DataType())
	}

	dict, err := sliceDictionary(s.Data, offsets)
	if err != nil {
		return nil, err
	}

	out := make(Strings, len(indices))
	for i, idx := range indices {
		if idx < 0 {
			continue // reserved sentinel for the empty string
		}
		if idx >= int64(len(dict)) {
			return nil, fmt.Errorf("%w: StringArray index %d outside dictionary of %d entries",
				errs.ErrEncodingParameter, idx, len(dict))
		}
		out[i] = dict[idx]
	}

	return out, nil
}

// sliceDictionary cuts the concatenated dictionary string at the given
// offsets; entry i spans offsets[i]..offsets[i+1].
func sliceDictionary(data string, offsets []int64) ([]string, error) {
	if len(offsets) == 0 {
		if data != "" {
			return nil, fmt.Errorf("%w: StringArray has dictionary data but no offsets", errs.ErrEncodingParameter)
		}

		return nil, nil
	}

	dict := make([]string, len(offsets)-1)
	for i := range dict {
		lo, hi := offsets[i], offsets[i+1]
		if lo < 0 || hi < lo || hi > int64(len(data)) {
			return nil, fmt.Errorf("%w: StringArray offsets [%d, %d) outside dictionary of %d bytes",
				errs.ErrEncodingParameter, lo, hi, len(data))
		}
		dict[i] = data[lo:hi]
	}

	return dict, nil
}

// encodeStringArray builds a first-occurrence-ordered dictionary of the
// unique non-empty values, maps each row to its dictionary index (-1 for
// the empty string), and encodes indices and offsets with their nested
// chains (plain Int32 ByteArray when unspecified).
func encodeStringArray(in Array, s StringArray) ([]byte, StringArray, error) {
	rows, ok := in.(Strings)
	if !ok {
		return nil, s, fmt.Errorf("%w: StringArray requires a string input", errs.ErrEncodingParameter)
	}

	byValue := make(map[string]int64)
	var data strings.Builder
	offsets := []int64{0}
	indices := make([]int64, len(rows))
	for i, v := range rows {
		if v == "" {
			indices[i] = -1
			continue
		}
		idx, seen := byValue[v]
		if !seen {
			idx = int64(len(offsets) - 1)
			byValue[v] = idx
			data.WriteString(v)
			offsets = append(offsets, int64(data.Len()))
		}
		indices[i] = idx
	}

	dataChain := s.DataEncoding
	if len(dataChain) == 0 {
		dataChain = []Step{ByteArray{Type: format.TypeInt32}}
	}
	offsetChain := s.OffsetEncoding
	if len(offsetChain) == 0 {
		offsetChain = []Step{ByteArray{Type: format.TypeInt32}}
	}

	rawIndices, dataSteps, err := Encode(fitInts(indices), dataChain)
	if err != nil {
		return nil, s, fmt.Errorf("StringArray indices: %w", err)
	}
	rawOffsets, offsetSteps, err := Encode(fitInts(offsets), offsetChain)
	if err != nil {
		return nil, s, fmt.Errorf("StringArray offsets: %w", err)
	}

	completed := StringArray{
		Data:           data.String(),
		Offsets:        rawOffsets,
		DataEncoding:   dataSteps,
		OffsetEncoding: offsetSteps,
	}

	return rawIndices, completed, nil
}
