package bcif

import (
	"fmt"
	"sync"

	"github.com/structbio/bcif/encoding"
	"github.com/structbio/bcif/errs"
	"github.com/structbio/bcif/internal/framing"
)

// EncodedData is a column payload in its encoded form: the raw bytes plus
// the encoding chain that produced them, in application order.
//
// Decoding is lazy and cached: the chain is folded at most once per
// instance and the decoded array reused afterwards. The cache update is
// all-or-nothing under a mutex, so concurrent readers are safe; mutation of
// the surrounding document still requires external serialization.
type EncodedData struct {
	raw   []byte
	steps []encoding.Step    // parsed chain; nil until first decode of wire data
	wire  []framing.Encoding // original descriptors when read from a file

	mu        sync.Mutex
	decoded   encoding.Array
	digest    uint64
	hasDigest bool
}

// NewEncodedData encodes values with the given chain shape. An empty chain
// is the conservative passthrough: a single ByteArray for numeric payloads,
// a single StringArray for strings. The returned data carries the
// fully-parameterized chain, so it decodes without further input.
func NewEncodedData(values encoding.Array, chain ...encoding.Step) (*EncodedData, error) {
	raw, completed, err := encoding.Encode(values, chain)
	if err != nil {
		return nil, err
	}

	return &EncodedData{raw: raw, steps: completed}, nil
}

func newWireData(d framing.Data) (*EncodedData, error) {
	if len(d.Encoding) == 0 {
		return nil, fmt.Errorf("%w: encoded data without an encoding chain", errs.ErrFormat)
	}

	return &EncodedData{raw: d.Data, wire: d.Encoding}, nil
}

// Decode returns the typed payload, folding the encoding chain in reverse
// application order on first call and returning the cached array afterward.
func (d *EncodedData) Decode() (encoding.Array, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.decodeLocked()
}

func (d *EncodedData) decodeLocked() (encoding.Array, error) {
	if d.decoded != nil {
		return d.decoded, nil
	}

	steps := d.steps
	if steps == nil {
		parsed, err := framing.ToSteps(d.wire)
		if err != nil {
			return nil, err
		}
		steps = parsed
	}

	arr, err := encoding.Decode(d.raw, steps)
	if err != nil {
		return nil, err
	}
	d.steps = steps
	d.decoded = arr

	return arr, nil
}

// Digest returns a 64-bit hash of the decoded payload, decoding it first if
// necessary. Equal payloads have equal digests; unequal digests prove
// unequal payloads, which Equal uses as its fast path.
func (d *EncodedData) Digest() (uint64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.hasDigest {
		return d.digest, nil
	}
	arr, err := d.decodeLocked()
	if err != nil {
		return 0, err
	}
	d.digest = digestArray(arr)
	d.hasDigest = true

	return d.digest, nil
}

// Equal reports whether both payloads decode to element-wise equal arrays.
// Two payloads with different encoding chains compare equal when the
// decoded content matches. Payloads that fail to decode compare unequal.
func (d *EncodedData) Equal(other *EncodedData) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d == other {
		return true
	}

	da, err := d.Digest()
	if err != nil {
		return false
	}
	db, err := other.Digest()
	if err != nil {
		return false
	}
	if da != db {
		return false
	}

	a, _ := d.Decode()
	b, _ := other.Decode()

	return encoding.Equal(a, b)
}

// Steps returns the encoding chain in application order, parsing wire
// descriptors if this data came from a file and has not been decoded yet.
// The returned slice must not be modified.
func (d *EncodedData) Steps() ([]encoding.Step, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.steps == nil {
		parsed, err := framing.ToSteps(d.wire)
		if err != nil {
			return nil, err
		}
		d.steps = parsed
	}

	return d.steps, nil
}

// Raw returns the terminal encoded payload. The returned slice must not be
// modified.
func (d *EncodedData) Raw() []byte {
	return d.raw
}

// wireData returns the wire representation. Data read from a file keeps its
// original descriptors byte-for-byte, so untouched columns re-serialize
// without being decoded.
func (d *EncodedData) wireData() framing.Data {
	if d.wire != nil {
		return framing.Data{Encoding: d.wire, Data: d.raw}
	}

	return framing.Data{Encoding: framing.FromSteps(d.steps), Data: d.raw}
}
