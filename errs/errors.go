// Package errs defines the sentinel errors shared across the bcif packages.
//
// Call sites wrap these with fmt.Errorf("%w: ...") to attach context, so
// callers can classify failures with errors.Is while still seeing the
// offending column, kind or parameter in the message.
package errs

import "errors"

var (
	// ErrFormat indicates a malformed BinaryCIF tree: missing required
	// keys, wrong value types, or a decoded column length that does not
	// match its category's declared row count.
	ErrFormat = errors.New("bcif: malformed format")

	// ErrUnsupportedEncoding indicates an encoding-step kind this
	// implementation does not recognize. It is raised when the affected
	// column is decoded, not when the file is read, so sibling columns
	// stay readable.
	ErrUnsupportedEncoding = errors.New("bcif: unsupported encoding")

	// ErrEncodingParameter indicates an encoding step whose parameters are
	// invalid or inconsistent with its input, e.g. a non-positive
	// fixed-point factor, an integer-packing width outside {1, 2, 4}, or
	// an interval quantization with fewer than two steps.
	ErrEncodingParameter = errors.New("bcif: invalid encoding parameter")

	// ErrUsage indicates an API misuse: wrong argument types or modes,
	// nil entities, or mutations that would violate a structural
	// invariant.
	ErrUsage = errors.New("bcif: usage error")
)
