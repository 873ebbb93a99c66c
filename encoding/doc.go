// Package encoding implements the reversible column transforms of the
// BinaryCIF format: ByteArray, FixedPoint, IntervalQuantization, RunLength,
// Delta, IntegerPacking and StringArray.
//
// A column payload is described by an encoding chain: an ordered list of
// Step values in the order they were applied when the column was encoded.
// The last step of a chain is the one whose output is the raw byte payload,
// so Decode folds the chain in reverse order, and Encode folds it forward.
//
// All transforms are pure functions over in-memory slices; the package keeps
// no shared mutable state and every function is safe for concurrent use.
package encoding
