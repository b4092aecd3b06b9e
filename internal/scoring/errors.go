package scoring

import "errors"

var (
	// ErrUnnormalizedWeights means the weights do not sum to 1.0 within WeightTolerance.
	ErrUnnormalizedWeights = errors.New("criterion weights must sum to 1.0")

	// ErrIncompleteData means an alternative has a non-positive or non-finite value.
	ErrIncompleteData = errors.New("every alternative value must be greater than 0")

	// ErrSchemaMismatch means the criterion set is empty, malformed, or differs
	// between the weights and an alternative.
	ErrSchemaMismatch = errors.New("criterion set mismatch")

	// ErrZeroTotalWeight means there is nothing to normalize.
	ErrZeroTotalWeight = errors.New("total weight is zero")

	// ErrNegativeWeight means a weight passed to the normalizer is below zero.
	ErrNegativeWeight = errors.New("negative weight")
)

// ErrorKind returns the wire name of an engine error, or "" for anything else.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrUnnormalizedWeights):
		return "UnnormalizedWeights"
	case errors.Is(err, ErrIncompleteData):
		return "IncompleteData"
	case errors.Is(err, ErrSchemaMismatch):
		return "SchemaMismatch"
	case errors.Is(err, ErrZeroTotalWeight):
		return "ZeroTotalWeight"
	case errors.Is(err, ErrNegativeWeight):
		return "NegativeWeight"
	}
	return ""
}
