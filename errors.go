package microagg1d

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every input validation error, so
// errors.Is(err, ErrInvalidArgument) identifies a rejected call.
var ErrInvalidArgument = errors.New("microagg1d: invalid argument")

var (
	// ErrBadShape indicates input that is not reducible to a non-empty vector.
	ErrBadShape = fmt.Errorf("%w: input is not a non-empty one-dimensional sequence", ErrInvalidArgument)

	// ErrKOutOfRange indicates k <= 0 or k > len(x).
	ErrKOutOfRange = fmt.Errorf("%w: k out of range", ErrInvalidArgument)

	// ErrUnknownMethod indicates a Method other than auto, simple or wilber.
	ErrUnknownMethod = fmt.Errorf("%w: unknown method", ErrInvalidArgument)

	// ErrNonFinite indicates a NaN or infinite input value.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidArgument)

	// ErrLengthMismatch indicates values and labels of different lengths.
	ErrLengthMismatch = fmt.Errorf("%w: values and labels differ in length", ErrInvalidArgument)

	// ErrBadLabels indicates labels that are negative or leave gaps in 0..c-1.
	ErrBadLabels = fmt.Errorf("%w: labels must cover 0..c-1 without gaps", ErrInvalidArgument)
)
