// SPDX-License-Identifier: MIT
// Package jenks: sentinel error set.
// Every specific input error wraps ErrInvalidArgument, so callers may match
// either the umbrella or the precise cause with errors.Is. Return sites add
// position context with fmt.Errorf("...: %w", ErrX); the sentinel survives.

package jenks

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the umbrella for every rejected input.
	// No DP work has been done when it is returned.
	ErrInvalidArgument = errors.New("jenks: invalid argument")

	// ErrInternalInconsistency signals a malformed backtrack pointer or a
	// non-finite optimum on validated input.
	// It reflects a solver bug, not bad input; retrying cannot help.
	ErrInternalInconsistency = errors.New("jenks: internal inconsistency")
)

var (
	// ErrEmptyInput indicates an empty observation sequence.
	ErrEmptyInput = fmt.Errorf("%w: observation sequence is empty", ErrInvalidArgument)

	// ErrBadClassCount indicates k < 1.
	ErrBadClassCount = fmt.Errorf("%w: number of classes must be a positive integer", ErrInvalidArgument)

	// ErrTooManyClasses indicates k > n.
	ErrTooManyClasses = fmt.Errorf("%w: number of classes cannot exceed number of observations", ErrInvalidArgument)

	// ErrNonFinite indicates a NaN or ±Inf observation.
	ErrNonFinite = fmt.Errorf("%w: observation is NaN or Inf", ErrInvalidArgument)

	// ErrUnsorted indicates the observations are not in ascending order.
	ErrUnsorted = fmt.Errorf("%w: observations must be sorted ascending", ErrInvalidArgument)

	// ErrSpreadTooLarge indicates max−min is so large that squared deviations
	// would overflow float64 (spread·n must stay below √MaxFloat64).
	ErrSpreadTooLarge = fmt.Errorf("%w: observation spread overflows squared deviations", ErrInvalidArgument)

	// ErrBadOptions indicates an invalid Options combination
	// (negative Workers, unknown MemoryMode, ReturnBreaks without FullTable).
	ErrBadOptions = fmt.Errorf("%w: invalid options", ErrInvalidArgument)

	// ErrBadBreaks indicates a break list that does not describe a partition
	// of the observations (empty, not strictly increasing, or last != n).
	ErrBadBreaks = fmt.Errorf("%w: malformed breaks", ErrInvalidArgument)
)
