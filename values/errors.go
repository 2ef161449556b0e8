// SPDX-License-Identifier: MIT

package values

import "errors"

// Every message is prefixed with "values: ". Callers add context with
// fmt.Errorf("...: %w", ErrX) and match with errors.Is.
var (
	// ErrInvalidValueList is returned by NewCatalog when a value is not a
	// positive finite number or appears more than once.
	ErrInvalidValueList = errors.New("values: invalid element value list")

	// ErrUnknownSeries is returned when a series name is neither a known
	// standard series nor a parsable value list.
	ErrUnknownSeries = errors.New("values: unknown series")

	// ErrEmptyRange is returned when a series expansion yields no value
	// inside the requested [min, max] window.
	ErrEmptyRange = errors.New("values: no values in the specified range")

	// ErrBadValue is returned when a value literal cannot be parsed.
	ErrBadValue = errors.New("values: malformed value")
)
