// SPDX-License-Identifier: MIT

package search

import "errors"

// Sentinel errors. Functions wrap them with context via fmt.Errorf("...: %w");
// match with errors.Is.
var (
	// ErrSearchSpaceTooLarge indicates an element ceiling above MaxElements.
	ErrSearchSpaceTooLarge = errors.New("search: search space too large")

	// ErrBrokenTopology indicates a divider result with an empty leg.
	ErrBrokenTopology = errors.New("search: broken topology")

	// ErrInaccurateResult indicates a stored value that does not match its
	// recomputation from the children.
	ErrInaccurateResult = errors.New("search: inaccurate result")

	// ErrNegativeValue indicates a recomputed combined value below zero.
	ErrNegativeValue = errors.New("search: negative value")

	// ErrParameterOutOfRange indicates a query field outside its domain.
	ErrParameterOutOfRange = errors.New("search: parameter out of range")

	// ErrParameterRangeReversal indicates a range whose minimum exceeds its maximum.
	ErrParameterRangeReversal = errors.New("search: parameter range reversal")
)
