// SPDX-License-Identifier: MIT

package topology

import (
	"io"
	"log/slog"
)

// Option configures a Table.
type Option func(*Table)

// WithLogger routes bucket-generation messages (Debug level) to l.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// discardLogger is the zero-configuration logger.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
