package screener

import (
	"fmt"
	"strings"
)

// SchemaError reports a header that lacks one or more required columns. It is
// fatal: no partial load is returned alongside it.
type SchemaError struct {
	Missing []string // required columns absent from the header
	Found   []string // columns actually present, as read
}

func (e *SchemaError) Error() string {
	if len(e.Found) == 0 {
		return fmt.Sprintf("input header is missing required columns %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("input header is missing required columns %s (found %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// RowError records why a single data row was rejected. Row errors never abort
// a load; they are accumulated and returned alongside the accepted rows.
type RowError struct {
	Row    int // 1-based line number in the source, header included
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d skipped: %s", e.Row, e.Reason)
}

// SourceUnavailableError reports an input file that could not be opened. It
// wraps the underlying cause, so errors.Is(err, fs.ErrNotExist) works on it.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("input %q unavailable: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }
