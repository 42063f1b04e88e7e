package log

import (
	"fmt"
)

type LazySprintf struct {
	format string
	args   []any
}

// NewLazySprintf defers fmt.Sprintf until the Stringer interface is invoked.
// This is particularly useful for avoiding calling Sprintf when debugging is not
// active.
func NewLazySprintf(format string, args ...any) *LazySprintf {
	return &LazySprintf{format, args}
}

func (l *LazySprintf) String() string {
	return fmt.Sprintf(l.format, l.args...)
}

// LazyBody wraps a JSON payload and defers the []byte to string conversion
// until the Stringer interface is invoked. Payloads longer than max bytes are
// cut and suffixed with "...".
type LazyBody struct {
	body []byte
	max  int
}

// NewLazyBody returns a LazyBody for body. A max of zero or less keeps the
// whole payload.
func NewLazyBody(body []byte, max int) *LazyBody {
	return &LazyBody{body: body, max: max}
}

func (l *LazyBody) String() string {
	if l.max > 0 && len(l.body) > l.max {
		return string(l.body[:l.max]) + "..."
	}
	return string(l.body)
}
