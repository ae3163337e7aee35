package timeexchange

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrNotFound = Statusf(404, "Not found")
)

var _ error = &statusError{}

type statusError struct {
	Code int
	Text string

	WrappedError error
}

func (s *statusError) LogValue() slog.Value {
	if s == nil {
		return slog.Value{}
	}
	return slog.StringValue(s.Text)
}

func (s *statusError) Error() string {
	return s.Text
}

func (s *statusError) Unwrap() error {
	return s.WrappedError
}

func (s *statusError) Is(target error) bool {
	if err, ok := target.(*statusError); ok {
		return err.Text == s.Text
	}
	return false
}

// Statusf returns an error carrying an HTTP status code.
func Statusf(status int, format string, args ...any) error {
	return &statusError{Code: status, Text: fmt.Sprintf(format, args...)}
}

// WrapStatus attaches a status code and a message to err.
func WrapStatus(err error, status int, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &statusError{Code: status, Text: fmt.Sprintf(format, args...), WrappedError: err}
}

// ErrorCode returns the status code attached to err, 200 for nil errors and
// 500 for errors that carry none.
func ErrorCode(err error) int {
	if err == nil {
		return 200
	}
	var err2 *statusError
	if errors.As(err, &err2) {
		return err2.Code
	}
	return 500
}
