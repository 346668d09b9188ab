package multierror

import (
	"errors"
	"strings"
)

// MultiError collects independent failures so they can be reported together.
type MultiError struct {
	errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	for i, err := range m.errors {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (m *MultiError) Unwrap() []error {
	return m.errors
}

func (m *MultiError) Errors() []error {
	return m.errors
}

func (m *MultiError) As(target any) bool {
	for _, e := range m.errors {
		if errors.As(e, target) {
			return true
		}
	}
	return false
}

// Append adds errs to err, flattening an existing MultiError. Nil errors are
// skipped and nil is returned when nothing remains.
func Append(err error, errs ...error) error {
	var out []error

	if me, ok := err.(*MultiError); ok {
		out = append(out, me.errors...)
	} else if err != nil {
		out = append(out, err)
	}

	for _, e := range errs {
		if e != nil {
			out = append(out, e)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return &MultiError{errors: out}
}
