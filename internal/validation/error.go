package validation

import "fmt"

// Error is a ticket schema violation: the path of the first failing field and
// what constraint it broke. The rendered form is what the API returns in the
// 400 body.
type Error struct {
	Path    string
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%q %s", e.Path, e.Message)
}

func newError(path, message string) *Error {
	return &Error{Path: path, Message: message}
}

func newErrorf(path, format string, args ...interface{}) *Error {
	return &Error{Path: path, Message: fmt.Sprintf(format, args...)}
}
