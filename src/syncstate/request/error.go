package request

import (
	"fmt"
)

// Input is well formed, but breaks a rule spanning multiple fields
type ValidationError struct {
	err    error
	Fields map[string]any
}

func NewValidationError(err error) *ValidationError {
	return &ValidationError{err: err, Fields: make(map[string]any)}
}

func (self *ValidationError) WithField(name string, value any) *ValidationError {
	self.Fields[name] = value
	return self
}

func (self *ValidationError) Error() string {
	return self.err.Error()
}

func (self *ValidationError) Unwrap() error {
	return self.err
}

func (self *ValidationError) String() string {
	return fmt.Sprintf("%s %v", self.err, self.Fields)
}
