package params

import (
	"errors"
	"fmt"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// FieldError reports the first rule a parameter set broke.
type FieldError struct {
	Field      string
	Value      string
	Standard   string
	Choices    []string
	Suggestion string
	msg        string
}

func (e *FieldError) Error() string {
	return e.msg
}

type InvalidConfigurationError struct {
	Standard string
	Err      error
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s parameters: %v", e.Standard, e.Err)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Err
}

func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// InvariantError is raised as a panic when a parameter set passed validation
// but the catalog has no identifier for it.
type InvariantError struct {
	Code  string
	Frame string
	VLSNR bool
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("params: code rate %q has no identifier for %s frames with VL-SNR=%t after validation passed; catalog and validator are out of sync",
		e.Code, e.Frame, e.VLSNR)
}
