package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks a request rejected before touching storage.
// Handlers map it to a 400 response.
var ErrValidation = errors.New("validation failed")

func missingField(name string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, name)
}
