package payload

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched (errors.Is) by every decoding failure.
var ErrMalformedInput = errors.New("malformed base64 audio payload")

// MalformedInputError describes why a payload was rejected.
type MalformedInputError struct {
	// Offset of the first offending character in the original payload.
	Offset int64
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d", ErrMalformedInput, e.Reason, e.Offset)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}
