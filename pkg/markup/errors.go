package markup

import (
	"errors"
	"fmt"
)

// Validation errors returned by Build
var (
	ErrEmptyTag             = errors.New("tag cannot be empty")
	ErrInvalidTagCharacters = errors.New("tag contains invalid characters")
	ErrInvalidAttributeKey  = errors.New("attribute key contains invalid characters")
)

// KeyError reports the attribute row whose key could not be turned into an
// identifier. It unwraps to ErrInvalidAttributeKey.
type KeyError struct {
	Index int
	Key   string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("attribute %d (%q): %v", e.Index+1, e.Key, ErrInvalidAttributeKey)
}

func (e *KeyError) Unwrap() error {
	return ErrInvalidAttributeKey
}
