package healthdoc

import (
	"errors"
	"fmt"
)

// ErrEmptyName is returned when a document is requested without a file name.
var ErrEmptyName = errors.New("healthdoc: empty document name")

// MissingInputError reports a health file that is not where it should be.
type MissingInputError struct {
	File string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("you seem to have misplaced your %s file", e.File)
}

// SerializationError reports frontmatter that could not be encoded as YAML.
type SerializationError struct {
	Key string
	Err error
}

func (e *SerializationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("failed to serialize frontmatter: %v", e.Err)
	}
	return fmt.Sprintf("failed to serialize frontmatter key %q: %v", e.Key, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
