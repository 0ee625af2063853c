package topic

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every error reporting that no topic was resolved.
	ErrNotFound = errors.New("topic not found")
	// ErrEmptyTopic is matched when resolution produced an empty identifier.
	ErrEmptyTopic = errors.New("empty topic")
	// ErrCancelled is returned by a Chooser when the user cancels the prompt.
	ErrCancelled = errors.New("choice cancelled")
	// ErrAmbiguous is returned when several topics match and no Chooser is
	// available to pick one.
	ErrAmbiguous = errors.New("ambiguous topic")
)

// NotFoundError reports that a query matched no topic.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no topic matches %q", e.Query)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// EmptyTopicError reports that validation saw an empty identifier.
type EmptyTopicError struct {
	Identifier string
}

func (e *EmptyTopicError) Error() string {
	return fmt.Sprintf("%q topic not found", e.Identifier)
}

// Is matches both ErrEmptyTopic and ErrNotFound: an empty identifier after a
// choice is reported the same way as a query with no matches.
func (e *EmptyTopicError) Is(target error) bool {
	return target == ErrEmptyTopic || target == ErrNotFound
}
