package topic

// Validate rejects an empty topic identifier. It runs on every final
// identifier, whether or not a choice prompt was shown. Only the empty string
// is rejected; any other identifier is looked up as given.
func Validate(id string) error {
	if id == "" {
		return &EmptyTopicError{Identifier: id}
	}
	return nil
}
