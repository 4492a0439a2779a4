// Package validators holds the pure field checks applied at every write
// boundary. Messages are part of the HTTP contract and returned verbatim.
package validators

import "fmt"

const ContentMaxLength = 1024

// ValidationResult carries a pass/fail outcome and the human readable
// reason for the first failing check.
type ValidationResult struct {
	Valid   bool
	Message string
}

func invalid(message string) ValidationResult {
	return ValidationResult{Valid: false, Message: message}
}

var valid = ValidationResult{Valid: true}

// ValidateFields checks a full post payload (create and full update).
// A missing field counts as empty. Check order is fixed: Title, Author,
// Content emptiness, Content length.
func ValidateFields(title, author, content *string) ValidationResult {
	if title == nil || *title == "" {
		return invalid("Title is empty")
	}
	if author == nil || *author == "" {
		return invalid("Author is empty")
	}
	if content == nil || *content == "" {
		return invalid("Content is empty")
	}
	if len([]rune(*content)) > ContentMaxLength {
		return invalid(fmt.Sprintf("Content exceed the max length of %d chars", ContentMaxLength))
	}
	return valid
}

// ValidateFieldsIfSet checks a partial payload (patch). A nil field
// means "leave unchanged" and is skipped; an empty string is an
// explicit attempt to clear the field and is rejected.
func ValidateFieldsIfSet(title, author, content *string) ValidationResult {
	if title != nil && *title == "" {
		return invalid("Title is empty")
	}
	if author != nil && *author == "" {
		return invalid("Author is empty")
	}
	if content != nil && *content == "" {
		return invalid("Content is empty")
	}
	if content != nil && len([]rune(*content)) > ContentMaxLength {
		return invalid(fmt.Sprintf("Content exceed the max length of %d chars", ContentMaxLength))
	}
	return valid
}
