package catalog

import "strings"

const (
	maxNameLength        = 100
	maxDescriptionLength = 800
	maxDeveloperLength   = 100
	maxPublisherLength   = 100
	maxReleaseDateLength = 100
	maxAuthorLength      = 80
	maxCommentLength     = 800
)

const (
	msgAllFieldsRequired = "All fields must be filled out, except id when adding a new game."
	msgFieldTooLong      = "Field lengths exceed the allowed limit"
	msgCommentRequired   = "Both name and comment are required."
	msgCommentTooLong    = "Name or comment exceeds the allowed length"
)

// ValidateNewGame checks an add submission before any side effect (such as
// persisting an uploaded picture) happens.
func ValidateNewGame(in GameInput) error {
	return validateAddGame(in)
}

// ValidateGameUpdate checks the length constraints of an update submission.
func ValidateGameUpdate(in GameInput) error {
	return validateGameLengths(in)
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func validateAddGame(in GameInput) error {
	if isBlank(in.Name) || isBlank(in.Description) || isBlank(in.Developer) ||
		isBlank(in.Publisher) || isBlank(in.ReleaseDate) {
		return &ValidationError{Message: msgAllFieldsRequired}
	}
	return validateGameLengths(in)
}

// Updates allow empty fields (omitted fields keep their prior values) but
// still reject oversized ones before anything is written.
func validateGameLengths(in GameInput) error {
	if len(in.Name) > maxNameLength ||
		len(in.Description) > maxDescriptionLength ||
		len(in.Developer) > maxDeveloperLength ||
		len(in.Publisher) > maxPublisherLength ||
		len(in.ReleaseDate) > maxReleaseDateLength {
		return &ValidationError{Message: msgFieldTooLong}
	}
	return nil
}

func validateComment(author, body string) error {
	if isBlank(author) || isBlank(body) {
		return &ValidationError{Message: msgCommentRequired}
	}
	if len(author) > maxAuthorLength || len(body) > maxCommentLength {
		return &ValidationError{Message: msgCommentTooLong}
	}
	return nil
}
