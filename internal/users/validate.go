package users

import (
	"net/mail"
	"regexp"
	"strings"
)

var documentPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,15}$`)

// ValidateDocumentID checks that s is alphanumeric and 6 to 15 characters long.
func ValidateDocumentID(s string) error {
	if !documentPattern.MatchString(s) {
		return ErrInvalidDocument
	}
	return nil
}

// ValidateName checks that s is not empty or blank.
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidateEmail checks that s is a plain, well-formed email address.
// Addresses with display names or surrounding whitespace are rejected.
func ValidateEmail(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateBirthDate parses an ISO YYYY-MM-DD string and checks that the date
// is strictly before today.
func ValidateBirthDate(s string) (Date, error) {
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}

	if !d.Before(Today().Time) {
		return Date{}, ErrFutureDate
	}

	return d, nil
}

// buildUser validates a create command and derives the stored representation:
// uppercased document id, lowercased email, and the normalized name fields.
func buildUser(cmd CreateCommand) (User, error) {
	if err := ValidateDocumentID(cmd.DocumentID); err != nil {
		return User{}, err
	}
	if err := ValidateName(cmd.Name); err != nil {
		return User{}, err
	}
	if err := ValidateEmail(cmd.Email); err != nil {
		return User{}, err
	}

	birth, err := ValidateBirthDate(cmd.BirthDate)
	if err != nil {
		return User{}, err
	}

	return User{
		DocumentID:     strings.ToUpper(cmd.DocumentID),
		Name:           cmd.Name,
		Email:          strings.ToLower(cmd.Email),
		BirthDate:      birth,
		PhotoURL:       cmd.PhotoURL,
		NameNormalized: Normalize(cmd.Name),
		NameLower:      strings.ToLower(cmd.Name),
	}, nil
}
