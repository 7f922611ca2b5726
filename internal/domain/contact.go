package domain

import "strings"

type ContactType string

const (
	ContactTypeOperations ContactType = "OPERATIONS"
	ContactTypeSecurity   ContactType = "SECURITY"
	ContactTypeBilling    ContactType = "BILLING"
)

func ParseContactType(raw string) (ContactType, error) {
	switch ContactType(strings.ToUpper(strings.TrimSpace(raw))) {
	case ContactTypeOperations:
		return ContactTypeOperations, nil
	case ContactTypeSecurity:
		return ContactTypeSecurity, nil
	case ContactTypeBilling:
		return ContactTypeBilling, nil
	default:
		return "", &UnsupportedContactTypeError{Type: raw}
	}
}

type AlternateContact struct {
	Type ContactType
	Name string
	// Phone keeps the literal form from the configuration, leading zeros included.
	Phone string
	Email string
	Title string
}
