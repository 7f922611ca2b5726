package domain

import (
	"fmt"
	"strings"
)

type Tag struct {
	Key   string
	Value string
}

// DesiredAccount is one account block of the declarative configuration.
type DesiredAccount struct {
	FullName                 string
	Email                    string
	OUPath                   string
	Alias                    string
	DeleteDefaultVPC         bool
	AllowDirectMoveBetweenOU bool
	AllowBilling             bool
	UpdateAlternateContacts  bool
	OperationsContact        *AlternateContact
	SecurityContact          *AlternateContact
	BillingContact           *AlternateContact
	Tags                     []Tag
}

func (d DesiredAccount) Validate() error {
	if strings.TrimSpace(d.FullName) == "" {
		return fmt.Errorf("account full name is required")
	}
	if strings.TrimSpace(d.Email) == "" {
		return fmt.Errorf("email is required for account %q", d.FullName)
	}
	if strings.TrimSpace(d.OUPath) == "" {
		return fmt.Errorf("organizational unit path is required for account %q", d.FullName)
	}

	return nil
}

// EffectiveAlias falls back to the full name when no alias was configured.
func (d DesiredAccount) EffectiveAlias() string {
	if d.Alias == "" {
		return d.FullName
	}
	return d.Alias
}

func (d DesiredAccount) BillingAccess() BillingAccess {
	if d.AllowBilling {
		return BillingAccessAllow
	}
	return BillingAccessDeny
}

// Contacts returns the configured contacts in OPERATIONS, SECURITY, BILLING order.
func (d DesiredAccount) Contacts() []AlternateContact {
	contacts := make([]AlternateContact, 0, 3)
	for _, contact := range []*AlternateContact{d.OperationsContact, d.SecurityContact, d.BillingContact} {
		if contact == nil {
			continue
		}
		contacts = append(contacts, *contact)
	}
	return contacts
}
