package contacts

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/account"
	accounttypes "github.com/aws/aws-sdk-go-v2/service/account/types"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
)

type API interface {
	PutAlternateContact(ctx context.Context, params *account.PutAlternateContactInput, optFns ...func(*account.Options)) (*account.PutAlternateContactOutput, error)
	DeleteAlternateContact(ctx context.Context, params *account.DeleteAlternateContactInput, optFns ...func(*account.Options)) (*account.DeleteAlternateContactOutput, error)
}

// Contacts manages alternate contacts of member accounts from the management
// account. The management account itself must be addressed without an id.
type Contacts struct {
	api        API
	management domain.AccountID
}

var _ ports.AccountContacts = (*Contacts)(nil)

func New(api API, management domain.AccountID) *Contacts {
	return &Contacts{api: api, management: management}
}

func NewFromConfig(cfg aws.Config, management domain.AccountID) *Contacts {
	return New(account.NewFromConfig(cfg), management)
}

func (c *Contacts) PutAlternateContact(ctx context.Context, accountID domain.AccountID, contact domain.AlternateContact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := c.api.PutAlternateContact(ctx, &account.PutAlternateContactInput{
		AccountId:            c.target(accountID),
		AlternateContactType: accounttypes.AlternateContactType(contact.Type),
		Name:                 aws.String(contact.Name),
		EmailAddress:         aws.String(contact.Email),
		PhoneNumber:          aws.String(contact.Phone),
		Title:                aws.String(contact.Title),
	})
	if err != nil {
		return fmt.Errorf("put alternate contact: %w", err)
	}

	return nil
}

func (c *Contacts) DeleteAlternateContact(ctx context.Context, accountID domain.AccountID, contactType domain.ContactType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := c.api.DeleteAlternateContact(ctx, &account.DeleteAlternateContactInput{
		AccountId:            c.target(accountID),
		AlternateContactType: accounttypes.AlternateContactType(contactType),
	})
	if err != nil {
		return fmt.Errorf("delete alternate contact: %w", err)
	}

	return nil
}

func (c *Contacts) target(accountID domain.AccountID) *string {
	if accountID == "" || accountID == c.management {
		return nil
	}
	return aws.String(string(accountID))
}
