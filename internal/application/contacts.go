package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/bnema/aws-accounts-cli/internal/ports"
)

type ContactManager struct {
	contacts ports.AccountContacts
	logger   *slog.Logger
}

func NewContactManager(contacts ports.AccountContacts, logger *slog.Logger) *ContactManager {
	return &ContactManager{contacts: contacts, logger: loggerOrDiscard(logger)}
}

// Put writes one alternate contact, validating its type first.
func (m *ContactManager) Put(ctx context.Context, accountID domain.AccountID, contact domain.AlternateContact) error {
	contactType, err := domain.ParseContactType(string(contact.Type))
	if err != nil {
		return err
	}
	contact.Type = contactType

	if err := m.contacts.PutAlternateContact(ctx, accountID, contact); err != nil {
		return fmt.Errorf("put %s contact: %w", contactType, err)
	}
	m.logger.Info("alternate contact updated", "account_id", accountID, "type", contactType)

	return nil
}

func (m *ContactManager) Delete(ctx context.Context, accountID domain.AccountID, rawType string) error {
	contactType, err := domain.ParseContactType(rawType)
	if err != nil {
		return err
	}

	if err := m.contacts.DeleteAlternateContact(ctx, accountID, contactType); err != nil {
		return fmt.Errorf("delete %s contact: %w", contactType, err)
	}
	m.logger.Info("alternate contact deleted", "account_id", accountID, "type", contactType)

	return nil
}
