package yaml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/aws-accounts-cli/internal/domain"
	yaml "gopkg.in/yaml.v3"
)

const accountsKey = "Accounts"

const (
	keyFullName          = "AccountFullName"
	keyEmail             = "Email"
	keyOUPath            = "OrganizationalUnitPath"
	keyAlias             = "Alias"
	keyDeleteDefaultVPC  = "DeleteDefaultVPC"
	keyAllowDirectMove   = "AllowDirectMoveBetweenOU"
	keyAllowBilling      = "AllowBilling"
	keyTags              = "Tags"
	keyAlternateContacts = "AlternateContacts"
)

var requiredKeys = []string{keyFullName, keyOUPath, keyEmail}

// LoadDir reads every *.yaml and *.yml file of dir in name order and returns the
// desired accounts in file order, then declaration order.
func LoadDir(ctx context.Context, dir string) ([]domain.DesiredAccount, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read config directory: %w", err)
	}

	var accounts []domain.DesiredAccount
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}

		loaded, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, loaded...)
	}

	return accounts, nil
}

func LoadFile(path string) ([]domain.DesiredAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(filepath.Base(path), data)
}

// Parse decodes one configuration document. name only labels errors.
func Parse(name string, data []byte) ([]domain.DesiredAccount, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, name, err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s: expected a mapping with an %s list", domain.ErrInvalidConfig, name, accountsKey)
	}

	list := mappingValue(doc.Content[0], accountsKey)
	if list == nil {
		return nil, fmt.Errorf("%w: %s: missing %s list", domain.ErrInvalidConfig, name, accountsKey)
	}
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: %s: %s must be a list", domain.ErrInvalidConfig, name, accountsKey)
	}

	accounts := make([]domain.DesiredAccount, 0, len(list.Content))
	for i, node := range list.Content {
		account, err := parseAccount(node)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s[%d] %q: %w", domain.ErrInvalidConfig, name, accountsKey, i, accountLabel(node), err)
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func parseAccount(node *yaml.Node) (domain.DesiredAccount, error) {
	account := domain.DesiredAccount{AllowBilling: true}
	if node.Kind != yaml.MappingNode {
		return account, fmt.Errorf("account must be a mapping")
	}

	for _, key := range requiredKeys {
		if mappingValue(node, key) == nil {
			return account, fmt.Errorf("missing %s", key)
		}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]

		var err error
		switch key {
		case keyFullName:
			account.FullName, err = scalar(key, value)
		case keyEmail:
			account.Email, err = scalar(key, value)
		case keyOUPath:
			account.OUPath, err = scalar(key, value)
		case keyAlias:
			account.Alias, err = str(key, value)
		case keyDeleteDefaultVPC:
			account.DeleteDefaultVPC, err = boolean(key, value)
		case keyAllowDirectMove:
			account.AllowDirectMoveBetweenOU, err = boolean(key, value)
		case keyAllowBilling:
			account.AllowBilling, err = boolean(key, value)
		case keyTags:
			account.Tags, err = tags(value)
		case keyAlternateContacts:
			err = contacts(&account, value)
		default:
			err = fmt.Errorf("key %s is not supported", key)
		}
		if err != nil {
			return account, err
		}
	}

	return account, nil
}

func tags(node *yaml.Node) ([]domain.Tag, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s must be a list", keyTags)
	}

	var out []domain.Tag
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%s entries must be mappings, found %q", keyTags, item.Value)
		}
		for i := 0; i+1 < len(item.Content); i += 2 {
			value, err := scalar("tag "+item.Content[i].Value, item.Content[i+1])
			if err != nil {
				return nil, err
			}
			out = append(out, domain.Tag{Key: item.Content[i].Value, Value: value})
		}
	}

	return out, nil
}

func contacts(account *domain.DesiredAccount, node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s must be a mapping", keyAlternateContacts)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		rawType, value := node.Content[i].Value, node.Content[i+1]
		contactType, err := domain.ParseContactType(rawType)
		if err != nil {
			return err
		}

		parsed, err := contact(contactType, value)
		if err != nil {
			return fmt.Errorf("%s %s: %w", keyAlternateContacts, rawType, err)
		}

		switch contactType {
		case domain.ContactTypeOperations:
			account.OperationsContact = parsed
		case domain.ContactTypeSecurity:
			account.SecurityContact = parsed
		case domain.ContactTypeBilling:
			account.BillingContact = parsed
		}
		account.UpdateAlternateContacts = true
	}

	return nil
}

func contact(contactType domain.ContactType, node *yaml.Node) (*domain.AlternateContact, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("should be a mapping but found %q", node.Value)
	}

	contact := &domain.AlternateContact{Type: contactType}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		field, err := scalar(key, value)
		if err != nil {
			return nil, err
		}

		switch key {
		case "Name":
			contact.Name = field
		case "Email":
			contact.Email = field
		case "PhoneNumber":
			contact.Phone = field
		case "Title":
			contact.Title = field
		default:
			return nil, fmt.Errorf("key %s is not supported", key)
		}
	}

	return contact, nil
}

// scalar returns the literal text of a scalar, so numbers keep leading zeros.
func scalar(key string, node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%s must be a scalar", key)
	}
	return node.Value, nil
}

func str(key string, node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return node.Value, nil
}

func boolean(key string, node *yaml.Node) (bool, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!bool" {
		return false, fmt.Errorf("%s must be a boolean", key)
	}

	var value bool
	if err := node.Decode(&value); err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func accountLabel(node *yaml.Node) string {
	if node.Kind != yaml.MappingNode {
		return ""
	}
	if value := mappingValue(node, keyFullName); value != nil {
		return value.Value
	}
	return ""
}

func isYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
