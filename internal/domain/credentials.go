package domain

import "time"

// Credentials are short-lived keys issued by a role assumption. They belong to the
// client that requested them and are never written anywhere.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expires         time.Time
}

func (c Credentials) Expired(now time.Time) bool {
	if c.Expires.IsZero() {
		return false
	}
	return !now.Before(c.Expires)
}

// RoleARN builds the ARN of a role in the given account.
func RoleARN(partition string, accountID AccountID, roleName string) string {
	if partition == "" {
		partition = "aws"
	}
	return "arn:" + partition + ":iam::" + string(accountID) + ":role/" + roleName
}

const DefaultAccessRoleName = "OrganizationAccountAccessRole"
