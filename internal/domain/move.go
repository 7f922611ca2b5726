package domain

type Step string

const (
	StepLookup   Step = "lookup"
	StepCreate   Step = "create"
	StepMove     Step = "move"
	StepTag      Step = "tag"
	StepAlias    Step = "alias"
	StepContacts Step = "contacts"
	StepVPC      Step = "default-vpc"
)

// CheckMove enforces the root-transit policy: an account may leave or enter the
// root freely, but a hop between two non-root OUs needs allowDirect.
func CheckMove(accountID AccountID, from, to, root OUID, allowDirect bool) error {
	if from == to || allowDirect {
		return nil
	}
	if from == root || to == root {
		return nil
	}

	return &UnsafeMoveError{AccountID: accountID, From: from, To: to}
}
