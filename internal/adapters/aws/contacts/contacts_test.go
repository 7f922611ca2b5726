package contacts

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/account"
	accounttypes "github.com/aws/aws-sdk-go-v2/service/account/types"
	"github.com/bnema/aws-accounts-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	put     *account.PutAlternateContactInput
	deleted *account.DeleteAlternateContactInput
	err     error
}

func (f *fakeAPI) PutAlternateContact(_ context.Context, in *account.PutAlternateContactInput, _ ...func(*account.Options)) (*account.PutAlternateContactOutput, error) {
	f.put = in
	return &account.PutAlternateContactOutput{}, f.err
}

func (f *fakeAPI) DeleteAlternateContact(_ context.Context, in *account.DeleteAlternateContactInput, _ ...func(*account.Options)) (*account.DeleteAlternateContactOutput, error) {
	f.deleted = in
	return &account.DeleteAlternateContactOutput{}, f.err
}

func TestPutAlternateContactMapsFields(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	err := New(api, "000000000000").PutAlternateContact(context.Background(), "111111111111", domain.AlternateContact{
		Type:  domain.ContactTypeSecurity,
		Name:  "Sec",
		Phone: "0612345678",
		Email: "sec@example.com",
		Title: "CISO",
	})

	require.NoError(t, err)
	assert.Equal(t, "111111111111", aws.ToString(api.put.AccountId))
	assert.Equal(t, accounttypes.AlternateContactTypeSecurity, api.put.AlternateContactType)
	assert.Equal(t, "0612345678", aws.ToString(api.put.PhoneNumber))
	assert.Equal(t, "sec@example.com", aws.ToString(api.put.EmailAddress))
}

func TestManagementAccountIsAddressedWithoutID(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	err := New(api, "000000000000").DeleteAlternateContact(context.Background(), "000000000000", domain.ContactTypeBilling)

	require.NoError(t, err)
	assert.Nil(t, api.deleted.AccountId)
	assert.Equal(t, accounttypes.AlternateContactTypeBilling, api.deleted.AlternateContactType)
}

func TestAlternateContactErrorsAreWrapped(t *testing.T) {
	t.Parallel()

	cause := errors.New("AccessDeniedException")
	err := New(&fakeAPI{err: cause}, "").DeleteAlternateContact(context.Background(), "111111111111", domain.ContactTypeOperations)

	require.ErrorIs(t, err, cause)
	assert.ErrorContains(t, err, "delete alternate contact")
}
