package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMove(t *testing.T) {
	t.Parallel()

	const root OUID = "r-root"

	tests := []struct {
		name        string
		from        OUID
		to          OUID
		allowDirect bool
		wantUnsafe  bool
	}{
		{name: "non-root to non-root rejected", from: "ou-x", to: "ou-y", wantUnsafe: true},
		{name: "non-root to non-root allowed when direct moves enabled", from: "ou-x", to: "ou-y", allowDirect: true},
		{name: "non-root to root", from: "ou-x", to: root},
		{name: "root to non-root", from: root, to: "ou-y"},
		{name: "root to non-root with direct moves enabled", from: root, to: "ou-y", allowDirect: true},
		{name: "same ou", from: "ou-x", to: "ou-x"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := CheckMove("111111111111", tc.from, tc.to, root, tc.allowDirect)
			if !tc.wantUnsafe {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrUnsafeMove)
			var unsafe *UnsafeMoveError
			require.True(t, errors.As(err, &unsafe))
			assert.Equal(t, AccountID("111111111111"), unsafe.AccountID)
			assert.Equal(t, tc.from, unsafe.From)
			assert.Equal(t, tc.to, unsafe.To)
		})
	}
}
