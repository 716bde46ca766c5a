package account

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	PasswordCost = bcrypt.MinCost
}

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid_account",
			email:    "c@example.com",
			password: "p@aaSw0rd!",
		},
		{
			name:     "email_is_trimmed",
			email:    "  c@example.com ",
			password: "p@aaSw0rd!",
		},
		{
			name:     "empty_email",
			email:    " ",
			password: "p@aaSw0rd!",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "empty_password",
			email:    "c@example.com",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now().UTC()
			acc, err := NewAccount(tt.email, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, acc)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, acc)
			_, parseErr := uuid.Parse(acc.ID)
			assert.NoError(t, parseErr, "ID should be a UUID")
			assert.Equal(t, strings.TrimSpace(tt.email), acc.Email)
			assert.NotEqual(t, []byte(tt.password), acc.PasswordHash)
			assert.True(t, acc.VerifyPassword(tt.password))
			assert.False(t, acc.VerifyPassword(tt.password+"x"))
			assert.WithinDuration(t, before, acc.CreatedAt, 2*time.Second)
		})
	}
}

func TestNewAccount_PasswordTooLong(t *testing.T) {
	acc, err := NewAccount("c@example.com", strings.Repeat("A1", 40))

	require.Error(t, err)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
	assert.Nil(t, acc)
}

func TestNewAccount_PasswordLimitCountsBytes(t *testing.T) {
	multiByte := "A1" + strings.Repeat("é", 35)
	require.Equal(t, MaxPasswordBytes, len(multiByte))

	acc, err := NewAccount("c@example.com", multiByte)
	require.NoError(t, err)
	assert.True(t, acc.VerifyPassword(multiByte))

	acc, err = NewAccount("c@example.com", multiByte+"x")
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.Nil(t, acc)
}

func TestAccount_Key(t *testing.T) {
	acc := &Account{Email: " C@Example.com"}

	assert.Equal(t, "c@example.com", acc.Key())
	assert.Equal(t, acc.Key(), NormalizeEmail("c@EXAMPLE.com "))
}

func TestAlreadyExistsError_Error(t *testing.T) {
	err := &AlreadyExistsError{Email: "c@example.com"}

	assert.Equal(t, "account with email 'c@example.com' already exists", err.Error())
}
