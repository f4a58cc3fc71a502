package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidator_ValidateUsername(t *testing.T) {
	validator := NewCredentialsValidator()

	tests := []struct {
		name        string
		username    string
		wantErr     bool
		expectedErr string
	}{
		{
			name:     "valid username",
			username: "user123",
			wantErr:  false,
		},
		{
			name:        "too short",
			username:    "ab",
			wantErr:     true,
			expectedErr: "username must be at least 3 characters",
		},
		{
			name:        "too long",
			username:    strings.Repeat("a", 33),
			wantErr:     true,
			expectedErr: "username must be at most 32 characters",
		},
		{
			name:     "valid with underscore",
			username: "user_name",
			wantErr:  false,
		},
		{
			name:     "valid with dash",
			username: "user-name",
			wantErr:  false,
		},
		{
			name:     "valid with dot",
			username: "user.name",
			wantErr:  false,
		},
		{
			name:        "invalid space",
			username:    "user name",
			wantErr:     true,
			expectedErr: "username can only contain letters, digits, '_', '-', '.'",
		},
		{
			name:        "invalid special char",
			username:    "user@name",
			wantErr:     true,
			expectedErr: "username can only contain letters, digits, '_', '-', '.'",
		},
		{
			name:     "exactly min length",
			username: "abc",
			wantErr:  false,
		},
		{
			name:     "exactly max length",
			username: strings.Repeat("a", 32),
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateUsername(tt.username)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialsValidator_ValidateRegister(t *testing.T) {
	validator := NewCredentialsValidator()

	tests := []struct {
		name        string
		username    string
		password    string
		wantErr     bool
		expectedErr string
	}{
		{
			name:     "valid credentials",
			username: "user123",
			password: "secret",
			wantErr:  false,
		},
		{
			name:        "bad username propagates",
			username:    "ab",
			password:    "secret",
			wantErr:     true,
			expectedErr: "username validation failed",
		},
		{
			name:        "password too short",
			username:    "user123",
			password:    "123",
			wantErr:     true,
			expectedErr: "password must be at least 4 characters",
		},
		{
			name:     "password exactly min length",
			username: "user123",
			password: "1234",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateRegister(tt.username, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
