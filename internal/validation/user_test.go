package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/learnsync/internal/models"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "amina@example.org", wantErr: false},
		{name: "subdomain", email: "a.b@mail.example.co", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "spaces only", email: "   ", wantErr: true},
		{name: "no at", email: "amina.example.org", wantErr: true},
		{name: "no dot in domain", email: "amina@example", wantErr: true},
		{name: "space inside", email: "am ina@example.org", wantErr: true},
		{name: "double at", email: "a@b@example.org", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		firstName string
		lastName  string
		role      models.Role
		errMsg    string
	}{
		{name: "valid", email: "a@b.co", password: "secret1", firstName: "A", lastName: "B", role: models.RoleInstructor},
		{name: "default role", email: "a@b.co", password: "secret1", firstName: "A", lastName: "B"},
		{name: "missing email", password: "secret1", firstName: "A", lastName: "B", errMsg: "email is required"},
		{name: "missing password", email: "a@b.co", firstName: "A", lastName: "B", errMsg: "password is required"},
		{name: "missing first name", email: "a@b.co", password: "secret1", lastName: "B", errMsg: "first name is required"},
		{name: "missing last name", email: "a@b.co", password: "secret1", firstName: "A", errMsg: "last name is required"},
		{name: "bad email", email: "not-an-email", password: "secret1", firstName: "A", lastName: "B", errMsg: "invalid email format"},
		{name: "short password", email: "a@b.co", password: "123", firstName: "A", lastName: "B", errMsg: "at least 6"},
		{name: "bad role", email: "a@b.co", password: "secret1", firstName: "A", lastName: "B", role: "root", errMsg: "invalid role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.email, tt.password, tt.firstName, tt.lastName, tt.role)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "amina@example.org", NormalizeEmail("  Amina@Example.ORG "))
}
