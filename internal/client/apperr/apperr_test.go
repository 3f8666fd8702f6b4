package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	cause := errors.New("disk full")

	tests := []struct {
		err      error
		target   error
		name     string
		expected bool
	}{
		{name: "validation matches", err: Validation("email is required"), target: ErrValidation, expected: true},
		{name: "validation is not auth", err: Validation("email is required"), target: ErrAuth, expected: false},
		{name: "conflict matches", err: Conflict("User with this email already exists", nil), target: ErrConflict, expected: true},
		{name: "auth matches", err: Auth("Invalid email or password"), target: ErrAuth, expected: true},
		{name: "wrapped store matches", err: fmt.Errorf("save user: %w", Store("put users", cause)), target: ErrStore, expected: true},
		{name: "store unwraps to cause", err: Store("put users", cause), target: cause, expected: true},
		{name: "sync matches", err: Sync("register", cause), target: ErrSync, expected: true},
		{name: "plain error", err: cause, target: ErrStore, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.Is(tt.err, tt.target))
		})
	}
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "Invalid email or password", Auth("Invalid email or password").Error())
	assert.Equal(t, "put users: disk full", Store("put users", errors.New("disk full")).Error())
	assert.Equal(t, "first name is required", Validation("%s is required", "first name").Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("wrap: %w", Conflict("dup", nil))))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "auth", KindAuth.String())
}
