package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticateFailsClosedWithoutDatabase(t *testing.T) {
	svc := NewAuthService(nil)

	_, err := svc.Authenticate("admin", "admin123")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticateRejectsEmptyArguments(t *testing.T) {
	svc := NewAuthService(nil)

	_, err := svc.Authenticate("", "admin123")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate("admin", "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
