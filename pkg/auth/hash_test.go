package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{cost: bcrypt.MinCost}

	tests := []struct {
		name        string
		password    string
		expectError error
	}{
		{name: "Valid password", password: "securepassword"},
		{name: "Empty password", password: "", expectError: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Empty(t, hashedPassword)
				return
			}
			assert.NoError(t, err)
			assert.NotEqual(t, tt.password, hashedPassword)
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{cost: bcrypt.MinCost}
	stored, err := hashService.HashPassword("correct horse")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		expected bool
	}{
		{name: "Matching password", hash: stored, password: "correct horse", expected: true},
		{name: "Wrong password", hash: stored, password: "battery staple", expected: false},
		{name: "No stored hash", hash: "", password: "anything", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hashService.ComparePassword(tt.hash, tt.password))
		})
	}
}

func TestNewHashServiceUsesDefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHashService().cost)
}
