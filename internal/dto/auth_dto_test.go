package dto

import (
	"testing"

	"github.com/shoplist/backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupInputValidate(t *testing.T) {
	t.Parallel()

	valid := SignupInput{Email: "ana@example.com", FullName: "Ana Torres", Password: "secret1"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		input SignupInput
	}{
		{"missing at sign", SignupInput{Email: "anaexample.com", FullName: "Ana", Password: "secret1"}},
		{"missing domain", SignupInput{Email: "ana@", FullName: "Ana", Password: "secret1"}},
		{"empty full name", SignupInput{Email: "ana@example.com", FullName: "   ", Password: "secret1"}},
		{"short password", SignupInput{Email: "ana@example.com", FullName: "Ana", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.input.Validate()
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}
}

func TestLoginInputValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (&LoginInput{Email: "ana@example.com", Password: "x"}).Validate())
	require.Error(t, (&LoginInput{Email: "nope", Password: "x"}).Validate())
	require.Error(t, (&LoginInput{Email: "ana@example.com", Password: ""}).Validate())
}
