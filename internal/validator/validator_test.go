package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	Email  string `json:"email" validate:"required,email"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
	Role   string `json:"role" validate:"is-user-role"`
}

func TestValidateOK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleForm{Email: "ana@example.com", Rating: 4, Role: "cuidador"})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&sampleForm{Email: "not-an-email", Rating: 9, Role: "cliente"})
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "rating")
}

func TestValidateUserRoleTag(t *testing.T) {
	v := New()
	err := v.Validate(&sampleForm{Email: "ana@example.com", Rating: 3, Role: "superuser"})
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "Unknown user role", vErr.Errors["role"])
}
