package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Status   string `json:"status" validate:"omitempty,oneof=OPEN CLOSED"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{Password: "short", Status: "DRAFT"})
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["email"])
	assert.Equal(t, "must be at least 8 characters", verr.Fields["password"])
	assert.Equal(t, "must be one of: OPEN CLOSED", verr.Fields["status"])
	assert.Contains(t, verr.Error(), "email is required")
}

func TestStructAcceptsValidInput(t *testing.T) {
	assert.NoError(t, Struct(sample{Email: "a@b.co", Password: "longenough"}))
}

type patch struct {
	Title *string `json:"title" validate:"omitempty,min=1"`
}

func TestStructRejectsEmptyOptionalText(t *testing.T) {
	empty := ""
	err := Struct(patch{Title: &empty})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at least 1 characters", verr.Fields["title"])

	assert.NoError(t, Struct(patch{}))
}
