package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email       string `json:"email" validate:"required,email"`
	AccountType string `json:"accountType" validate:"required,is-user-role"`
	JobType     string `json:"jobType" validate:"omitempty,is-job-type"`
	Status      string `form:"status" validate:"omitempty,is-application-status"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(sample{Email: "a@b.co", AccountType: "jobSeeker", JobType: "remote", Status: "hired"})
	assert.NoError(t, err)
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()
	err := v.Validate(sample{Email: "nope", AccountType: "admin", JobType: "gig", Status: "lost"})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Must be a valid email address", verr.Errors["email"])
	assert.Equal(t, "Must be one of: employer, jobSeeker", verr.Errors["accountType"])
	assert.Contains(t, verr.Errors["jobType"], "full-time")
	assert.Contains(t, verr.Errors["status"], "interviewed")
	assert.Contains(t, err.Error(), "field 'accountType'")
}

func TestValidate_Required(t *testing.T) {
	v := New()
	err := v.Validate(sample{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "This field is required", verr.Errors["email"])
	assert.Equal(t, "This field is required", verr.Errors["accountType"])
}
