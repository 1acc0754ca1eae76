package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerLike struct {
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email"    validate:"required"`
	Phone    string  `json:"phone"    validate:"required"`
	Note     *string `json:"note"`
	Internal string  `json:"-"`
}

func TestValidate_ListsMissingFieldsByJSONName(t *testing.T) {
	v := New()

	err := v.Validate(&registerLike{Email: "a@b.c"})
	require.Error(t, err)

	var mf *MissingFieldsError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, []string{"username", "phone"}, mf.Fields)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "missing required fields: username, phone", err.Error())
}

func TestValidate_OptionalFieldsMayBeAbsent(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&registerLike{Username: "u", Email: "e", Phone: "p"}))
}

func TestValidate_EmptyStringCountsAsMissing(t *testing.T) {
	v := New()

	err := v.Validate(&registerLike{Username: "", Email: "", Phone: ""})
	var mf *MissingFieldsError
	require.True(t, errors.As(err, &mf))
	assert.Len(t, mf.Fields, 3)
}

func TestValidate_NoFormatChecks(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&registerLike{Username: "x", Email: "not-an-email", Phone: "abc"}))
}
