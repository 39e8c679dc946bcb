package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "rule not found")
	assert.EqualError(t, err, "not_found: rule not found")
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(err, CodeConflict))
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "failed to load rule")

	assert.EqualError(t, err, "internal_error: failed to load rule: connection refused")
	assert.ErrorIs(t, err, cause)
	assert.True(t, HasCode(err, CodeInternal))
}

func TestWrapNil(t *testing.T) {
	err := Wrap(nil, CodeValidation, "rule_id is required")
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeValidation))
}

func TestHasCodeWalksChain(t *testing.T) {
	inner := New(CodeConflict, "rule already exists")
	outer := Wrap(inner, CodeInternal, "create failed")

	assert.True(t, HasCode(outer, CodeInternal))
	assert.True(t, HasCode(outer, CodeConflict), "inner codes stay visible")
	assert.False(t, HasCode(outer, CodeNotFound))
	assert.False(t, HasCode(nil, CodeInternal))
	assert.False(t, HasCode(errors.New("plain"), CodeInternal))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeConflict, CodeOf(New(CodeConflict, "dup")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")), "uncoded errors default to internal")

	outer := Wrap(New(CodeNotFound, "missing"), CodeBadRequest, "bad input")
	assert.Equal(t, CodeBadRequest, CodeOf(outer), "outermost code wins")
}
