package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/model"
)

func TestAssertOwnership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	assert.NoError(t, AssertOwnership(owner, owner))

	err := AssertOwnership(stranger, owner)
	require.Error(t, err)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindAuthorization, ae.Kind)

	err = AssertOwnership(uuid.Nil, owner)
	require.Error(t, err)
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindAuthentication, ae.Kind)
}

func TestAssertOwnershipNilCallerBeatsNilOwner(t *testing.T) {
	// An anonymous caller is never treated as the owner of an unowned row.
	err := AssertOwnership(uuid.Nil, uuid.Nil)
	require.Error(t, err)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindAuthentication, ae.Kind)
}

func TestCanMutate(t *testing.T) {
	owner := uuid.New()
	admin := uuid.New()
	stranger := uuid.New()

	assert.NoError(t, canMutate(owner, model.RoleUser, owner))
	assert.NoError(t, canMutate(admin, model.RoleAdmin, owner))

	err := canMutate(stranger, model.RoleUser, owner)
	require.Error(t, err)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindAuthorization, ae.Kind)
}
