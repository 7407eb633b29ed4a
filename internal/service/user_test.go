package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/model"
	"github.com/DianaCarolina3/recipes/internal/types"
)

func TestUserRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(context.Background(), types.UserCreateInput{
		Name:     "Ana",
		Lastname: "Lopez",
		Email:    "ana@example.com",
		Password: "secret",
		Photo:    model.DefaultUserPhoto,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, model.DefaultUserPhoto, user.Photo)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	createTestUser(t, db, "ana@example.com", model.RoleUser)

	_, err := svc.Register(context.Background(), types.UserCreateInput{
		Name:     "Ana",
		Lastname: "Lopez",
		Email:    "ana@example.com",
		Password: "secret",
	})

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindConflict, ae.Kind)
}

func TestUserGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.GetByID(context.Background(), uuid.New())

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
}

func TestUserListWithFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	ana := &model.User{Name: "Ana", Lastname: "Lopez", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(ana).Error)
	bruno := &model.User{Name: "Bruno", Lastname: "Diaz", Email: "bruno@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(bruno).Error)

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.List(context.Background(), &types.UserFilter{Name: strp("An")})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Ana", filtered[0].Name)

	filtered, err = svc.List(context.Background(), &types.UserFilter{Lastname: strp("Diaz")})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Bruno", filtered[0].Name)
}

func TestUserUpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "ana@example.com", model.RoleUser)

	updated, err := svc.Update(context.Background(), user.ID, user.ID, model.RoleUser, types.UserUpdateInput{
		Name: strp("Anita"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Anita", updated.Name)
	assert.Equal(t, user.Lastname, updated.Lastname)
	assert.Equal(t, user.Email, updated.Email)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "ana@example.com", model.RoleUser)

	updated, err := svc.Update(context.Background(), user.ID, user.ID, model.RoleUser, types.UserUpdateInput{
		Password: strp("newsecret"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, user.PasswordHash, updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newsecret")))
}

func TestUserUpdateByStrangerForbidden(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "ana@example.com", model.RoleUser)
	stranger := createTestUser(t, db, "bruno@example.com", model.RoleUser)

	_, err := svc.Update(context.Background(), user.ID, stranger.ID, model.RoleUser, types.UserUpdateInput{
		Name: strp("Hacked"),
	})

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindAuthorization, ae.Kind)
}

func TestUserDeleteByAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "ana@example.com", model.RoleUser)
	admin := createTestUser(t, db, "admin@example.com", model.RoleAdmin)

	require.NoError(t, svc.Delete(context.Background(), user.ID, admin.ID, model.RoleAdmin))

	_, err := svc.GetByID(context.Background(), user.ID)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
}
