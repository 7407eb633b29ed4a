package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/model"
	"github.com/DianaCarolina3/recipes/internal/types"
)

// UserService handles user registration and account operations. A user
// record's owner is the user itself.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new user from a validated input. The email arrives
// already lowercased from the schema.
func (s *UserService) Register(ctx context.Context, in types.UserCreateInput) (*model.User, error) {
	var existing model.User
	err := s.db.WithContext(ctx).Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := model.User{
		Name:         in.Name,
		Lastname:     in.Lastname,
		Email:        in.Email,
		PasswordHash: string(hash),
		Photo:        in.Photo,
		Birthdate:    in.Birthdate,
	}
	if in.Cel != nil {
		user.Cel = *in.Cel
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

// GetByID retrieves a user, or a typed not-found error when absent.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

// List returns all users, optionally filtered by name and/or lastname.
func (s *UserService) List(ctx context.Context, filter *types.UserFilter) ([]model.User, error) {
	query := s.db.WithContext(ctx)
	if filter != nil {
		if filter.Name != nil {
			query = query.Where("name LIKE ?", "%"+*filter.Name+"%")
		}
		if filter.Lastname != nil {
			query = query.Where("lastname LIKE ?", "%"+*filter.Lastname+"%")
		}
	}
	var users []model.User
	if err := query.Find(&users).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

// Update applies a partial update on behalf of caller. Scalar fields are
// overwritten only when present.
func (s *UserService) Update(ctx context.Context, id, caller uuid.UUID, role string, in types.UserUpdateInput) (*model.User, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canMutate(caller, role, existing.ID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Lastname != nil {
		updates["lastname"] = *in.Lastname
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		updates["password_hash"] = string(hash)
	}
	if in.Cel != nil {
		updates["cel"] = *in.Cel
	}
	if in.Birthdate != nil {
		updates["birthdate"] = *in.Birthdate
	}
	if in.Photo != nil {
		updates["photo"] = *in.Photo
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return s.GetByID(ctx, id)
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, id, caller uuid.UUID, role string) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canMutate(caller, role, existing.ID); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}
