package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles recognized by the API. Admins bypass per-resource ownership checks.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// DefaultUserPhoto is used when a user registers without a photo URL.
const DefaultUserPhoto = "https://cdn-icons-png.flaticon.com/512/12225/12225881.png"

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Lastname     string         `gorm:"size:100;not null" json:"lastname"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Cel          string         `gorm:"size:30" json:"cel,omitempty"`
	Birthdate    *time.Time     `json:"birthdate,omitempty"`
	Photo        string         `gorm:"size:255" json:"photo"`
	Role         string         `gorm:"size:20;not null;default:'USER'" json:"role"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Photo == "" {
		u.Photo = DefaultUserPhoto
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}
