package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("username or email already taken")
	ErrForbidden = errors.New("actor role not allowed for this operation")
)

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	Username     string    `gorm:"size:255;not null;uniqueIndex:ux_users_username" json:"username"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash []byte    `gorm:"column:password_hash;not null" json:"-"`
	Role         Role      `gorm:"size:16;not null;default:'client'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

// Actor is the authenticated identity attached to a request.
type Actor struct {
	ID   uint64
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
