package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartlend/internal/domain/user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Usecase struct{ users user.Repository }

func NewUsecase(users user.Repository) *Usecase { return &Usecase{users: users} }

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	ID       uint64    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     user.Role `json:"role"`
}

// Register creates a client-role account. Uniqueness is enforced by the
// store; a violation surfaces as user.ErrDuplicate.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" {
		return nil, errors.New("username and email required")
	}
	if len(in.Password) < 6 {
		return nil, errors.New("password too short (min 6)")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nu := &user.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         user.RoleClient,
	}
	if err := u.users.Create(ctx, nu); err != nil {
		return nil, err
	}
	return &UserDTO{ID: nu.ID, Username: nu.Username, Email: nu.Email, Role: nu.Role}, nil
}

// Login verifies the password and returns the account. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, username, password string) (*user.User, error) {
	username = strings.TrimSpace(username)
	got, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(got.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return got, nil
}
