package mysql

import (
	"context"
	"errors"
	"testing"

	domain "smartlend/internal/domain/user"

	"gorm.io/gorm"
)

func makeUser(username, email string) *domain.User {
	return &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: []byte("$2a$10$notarealhashnotarealhashnotare"),
		Role:         domain.RoleClient,
	}
}

func TestUserCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("alice", "alice@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	byName, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if byName.Email != "alice@example.com" || byName.Role != domain.RoleClient {
		t.Fatalf("round-trip mismatch: %+v", byName)
	}

	byID, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Username != "alice" {
		t.Fatalf("GetByID mismatch: %+v", byID)
	}
}

func TestUserCreateDuplicateTranslated(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeUser("bob", "bob@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// same username
	err := repo.Create(ctx, makeUser("bob", "other@example.com"))
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("duplicate username: want ErrDuplicate, got %v", err)
	}
	// same email
	err = repo.Create(ctx, makeUser("robert", "bob@example.com"))
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("duplicate email: want ErrDuplicate, got %v", err)
	}
}

func TestUserGetMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}
