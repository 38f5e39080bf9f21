package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smartlend/internal/adapter/repository/mysql"
	"smartlend/internal/config"
	"smartlend/internal/domain/user"
	"smartlend/internal/infrastructure/db"
)

// Seeds an admin account. Self-registration only ever yields clients,
// so the first admin has to come from here.
func main() {
	username := flag.String("username", "", "admin username")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password (min 6 chars)")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("usage: createadmin -username <name> -email <addr> -password <pass>")
	}
	if len(*password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u := &user.User{
		Username:     *username,
		Email:        *email,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
	}
	if err := mysql.NewUserRepository(gormDB).Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicate) {
			log.Fatalf("username or email already taken")
		}
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("admin %q created (id=%d)", u.Username, u.ID)
}
