// Command createadmin seeds the initial admin account. Safe to run repeatedly:
// an existing admin with the same email is left untouched.
//
//	ADMIN_EMAIL=admin@example.com ADMIN_PASSWORD=changeme go run ./cmd/createadmin
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/infrastructure/config"
	mongodb "github.com/gradefresh/quality-api/internal/infrastructure/db/mongo"
	"github.com/gradefresh/quality-api/pkg/logger"
)

type seedConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@gradefresh.local"`
	Password string `env:"ADMIN_PASSWORD, required"`
	Name     string `env:"ADMIN_NAME,     default=Admin User"`
	Phone    string `env:"ADMIN_PHONE,    default=+10000000000"`
	Username string `env:"ADMIN_USERNAME, default=admin"`
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	var seed seedConfig
	if err := envconfig.Process(context.Background(), &seed); err != nil {
		log.Fatal().Err(err).Msg("invalid seed configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index setup failed")
	}

	users := mongodb.NewUserRepository(db)

	if existing, err := users.FindByEmail(ctx, seed.Email); err == nil {
		log.Info().Str("email", existing.Email).Msg("admin user already exists")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	now := time.Now().UTC()
	created, err := users.Create(ctx, &domain.User{
		Name:         seed.Name,
		Phone:        seed.Phone,
		Email:        seed.Email,
		Role:         domain.RoleAdmin,
		Username:     seed.Username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("admin user created")
	fmt.Printf("admin account ready: %s\n", created.Email)
}
