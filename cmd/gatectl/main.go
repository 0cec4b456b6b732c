// Command gatectl manages account state and issues access tokens for operators.
//
// Usage:
//
//	gatectl status <email> <STATUS>   set the account status
//	gatectl verify <email>            mark the email as verified
//	gatectl token <email>             print an access token for the user
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/tendant/account-gate/internal/config"
	"github.com/tendant/account-gate/pkg/auth"
	"github.com/tendant/account-gate/pkg/repository"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(repository.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens := auth.NewTokenService(auth.TokenConfig{
		Secret:         []byte(cfg.JWTSecret),
		Issuer:         cfg.JWTIssuer,
		AccessTokenTTL: cfg.AccessTokenTTL,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := run(ctx, os.Args[1:], repository.NewUsersRepository(db), tokens, os.Stdout); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
