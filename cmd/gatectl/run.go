package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/account-gate/pkg/auth"
	"github.com/tendant/account-gate/pkg/domain"
)

// userStore is the part of the users repository gatectl drives.
type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateAccountStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
}

type tokenIssuer interface {
	IssueAccessToken(user *domain.User) (string, time.Time, error)
}

var errUsage = errors.New("usage: gatectl status <email> <STATUS> | verify <email> | token <email>")

func run(ctx context.Context, args []string, users userStore, tokens tokenIssuer, out io.Writer) error {
	if !validArgs(args) {
		return errUsage
	}

	email := auth.NormalizeEmail(args[1])
	if err := auth.ValidateEmail(email); err != nil {
		return err
	}

	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", email, err)
	}

	switch args[0] {
	case "status":
		status := domain.AccountStatus(strings.ToUpper(strings.TrimSpace(args[2])))
		previous := user.AccountStatus
		if err := users.UpdateAccountStatus(ctx, user.ID, status); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		fmt.Fprintf(out, "%s: %s -> %s\n", user.Email, previous, status)

	case "verify":
		if err := users.MarkEmailVerified(ctx, user.ID); err != nil {
			return fmt.Errorf("mark verified: %w", err)
		}
		fmt.Fprintf(out, "%s: email verified\n", user.Email)

	case "token":
		token, expiresAt, err := tokens.IssueAccessToken(user)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		if err := user.Principal().CheckAccess(); err != nil {
			fmt.Fprintf(out, "# warning: %s will be refused on protected routes: %v\n", user.Email, err)
		}
		fmt.Fprintf(out, "%s\n# expires %s\n", token, expiresAt.UTC().Format(time.RFC3339))

	default:
		return errUsage
	}

	return nil
}

// validArgs checks the command and its arity before anything touches the database.
func validArgs(args []string) bool {
	if len(args) < 2 {
		return false
	}
	switch args[0] {
	case "status":
		return len(args) == 3 && strings.TrimSpace(args[2]) != ""
	case "verify", "token":
		return len(args) == 2
	default:
		return false
	}
}
