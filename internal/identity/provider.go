// Package identity provides the identity provider capability: sign-up,
// sign-in, and current-user lookup. The core only ever reads the current
// identity; session mechanics beyond an opaque token are not its business.
package identity

import (
	"context"
	"errors"
)

//go:generate mockgen -source=provider.go -destination=../mocks/identity/mock_provider.go -package=mock_identity

var (
	// ErrInvalidCredentials reports a failed sign-in.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken reports a sign-up with an already registered email.
	ErrEmailTaken = errors.New("email is already registered")
)

// UserIdentity is the resolved identity of an authenticated user.
type UserIdentity struct {
	ID          string
	Email       string
	DisplayName string
	Plan        string
}

// Provider is the capability interface the rest of the system depends on.
// CurrentUser returns (nil, nil) for an empty or unknown token: absence of
// identity is not an error, it means the request is anonymous.
type Provider interface {
	CurrentUser(ctx context.Context, token string) (*UserIdentity, error)
	SignUp(ctx context.Context, email, password, displayName string) (*UserIdentity, string, error)
	SignIn(ctx context.Context, email, password string) (*UserIdentity, string, error)
	SignOut(ctx context.Context, token string) error
}
