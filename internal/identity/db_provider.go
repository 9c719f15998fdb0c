package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// profileRow mirrors the profiles table.
type profileRow struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	DisplayName  sql.NullString `db:"display_name"`
	Plan         string         `db:"plan"`
	PasswordHash string         `db:"password_hash"`
	APIToken     sql.NullString `db:"api_token"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (row profileRow) identity() *UserIdentity {
	return &UserIdentity{
		ID:          row.ID,
		Email:       row.Email,
		DisplayName: row.DisplayName.String,
		Plan:        row.Plan,
	}
}

// DBProvider implements Provider on top of the profiles table.
type DBProvider struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewDBProvider(db *sqlx.DB) *DBProvider {
	return &DBProvider{db: db, now: time.Now}
}

// CurrentUser resolves a bearer token to an identity, or (nil, nil) when the
// token is empty or unknown.
func (p *DBProvider) CurrentUser(ctx context.Context, token string) (*UserIdentity, error) {
	if token == "" {
		return nil, nil
	}

	var row profileRow
	err := p.db.GetContext(ctx, &row, "SELECT * FROM profiles WHERE api_token = ?", token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(profile by token) > %w", err)
	}
	return row.identity(), nil
}

// SignUp registers a new profile on the free plan and returns its identity
// with a fresh token.
func (p *DBProvider) SignUp(ctx context.Context, email, password, displayName string) (*UserIdentity, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	var exists int
	if err := p.db.GetContext(ctx, &exists, "SELECT COUNT(*) FROM profiles WHERE email = ?", email); err != nil {
		return nil, "", fmt.Errorf("db.GetContext(profile count) > %w", err)
	}
	if exists > 0 {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("bcrypt.GenerateFromPassword > %w", err)
	}

	id := uuid.NewString()
	token := uuid.NewString()
	now := p.now()
	if _, err := p.db.ExecContext(ctx,
		`INSERT INTO profiles (id, email, display_name, plan, password_hash, api_token, created_at, updated_at)
		VALUES (?, ?, ?, 'free', ?, ?, ?, ?)`,
		id, email, displayName, string(hash), token, now, now); err != nil {
		return nil, "", fmt.Errorf("db.ExecContext(insert profile) > %w", err)
	}

	return &UserIdentity{ID: id, Email: email, DisplayName: displayName, Plan: "free"}, token, nil
}

// SignIn verifies the credentials and rotates the profile's token.
func (p *DBProvider) SignIn(ctx context.Context, email, password string) (*UserIdentity, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var row profileRow
	err := p.db.GetContext(ctx, &row, "SELECT * FROM profiles WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("db.GetContext(profile by email) > %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if _, err := p.db.ExecContext(ctx,
		"UPDATE profiles SET api_token = ?, updated_at = ? WHERE id = ?",
		token, p.now(), row.ID); err != nil {
		return nil, "", fmt.Errorf("db.ExecContext(rotate token) > %w", err)
	}

	return row.identity(), token, nil
}

// SignOut invalidates the token. Unknown tokens are a no-op.
func (p *DBProvider) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if _, err := p.db.ExecContext(ctx,
		"UPDATE profiles SET api_token = NULL, updated_at = ? WHERE api_token = ?",
		p.now(), token); err != nil {
		return fmt.Errorf("db.ExecContext(sign out) > %w", err)
	}
	return nil
}
