package identity

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newMockProvider(t *testing.T) (*DBProvider, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = mockDB.Close()
	})

	provider := NewDBProvider(sqlx.NewDb(mockDB, "mysql"))
	provider.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return provider, mock
}

func profileColumns() []string {
	return []string{"id", "email", "display_name", "plan", "password_hash", "api_token", "created_at", "updated_at"}
}

func TestDBProvider_CurrentUser(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		token        string
		setMock      func(mock sqlmock.Sqlmock)
		wantIdentity *UserIdentity
		wantErr      string
	}{
		{
			name:  "known token",
			token: "token-1",
			setMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM profiles WHERE api_token = \\?").
					WithArgs("token-1").
					WillReturnRows(sqlmock.NewRows(profileColumns()).
						AddRow("user-1", "ada@example.com", "Ada", "student", "hash", "token-1", now, now))
			},
			wantIdentity: &UserIdentity{ID: "user-1", Email: "ada@example.com", DisplayName: "Ada", Plan: "student"},
		},
		{
			name:  "empty token is anonymous",
			token: "",
			setMock: func(mock sqlmock.Sqlmock) {
			},
		},
		{
			name:  "unknown token is anonymous",
			token: "token-2",
			setMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM profiles WHERE api_token = \\?").
					WithArgs("token-2").
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name:  "query error",
			token: "token-3",
			setMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM profiles WHERE api_token = \\?").
					WithArgs("token-3").
					WillReturnError(assert.AnError)
			},
			wantErr: "db.GetContext(profile by token)",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider, mock := newMockProvider(t)
			tc.setMock(mock)

			got, err := provider.CurrentUser(context.Background(), tc.token)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantIdentity, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBProvider_SignUp(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		password string
		setMock  func(mock sqlmock.Sqlmock)
		wantErr  error
	}{
		{
			name:     "new profile",
			email:    "Ada@Example.com",
			password: "secret",
			setMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM profiles WHERE email = \\?").
					WithArgs("ada@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec("INSERT INTO profiles").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:     "email taken",
			email:    "ada@example.com",
			password: "secret",
			setMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM profiles WHERE email = \\?").
					WithArgs("ada@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			wantErr: ErrEmailTaken,
		},
		{
			name:     "empty password",
			email:    "ada@example.com",
			password: "",
			setMock:  func(mock sqlmock.Sqlmock) {},
			wantErr:  ErrInvalidCredentials,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider, mock := newMockProvider(t)
			tc.setMock(mock)

			got, token, err := provider.SignUp(context.Background(), tc.email, tc.password, "Ada")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.NotEmpty(t, token)
			assert.Equal(t, "ada@example.com", got.Email)
			assert.Equal(t, "free", got.Plan)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBProvider_SignIn(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		password string
		setMock  func(mock sqlmock.Sqlmock)
		wantErr  error
	}{
		{
			name:     "valid credentials rotate the token",
			password: "secret",
			setMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM profiles WHERE email = \\?").
					WithArgs("ada@example.com").
					WillReturnRows(sqlmock.NewRows(profileColumns()).
						AddRow("user-1", "ada@example.com", "Ada", "premium", string(hash), "old-token", now, now))
				mock.ExpectExec("UPDATE profiles SET api_token = \\?, updated_at = \\? WHERE id = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:     "wrong password",
			password: "nope",
			setMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM profiles WHERE email = \\?").
					WithArgs("ada@example.com").
					WillReturnRows(sqlmock.NewRows(profileColumns()).
						AddRow("user-1", "ada@example.com", "Ada", "premium", string(hash), "old-token", now, now))
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "secret",
			setMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM profiles WHERE email = \\?").
					WithArgs("ada@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrInvalidCredentials,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider, mock := newMockProvider(t)
			tc.setMock(mock)

			got, token, err := provider.SignIn(context.Background(), "ada@example.com", tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", got.ID)
			assert.NotEmpty(t, token)
			assert.NotEqual(t, "old-token", token)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBProvider_SignOut(t *testing.T) {
	t.Run("clears the token", func(t *testing.T) {
		provider, mock := newMockProvider(t)
		mock.ExpectExec("UPDATE profiles SET api_token = NULL, updated_at = \\? WHERE api_token = \\?").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, provider.SignOut(context.Background(), "token-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		provider, _ := newMockProvider(t)
		assert.NoError(t, provider.SignOut(context.Background(), ""))
	})
}
