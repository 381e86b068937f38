package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// seqIDs hands out "id-1", "id-2", ... in call order.
type seqIDs struct{ n int }

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, &seqIDs{}, logger.Nop()).(*userRepository)
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// ── CreateUser ────────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Email: "ada@example.com", Name: "Ada", PasswordHash: strPtr("$2a$10$hash")}

	mock.ExpectQuery(`INSERT INTO users \(id,email,name,password_hash,interests\)`).
		WithArgs("id-1", "ada@example.com", "Ada", "$2a$10$hash", "{}").
		WillReturnRows(userRows().AddRow("id-1", "ada@example.com", "Ada", "$2a$10$hash", "{}", testTime, testTime))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "ada@example.com", created.Email)
	require.NotNil(t, created.PasswordHash)
	assert.Equal(t, "$2a$10$hash", *created.PasswordHash)
	assert.Equal(t, []string{}, created.Interests)
	assert.Equal(t, testTime, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ada@example.com"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ada@example.com"})

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

// ── FindUserByEmail / FindUserByID ────────────────────────────────────────────

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, email, name, password_hash, interests, created_at, updated_at FROM users WHERE email = \$1`).
		WithArgs("ada@example.com").
		WillReturnRows(userRows().AddRow("u-1", "ada@example.com", "Ada", "hash", `{"go","sql"}`, testTime, testTime))

	found, err := repo.FindUserByEmail(context.Background(), "ada@example.com")

	require.NoError(t, err)
	assert.Equal(t, "u-1", found.ID)
	assert.True(t, found.HasPassword())
	assert.Equal(t, []string{"go", "sql"}, found.Interests)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail_FederationOnlyAccount(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("fed@example.com").
		WillReturnRows(userRows().AddRow("u-2", "fed@example.com", "Fed", nil, "{}", testTime, testTime))

	found, err := repo.FindUserByEmail(context.Background(), "fed@example.com")

	require.NoError(t, err)
	assert.Nil(t, found.PasswordHash)
	assert.False(t, found.HasPassword())
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(userRows())

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users WHERE email").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByEmail(context.Background(), "ada@example.com")

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("u-1").
		WillReturnRows(userRows().AddRow("u-1", "ada@example.com", "Ada", nil, "{}", testTime, testTime))

	found, err := repo.FindUserByID(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", found.Email)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_MalformedID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("not-a-uuid").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.FindUserByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

// ── FindOrCreateFederatedUser ─────────────────────────────────────────────────

func TestFindOrCreateFederatedUser_CreatesAccount(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO users \(id,email,name,interests\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(email\) DO UPDATE SET email = EXCLUDED.email RETURNING`).
		WithArgs("id-1", "fed@example.com", "Fed User", "{}").
		WillReturnRows(userRows().AddRow("id-1", "fed@example.com", "Fed User", nil, "{}", testTime, testTime))

	user, err := repo.FindOrCreateFederatedUser(context.Background(), models.User{Email: "fed@example.com", Name: "Fed User"})

	require.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)
	assert.False(t, user.HasPassword())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateFederatedUser_ReturnsExistingPasswordAccount(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// the conflict branch returns the stored row untouched
	mock.ExpectQuery("ON CONFLICT \\(email\\)").
		WithArgs("id-1", "ada@example.com", "Google Name", "{}").
		WillReturnRows(userRows().AddRow("u-existing", "ada@example.com", "Ada", "hash", "{}", testTime, testTime))

	user, err := repo.FindOrCreateFederatedUser(context.Background(), models.User{Email: "ada@example.com", Name: "Google Name"})

	require.NoError(t, err)
	assert.Equal(t, "u-existing", user.ID)
	assert.Equal(t, "Ada", user.Name)
	assert.True(t, user.HasPassword())
}

func TestFindOrCreateFederatedUser_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("ON CONFLICT").WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.FindOrCreateFederatedUser(context.Background(), models.User{Email: "fed@example.com"})

	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
