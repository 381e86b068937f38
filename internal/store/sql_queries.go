package store

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-career-guide/models"
	"github.com/lib/pq"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id",
	"email",
	"name",
	"password_hash",
	"interests",
	"created_at",
	"updated_at",
}

const (
	upsertFederatedUserSuffix = "ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email RETURNING "
	upsertResumeSuffix        = `ON CONFLICT (user_id) DO UPDATE SET
		summary = EXCLUDED.summary,
		education = EXCLUDED.education,
		experience = EXCLUDED.experience,
		updated_at = EXCLUDED.updated_at`
)

func returningUser() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

// interestsArray never returns a NULL array so the NOT NULL column accepts
// an account created without interests.
func interestsArray(interests []string) pq.StringArray {
	if interests == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(interests)
}

func buildInsertUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("id", "email", "name", "password_hash", "interests").
		Values(user.ID, user.Email, user.Name, user.PasswordHash, interestsArray(user.Interests)).
		Suffix(returningUser()).
		ToSql()
}

// buildUpsertFederatedUserQuery inserts the account or, on an email
// collision, performs a no-op update so that RETURNING yields the existing
// row. The stored name and password hash are left untouched.
func buildUpsertFederatedUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("id", "email", "name", "interests").
		Values(user.ID, user.Email, user.Name, interestsArray(nil)).
		Suffix(upsertFederatedUserSuffix + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildSelectUserQuery(ctx context.Context, where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

// buildTouchUserQuery bumps updated_at and, when interests is non-nil,
// replaces the stored interests.
func buildTouchUserQuery(ctx context.Context, userID string, interests []string) (string, []any, error) {
	update := psql.Update(models.User{}.TableName()).
		Set("updated_at", sq.Expr("now()"))
	if interests != nil {
		update = update.Set("interests", interestsArray(interests))
	}

	return update.Where(sq.Eq{"id": userID}).ToSql()
}

func buildDeleteByUserQuery(ctx context.Context, table, userID string) (string, []any, error) {
	return psql.Delete(table).Where(sq.Eq{"user_id": userID}).ToSql()
}

func buildInsertSkillsQuery(ctx context.Context, skills []models.Skill) (string, []any, error) {
	insert := psql.Insert("skills").Columns("id", "user_id", "name", "level")
	for _, s := range skills {
		insert = insert.Values(s.ID, s.UserID, s.Name, s.Level)
	}

	return insert.ToSql()
}

func buildInsertCareerPathsQuery(ctx context.Context, paths []models.CareerPath) (string, []any, error) {
	insert := psql.Insert("career_paths").Columns("id", "user_id", "title", "summary")
	for _, p := range paths {
		insert = insert.Values(p.ID, p.UserID, p.Title, p.Summary)
	}

	return insert.ToSql()
}

func buildUpsertResumeQuery(ctx context.Context, resume models.Resume) (string, []any, error) {
	return psql.Insert("resumes").
		Columns("id", "user_id", "summary", "education", "experience", "updated_at").
		Values(resume.ID, resume.UserID, resume.Summary, resume.Education, resume.Experience, sq.Expr("now()")).
		Suffix(upsertResumeSuffix).
		ToSql()
}

func buildSelectSkillsQuery(ctx context.Context, userID string) (string, []any, error) {
	return psql.Select("id", "user_id", "name", "level").
		From("skills").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

func buildSelectCareerPathsQuery(ctx context.Context, userID string) (string, []any, error) {
	return psql.Select("id", "user_id", "title", "summary").
		From("career_paths").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

func buildSelectResumeQuery(ctx context.Context, userID string) (string, []any, error) {
	return psql.Select("id", "user_id", "summary", "education", "experience", "updated_at").
		From("resumes").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
