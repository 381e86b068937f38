package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository] over the users, skills, career_paths and resumes
// tables.
type profileRepository struct {
	*DB
	ids    IDGenerator
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by db.
func NewProfileRepository(db *DB, ids IDGenerator, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		DB:     db,
		ids:    ids,
		logger: logger,
	}
}

// GetProfile reads the user row and every association owned by it.
// The reads are not wrapped in a transaction; each one sees committed data
// only, and profile writes replace all associations atomically.
func (p *profileRepository) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(ctx, sq.Eq{"id": userID})
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
			return models.Profile{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "profileRepository.GetProfile").Str("user_id", userID).Msg("failed to select user")
		return models.Profile{}, p.unavailable(ctx, ErrExecutingQuery, err)
	}

	skills, err := p.getSkills(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	careerPaths, err := p.getCareerPaths(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	resume, err := p.getResume(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}

	return models.Profile{
		User:        user,
		Skills:      skills,
		CareerPaths: careerPaths,
		Resume:      resume,
	}, nil
}

func (p *profileRepository) getSkills(ctx context.Context, userID string) ([]models.Skill, error) {
	query, args, err := buildSelectSkillsQuery(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, p.unavailable(ctx, ErrExecutingQuery, err)
	}
	defer rows.Close()

	skills := make([]models.Skill, 0)
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Level); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, p.unavailable(ctx, ErrScanningRows, err)
	}

	return skills, nil
}

func (p *profileRepository) getCareerPaths(ctx context.Context, userID string) ([]models.CareerPath, error) {
	query, args, err := buildSelectCareerPathsQuery(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, p.unavailable(ctx, ErrExecutingQuery, err)
	}
	defer rows.Close()

	paths := make([]models.CareerPath, 0)
	for rows.Next() {
		var c models.CareerPath
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.Summary); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		paths = append(paths, c)
	}
	if err := rows.Err(); err != nil {
		return nil, p.unavailable(ctx, ErrScanningRows, err)
	}

	return paths, nil
}

// getResume returns nil without error when the user has no resume yet.
func (p *profileRepository) getResume(ctx context.Context, userID string) (*models.Resume, error) {
	query, args, err := buildSelectResumeQuery(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var r models.Resume
	err = p.DB.QueryRowContext(ctx, query, args...).
		Scan(&r.ID, &r.UserID, &r.Summary, &r.Education, &r.Experience, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, p.unavailable(ctx, ErrScanningRow, err)
	}

	return &r, nil
}

// ApplyProfileUpdate rewrites the profile of update.UserID inside a single
// transaction:
//
//  1. touch the user row (and replace interests when provided)
//  2. delete existing skills and career paths
//  3. insert the incoming skills and career paths, if any
//  4. upsert the resume, if provided
//  5. re-read the user row
//
// The transaction is rolled back (via defer) on the first failing step, so
// either every change is visible or none is.
func (p *profileRepository) ApplyProfileUpdate(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "profileRepository.ApplyProfileUpdate").
		Str("user_id", update.UserID).
		Logger()

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.User{}, p.unavailable(ctx, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// 1. user row
	query, args, err := buildTouchUserQuery(ctx, update.UserID, update.Interests)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if isMalformedID(err) {
			log.Warn().Msg("user id is not a valid uuid")
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Msg("failed to update user row")
		return models.User{}, p.unavailable(ctx, ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, p.unavailable(ctx, ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Msg("user not found")
		return models.User{}, ErrUserNotFound
	}

	// 2. clear associations
	for _, table := range []string{"skills", "career_paths"} {
		query, args, err = buildDeleteByUserQuery(ctx, table, update.UserID)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("table", table).Msg("failed to clear associations")
			return models.User{}, p.unavailable(ctx, ErrExecutingStatement, err)
		}
	}

	// 3. insert new sets
	if len(update.Skills) > 0 {
		skills := make([]models.Skill, len(update.Skills))
		for i, s := range update.Skills {
			s.ID = p.ids.Generate()
			s.UserID = update.UserID
			skills[i] = s
		}
		query, args, err = buildInsertSkillsQuery(ctx, skills)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Int("skills_count", len(skills)).Msg("failed to insert skills")
			return models.User{}, p.unavailable(ctx, ErrExecutingStatement, err)
		}
	}

	if len(update.CareerPaths) > 0 {
		paths := make([]models.CareerPath, len(update.CareerPaths))
		for i, c := range update.CareerPaths {
			c.ID = p.ids.Generate()
			c.UserID = update.UserID
			paths[i] = c
		}
		query, args, err = buildInsertCareerPathsQuery(ctx, paths)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Int("career_paths_count", len(paths)).Msg("failed to insert career paths")
			return models.User{}, p.unavailable(ctx, ErrExecutingStatement, err)
		}
	}

	// 4. resume
	if update.Resume != nil {
		resume := *update.Resume
		resume.ID = p.ids.Generate()
		resume.UserID = update.UserID
		query, args, err = buildUpsertResumeQuery(ctx, resume)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Msg("failed to upsert resume")
			return models.User{}, p.unavailable(ctx, ErrExecutingStatement, err)
		}
	}

	// 5. refreshed user
	query, args, err = buildSelectUserQuery(ctx, sq.Eq{"id": update.UserID})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	user, err := scanUser(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Msg("failed to re-read user")
		return models.User{}, p.unavailable(ctx, ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return models.User{}, p.unavailable(ctx, ErrCommitingTransaction, err)
	}

	log.Info().
		Int("skills_count", len(update.Skills)).
		Int("career_paths_count", len(update.CareerPaths)).
		Bool("resume", update.Resume != nil).
		Msg("profile updated")

	return user, nil
}
