package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/courseforum/conversation-service/internal/config"
	"github.com/courseforum/conversation-service/internal/model"
	"github.com/courseforum/conversation-service/internal/pkg/tx"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type database interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Chk returns the request transaction when one is open and the pool
// otherwise, so every query method transparently joins TxExecute scopes.
func (r *Repository) Chk(ctx context.Context) database {
	if transaction, ok := tx.SqlTxFromContext(ctx); ok {
		return transaction
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	transaction, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(tx.WithSqlTx(ctx, transaction)); err != nil {
		_ = transaction.Rollback()
		return err
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *Repository) GetCourseByReference(ctx context.Context, courseReference string) (*model.Course, error) {
	query, args, err := sq.Select("id", "reference", "name", "next_conversation_reference").
		From("courses").
		Where(sq.Eq{"reference": courseReference}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var course model.Course
	err = r.Chk(ctx).GetContext(ctx, &course, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %v", err)
	}

	return &course, nil
}

func (r *Repository) GetEnrollment(ctx context.Context, courseID int64, userID uuid.UUID) (*model.Enrollment, error) {
	query, args, err := sq.Select(
		"enrollments.id",
		"enrollments.course_id",
		"enrollments.reference",
		"enrollments.course_role",
		"enrollments.user_id",
		"users.name AS user_name",
		"users.avatar_url",
	).
		From("enrollments").
		Join("users ON enrollments.user_id = users.id").
		Where(sq.Eq{
			"enrollments.course_id": courseID,
			"enrollments.user_id":   userID,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var enrollment model.Enrollment
	err = r.Chk(ctx).GetContext(ctx, &enrollment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %v", err)
	}

	return &enrollment, nil
}

func (r *Repository) GetEnrollmentsByReferences(ctx context.Context, courseID int64, references []string) ([]model.Enrollment, error) {
	if len(references) == 0 {
		return nil, nil
	}

	query, args, err := sq.Select(
		"enrollments.id",
		"enrollments.course_id",
		"enrollments.reference",
		"enrollments.course_role",
		"enrollments.user_id",
		"users.name AS user_name",
		"users.avatar_url",
	).
		From("enrollments").
		Join("users ON enrollments.user_id = users.id").
		Where(sq.Eq{
			"enrollments.course_id": courseID,
			"enrollments.reference": references,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var enrollments []model.Enrollment
	err = r.Chk(ctx).SelectContext(ctx, &enrollments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollments: %v", err)
	}

	return enrollments, nil
}

// GetCourseTags returns the tags a viewer may see; staff-only tags stay
// hidden from students everywhere, including filter parsing.
func (r *Repository) GetCourseTags(ctx context.Context, courseID int64, enrollment *model.Enrollment) ([]model.Tag, error) {
	queryBuilder := sq.Select("id", "course_id", "reference", "name", "staff_only").
		From("tags").
		Where(sq.Eq{"course_id": courseID}).
		OrderBy("id ASC")

	if !enrollment.IsStaff() {
		queryBuilder = queryBuilder.Where(sq.Eq{"staff_only": false})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var tags []model.Tag
	err = r.Chk(ctx).SelectContext(ctx, &tags, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get course tags: %v", err)
	}

	return tags, nil
}

func (r *Repository) UpdateUserName(ctx context.Context, userUUID, name string) error {
	query, args, err := sq.Update("users").
		Set("name", name).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateUserAvatar(ctx context.Context, userUUID, avatarURL string) error {
	query, args, err := sq.Update("users").
		Set("avatar_url", avatarURL).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}
