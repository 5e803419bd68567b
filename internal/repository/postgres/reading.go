package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/courseforum/conversation-service/internal/model"
	"github.com/courseforum/conversation-service/internal/pkg/access"
)

// InsertReadings records that the enrollment has seen the given messages.
// Re-reading is a no-op; the first reading timestamp is the one that sticks.
func (r *Repository) InsertReadings(ctx context.Context, enrollmentID int64, messageIDs []int64) error {
	if len(messageIDs) == 0 {
		return nil
	}

	query := sq.Insert("readings").
		Columns("message_id", "enrollment_id").
		Suffix("ON CONFLICT (message_id, enrollment_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	for _, messageID := range messageIDs {
		query = query.Values(messageID, enrollmentID)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to insert readings: %v", err)
	}

	return nil
}

// MarkAllConversationsAsRead backfills readings for every unread message in
// every conversation the enrollment can see, in one INSERT .. SELECT.
func (r *Repository) MarkAllConversationsAsRead(ctx context.Context, course *model.Course, enrollment *model.Enrollment) error {
	selectBuilder := sq.Select().
		Column("messages.id").
		Column(sq.Expr("?", enrollment.ID)).
		From("messages").
		Join("conversations ON messages.conversation_id = conversations.id").
		Where(sq.Eq{"conversations.course_id": course.ID}).
		Where(access.VisibleConversations(enrollment)).
		Where("NOT EXISTS (SELECT 1 FROM readings"+
			" WHERE readings.message_id = messages.id AND readings.enrollment_id = ?)",
			enrollment.ID).
		OrderBy("messages.id ASC")

	query, args, err := sq.Insert("readings").
		Columns("message_id", "enrollment_id").
		Select(selectBuilder).
		Suffix("ON CONFLICT (message_id, enrollment_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark conversations as read: %v", err)
	}

	return nil
}
