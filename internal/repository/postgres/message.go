package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/courseforum/conversation-service/internal/model"
)

var messageColumns = []string{
	"messages.id",
	"messages.conversation_id",
	"messages.reference",
	"messages.created_at",
	"messages.updated_at",
	"messages.anonymous_at",
	"messages.content_source",
	"messages.content_preprocessed",
	"enrollments.id AS author_enrollment_id",
	"enrollments.reference AS author_reference",
	"enrollments.course_role AS author_course_role",
	"enrollments.user_id AS author_user_id",
	"users.name AS author_user_name",
	"users.avatar_url AS author_avatar_url",
}

type messageRow struct {
	ID                  int64      `db:"id"`
	ConversationID      int64      `db:"conversation_id"`
	Reference           int64      `db:"reference"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           *time.Time `db:"updated_at"`
	AnonymousAt         *time.Time `db:"anonymous_at"`
	ContentSource       string     `db:"content_source"`
	ContentPreprocessed string     `db:"content_preprocessed"`
	AuthorEnrollmentID  *int64     `db:"author_enrollment_id"`
	AuthorReference     *string    `db:"author_reference"`
	AuthorCourseRole    *string    `db:"author_course_role"`
	AuthorUserID        *uuid.UUID `db:"author_user_id"`
	AuthorUserName      *string    `db:"author_user_name"`
	AuthorAvatarURL     *string    `db:"author_avatar_url"`
}

func (row *messageRow) toModel(courseID int64) model.Message {
	return model.Message{
		ID:                  row.ID,
		ConversationID:      row.ConversationID,
		Reference:           strconv.FormatInt(row.Reference, 10),
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
		Author:              authorFromColumns(row.AuthorEnrollmentID, row.AuthorReference, row.AuthorCourseRole, row.AuthorUserID, row.AuthorUserName, row.AuthorAvatarURL, courseID),
		AnonymousAt:         row.AnonymousAt,
		ContentSource:       row.ContentSource,
		ContentPreprocessed: row.ContentPreprocessed,
	}
}

// messagesCursorPlan picks the page window and scan direction. A
// before-cursor wins over an after-cursor when both arrive; without a
// cursor, chats open on the newest page (scanned descending), everything
// else on the oldest. ok=false means the cursor reference can never match
// and the page is empty.
func messagesCursorPlan(conversationType model.ConversationType, cursor model.MessageCursor) (predicate sq.Sqlizer, orderBy string, reversed, ok bool) {
	switch {
	case cursor.BeforeReference != "":
		before, valid := parseReference(cursor.BeforeReference)
		if !valid {
			return nil, "", false, false
		}
		return sq.Lt{"messages.reference": before}, "messages.reference DESC", true, true

	case cursor.AfterReference != "":
		after, valid := parseReference(cursor.AfterReference)
		if !valid {
			return nil, "", false, false
		}
		return sq.Gt{"messages.reference": after}, "messages.reference ASC", false, true

	case conversationType == model.ConversationTypeChat:
		return nil, "messages.reference DESC", true, true

	default:
		return nil, "messages.reference ASC", false, true
	}
}

// GetConversationMessages loads one chronological page; reversed pages are
// put back in ascending order before they leave the store.
func (r *Repository) GetConversationMessages(ctx context.Context, conversation *model.Conversation, cursor model.MessageCursor, pageSize int) (*model.MessagePage, error) {
	predicate, orderBy, reversed, ok := messagesCursorPlan(conversation.Type, cursor)
	if !ok {
		return &model.MessagePage{}, nil
	}

	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		LeftJoin("enrollments ON messages.author_enrollment_id = enrollments.id").
		LeftJoin("users ON enrollments.user_id = users.id").
		Where(sq.Eq{"messages.conversation_id": conversation.ID})

	if predicate != nil {
		queryBuilder = queryBuilder.Where(predicate)
	}

	query, args, err := queryBuilder.
		OrderBy(orderBy).
		Limit(uint64(pageSize + 1)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []messageRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	moreExist := len(rows) > pageSize
	if moreExist {
		rows = rows[:pageSize]
	}

	messages := make(model.MessageList, len(rows))
	for i, row := range rows {
		index := i
		if reversed {
			index = len(rows) - 1 - i
		}
		messages[index] = row.toModel(conversation.CourseID)
	}

	return &model.MessagePage{
		Messages:  messages,
		MoreExist: moreExist,
		Reversed:  reversed,
	}, nil
}

func (r *Repository) InsertMessage(ctx context.Context, conversationID, reference, authorEnrollmentID int64, anonymous bool, contentSource string, content *model.PreprocessedContent) (int64, error) {
	query, args, err := sq.Insert("messages").
		Columns(
			"conversation_id",
			"reference",
			"author_enrollment_id",
			"anonymous_at",
			"content_source",
			"content_preprocessed",
			"content_search",
		).
		Values(
			conversationID,
			reference,
			authorEnrollmentID,
			nowWhen(anonymous),
			contentSource,
			content.ContentPreprocessed,
			content.ContentSearch,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messageID int64
	err = r.Chk(ctx).GetContext(ctx, &messageID, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert message: %v", err)
	}

	return messageID, nil
}
