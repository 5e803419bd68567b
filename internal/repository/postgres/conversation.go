package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/courseforum/conversation-service/internal/model"
	"github.com/courseforum/conversation-service/internal/pkg/access"
)

var conversationColumns = []string{
	"conversations.id",
	"conversations.course_id",
	"conversations.reference",
	"conversations.created_at",
	"conversations.updated_at",
	"conversations.type",
	"conversations.participants",
	"conversations.anonymous_at",
	"conversations.resolved_at",
	"conversations.announcement_at",
	"conversations.pinned_at",
	"conversations.title",
	"conversations.next_message_reference",
	"enrollments.id AS author_enrollment_id",
	"enrollments.reference AS author_reference",
	"enrollments.course_role AS author_course_role",
	"enrollments.user_id AS author_user_id",
	"users.name AS author_user_name",
	"users.avatar_url AS author_avatar_url",
}

type conversationRow struct {
	ID                   int64      `db:"id"`
	CourseID             int64      `db:"course_id"`
	Reference            int64      `db:"reference"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            *time.Time `db:"updated_at"`
	Type                 string     `db:"type"`
	Participants         string     `db:"participants"`
	AnonymousAt          *time.Time `db:"anonymous_at"`
	ResolvedAt           *time.Time `db:"resolved_at"`
	AnnouncementAt       *time.Time `db:"announcement_at"`
	PinnedAt             *time.Time `db:"pinned_at"`
	Title                string     `db:"title"`
	NextMessageReference int64      `db:"next_message_reference"`
	AuthorEnrollmentID   *int64     `db:"author_enrollment_id"`
	AuthorReference      *string    `db:"author_reference"`
	AuthorCourseRole     *string    `db:"author_course_role"`
	AuthorUserID         *uuid.UUID `db:"author_user_id"`
	AuthorUserName       *string    `db:"author_user_name"`
	AuthorAvatarURL      *string    `db:"author_avatar_url"`
}

func (row *conversationRow) toModel() *model.Conversation {
	return &model.Conversation{
		ID:                   row.ID,
		CourseID:             row.CourseID,
		Reference:            strconv.FormatInt(row.Reference, 10),
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
		Author:               authorFromColumns(row.AuthorEnrollmentID, row.AuthorReference, row.AuthorCourseRole, row.AuthorUserID, row.AuthorUserName, row.AuthorAvatarURL, row.CourseID),
		AnonymousAt:          row.AnonymousAt,
		Type:                 model.ConversationType(row.Type),
		ResolvedAt:           row.ResolvedAt,
		AnnouncementAt:       row.AnnouncementAt,
		PinnedAt:             row.PinnedAt,
		Participants:         model.Participants(row.Participants),
		Title:                row.Title,
		NextMessageReference: row.NextMessageReference,
	}
}

func authorFromColumns(enrollmentID *int64, reference, courseRole *string, userID *uuid.UUID, userName, avatarURL *string, courseID int64) model.Author {
	if enrollmentID == nil {
		return model.Author{Departed: true}
	}
	author := model.Author{
		Enrollment: model.Enrollment{
			ID:         *enrollmentID,
			CourseID:   courseID,
			CourseRole: model.CourseRole(stringOrEmpty(courseRole)),
			UserName:   stringOrEmpty(userName),
			AvatarURL:  stringOrEmpty(avatarURL),
		},
	}
	if reference != nil {
		author.Enrollment.Reference = *reference
	}
	if userID != nil {
		author.Enrollment.UserID = *userID
	}
	return author
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parseReference(reference string) (int64, bool) {
	value, err := strconv.ParseInt(reference, 10, 64)
	if err != nil || value < 1 {
		return 0, false
	}
	return value, true
}

// GetConversation loads the full aggregate for one visible conversation.
// Missing and forbidden collapse into (nil, nil) so callers cannot leak
// existence.
func (r *Repository) GetConversation(ctx context.Context, course *model.Course, enrollment *model.Enrollment, conversationReference string) (*model.Conversation, error) {
	reference, ok := parseReference(conversationReference)
	if !ok {
		return nil, nil
	}

	query, args, err := sq.Select(conversationColumns...).
		From("conversations").
		LeftJoin("enrollments ON conversations.author_enrollment_id = enrollments.id").
		LeftJoin("users ON enrollments.user_id = users.id").
		Where(sq.Eq{
			"conversations.course_id": course.ID,
			"conversations.reference": reference,
		}).
		Where(access.VisibleConversations(enrollment)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row conversationRow
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %v", err)
	}

	conversation := row.toModel()

	if conversation.Participants != model.ParticipantsEveryone {
		conversation.SelectedParticipants, err = r.GetSelectedParticipants(ctx, conversation.ID, enrollment.ID)
		if err != nil {
			return nil, err
		}
	}

	conversation.Taggings, err = r.getConversationTaggings(ctx, conversation.ID, enrollment)
	if err != nil {
		return nil, err
	}

	conversation.MessagesCount, conversation.ReadingsCount, err = r.getConversationCounts(ctx, conversation.ID, enrollment.ID)
	if err != nil {
		return nil, err
	}

	if conversation.Type == model.ConversationTypeQuestion {
		conversation.Endorsements, err = r.getConversationEndorsements(ctx, conversation.ID)
		if err != nil {
			return nil, err
		}
	}

	return conversation, nil
}

// GetSelectedParticipants lists who a restricted conversation is shared
// with, staff first then by name, excluding the viewer themselves.
func (r *Repository) GetSelectedParticipants(ctx context.Context, conversationID, excludeEnrollmentID int64) ([]model.Enrollment, error) {
	query, args, err := sq.Select(
		"enrollments.id",
		"enrollments.course_id",
		"enrollments.reference",
		"enrollments.course_role",
		"enrollments.user_id",
		"users.name AS user_name",
		"users.avatar_url",
	).
		From("conversation_selected_participants").
		Join("enrollments ON conversation_selected_participants.enrollment_id = enrollments.id").
		Join("users ON enrollments.user_id = users.id").
		Where(sq.Eq{"conversation_selected_participants.conversation_id": conversationID}).
		Where(sq.NotEq{"enrollments.id": excludeEnrollmentID}).
		OrderBy("enrollments.course_role = 'staff' DESC", "users.name ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var enrollments []model.Enrollment
	err = r.Chk(ctx).SelectContext(ctx, &enrollments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get selected participants: %v", err)
	}

	return enrollments, nil
}

func (r *Repository) getConversationTaggings(ctx context.Context, conversationID int64, enrollment *model.Enrollment) ([]model.Tag, error) {
	queryBuilder := sq.Select("tags.id", "tags.course_id", "tags.reference", "tags.name", "tags.staff_only").
		From("taggings").
		Join("tags ON taggings.tag_id = tags.id").
		Where(sq.Eq{"taggings.conversation_id": conversationID}).
		OrderBy("tags.id ASC")

	if !enrollment.IsStaff() {
		queryBuilder = queryBuilder.Where(sq.Eq{"tags.staff_only": false})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var tags []model.Tag
	err = r.Chk(ctx).SelectContext(ctx, &tags, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get taggings: %v", err)
	}

	return tags, nil
}

func (r *Repository) getConversationCounts(ctx context.Context, conversationID, enrollmentID int64) (int64, int64, error) {
	messagesQuery, messagesArgs, err := sq.Select("COUNT(*)").
		From("messages").
		Where(sq.Eq{"messages.conversation_id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messagesCount int64
	if err := r.Chk(ctx).GetContext(ctx, &messagesCount, messagesQuery, messagesArgs...); err != nil {
		return 0, 0, fmt.Errorf("failed to count messages: %v", err)
	}

	readingsQuery, readingsArgs, err := sq.Select("COUNT(*)").
		From("messages").
		Join("readings ON readings.message_id = messages.id").
		Where(sq.Eq{
			"messages.conversation_id": conversationID,
			"readings.enrollment_id":   enrollmentID,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var readingsCount int64
	if err := r.Chk(ctx).GetContext(ctx, &readingsCount, readingsQuery, readingsArgs...); err != nil {
		return 0, 0, fmt.Errorf("failed to count readings: %v", err)
	}

	return messagesCount, readingsCount, nil
}

type endorsementRow struct {
	ID                 int64      `db:"id"`
	MessageID          int64      `db:"message_id"`
	MessageReference   int64      `db:"message_reference"`
	CreatedAt          time.Time  `db:"created_at"`
	EndorserID         *int64     `db:"endorser_id"`
	EndorserReference  *string    `db:"endorser_reference"`
	EndorserCourseRole *string    `db:"endorser_course_role"`
	EndorserUserID     *uuid.UUID `db:"endorser_user_id"`
	EndorserUserName   *string    `db:"endorser_user_name"`
	EndorserAvatarURL  *string    `db:"endorser_avatar_url"`
}

func (r *Repository) getConversationEndorsements(ctx context.Context, conversationID int64) ([]model.Endorsement, error) {
	query, args, err := sq.Select(
		"endorsements.id",
		"endorsements.message_id",
		"messages.reference AS message_reference",
		"endorsements.created_at",
		"enrollments.id AS endorser_id",
		"enrollments.reference AS endorser_reference",
		"enrollments.course_role AS endorser_course_role",
		"enrollments.user_id AS endorser_user_id",
		"users.name AS endorser_user_name",
		"users.avatar_url AS endorser_avatar_url",
	).
		From("endorsements").
		Join("messages ON endorsements.message_id = messages.id").
		LeftJoin("enrollments ON endorsements.enrollment_id = enrollments.id").
		LeftJoin("users ON enrollments.user_id = users.id").
		Where(sq.Eq{"messages.conversation_id": conversationID}).
		OrderBy("endorsements.id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []endorsementRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get endorsements: %v", err)
	}

	endorsements := make([]model.Endorsement, len(rows))
	for i, row := range rows {
		endorsements[i] = model.Endorsement{
			ID:               row.ID,
			MessageID:        row.MessageID,
			MessageReference: strconv.FormatInt(row.MessageReference, 10),
			CreatedAt:        row.CreatedAt,
			Endorser:         authorFromColumns(row.EndorserID, row.EndorserReference, row.EndorserCourseRole, row.EndorserUserID, row.EndorserUserName, row.EndorserAvatarURL, 0),
		}
	}

	return endorsements, nil
}

// NextConversationReference claims the course's next reference. The
// UPDATE .. RETURNING keeps concurrent creations gapless and unique: each
// transaction observes its own claimed value.
func (r *Repository) NextConversationReference(ctx context.Context, courseID int64) (int64, error) {
	query, args, err := sq.Update("courses").
		Set("next_conversation_reference", sq.Expr("next_conversation_reference + 1")).
		Where(sq.Eq{"id": courseID}).
		Suffix("RETURNING next_conversation_reference - 1").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reference int64
	err = r.Chk(ctx).GetContext(ctx, &reference, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to claim conversation reference: %v", err)
	}

	return reference, nil
}

func (r *Repository) InsertConversation(ctx context.Context, courseID, reference, authorEnrollmentID int64, conversation *model.NewConversation, hasFirstMessage bool) (int64, error) {
	nextMessageReference := int64(1)
	if hasFirstMessage {
		nextMessageReference = 2
	}

	query, args, err := sq.Insert("conversations").
		Columns(
			"course_id",
			"reference",
			"author_enrollment_id",
			"type",
			"participants",
			"anonymous_at",
			"announcement_at",
			"pinned_at",
			"title",
			"next_message_reference",
		).
		Values(
			courseID,
			reference,
			authorEnrollmentID,
			string(conversation.Type),
			string(conversation.Participants),
			nowWhen(conversation.Anonymous),
			nowWhen(conversation.Announcement),
			nowWhen(conversation.Pinned),
			conversation.Title,
			nextMessageReference,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversationID int64
	err = r.Chk(ctx).GetContext(ctx, &conversationID, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert conversation: %v", err)
	}

	return conversationID, nil
}

func nowWhen(flag bool) interface{} {
	if flag {
		return sq.Expr("now()")
	}
	return nil
}

func (r *Repository) InsertSelectedParticipants(ctx context.Context, conversationID int64, enrollmentIDs []int64) error {
	if len(enrollmentIDs) == 0 {
		return nil
	}

	query := sq.Insert("conversation_selected_participants").
		Columns("conversation_id", "enrollment_id").
		Suffix("ON CONFLICT (conversation_id, enrollment_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	for _, enrollmentID := range enrollmentIDs {
		query = query.Values(conversationID, enrollmentID)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to insert selected participants: %v", err)
	}

	return nil
}

// ReplaceSelectedParticipants swaps the participant set wholesale; scope
// updates never merge with the previous set.
func (r *Repository) ReplaceSelectedParticipants(ctx context.Context, conversationID int64, enrollmentIDs []int64) error {
	query, args, err := sq.Delete("conversation_selected_participants").
		Where(sq.Eq{"conversation_id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear selected participants: %v", err)
	}

	return r.InsertSelectedParticipants(ctx, conversationID, enrollmentIDs)
}

func (r *Repository) InsertTaggings(ctx context.Context, conversationID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	query := sq.Insert("taggings").
		Columns("conversation_id", "tag_id").
		Suffix("ON CONFLICT (conversation_id, tag_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	for _, tagID := range tagIDs {
		query = query.Values(conversationID, tagID)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to insert taggings: %v", err)
	}

	return nil
}

func (r *Repository) RemoveTagging(ctx context.Context, conversationID, tagID int64) error {
	query, args, err := sq.Delete("taggings").
		Where(sq.Eq{
			"conversation_id": conversationID,
			"tag_id":          tagID,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove tagging: %v", err)
	}

	return nil
}

// ApplyConversationUpdate commits a validated write set in one statement
// (plus the participant swap when scope changes). Leaving the question or
// note type clears the now-meaningless resolved/announcement timestamps.
func (r *Repository) ApplyConversationUpdate(ctx context.Context, conversationID int64, update *model.ConversationUpdate) error {
	queryBuilder := sq.Update("conversations").
		Where(sq.Eq{"id": conversationID})

	if update.Type != nil {
		queryBuilder = queryBuilder.Set("type", string(*update.Type))
		if *update.Type != model.ConversationTypeQuestion {
			queryBuilder = queryBuilder.Set("resolved_at", nil)
		}
		if *update.Type != model.ConversationTypeNote {
			queryBuilder = queryBuilder.Set("announcement_at", nil)
		}
	}

	if update.Participants != nil {
		queryBuilder = queryBuilder.Set("participants", string(*update.Participants))
	}

	if update.SetAnonymous != nil {
		queryBuilder = queryBuilder.Set("anonymous_at", nowWhen(*update.SetAnonymous))
	}

	if update.SetAnnouncement != nil {
		queryBuilder = queryBuilder.Set("announcement_at", nowWhen(*update.SetAnnouncement))
	}

	if update.SetPinned != nil {
		queryBuilder = queryBuilder.Set("pinned_at", nowWhen(*update.SetPinned))
	}

	if update.SetResolved != nil {
		queryBuilder = queryBuilder.Set("resolved_at", nowWhen(*update.SetResolved))
	}

	if update.Title != nil {
		queryBuilder = queryBuilder.Set("title", *update.Title)
	}

	if update.BumpUpdatedAt {
		queryBuilder = queryBuilder.Set("updated_at", sq.Expr("now()"))
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update conversation: %v", err)
	}

	if update.Participants != nil {
		if *update.Participants == model.ParticipantsEveryone {
			return r.ReplaceSelectedParticipants(ctx, conversationID, nil)
		}
		return r.ReplaceSelectedParticipants(ctx, conversationID, update.SelectedEnrollmentIDs)
	}

	return nil
}

func (r *Repository) DeleteConversation(ctx context.Context, conversationID int64) error {
	query, args, err := sq.Delete("conversations").
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %v", err)
	}

	return nil
}
