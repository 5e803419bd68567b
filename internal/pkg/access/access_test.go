package access

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseforum/conversation-service/internal/model"
)

func TestVisibleConversations_Student(t *testing.T) {
	t.Parallel()

	enrollment := &model.Enrollment{ID: 7, CourseRole: model.CourseRoleStudent}

	query, args, err := sq.Select("conversations.id").
		From("conversations").
		Where(VisibleConversations(enrollment)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "conversations.participants = $1")
	assert.Contains(t, query, "conversation_selected_participants.enrollment_id = $2")
	assert.NotContains(t, query, "participants = $3", "students must not see staff-scoped rows")
	assert.Equal(t, []interface{}{string(model.ParticipantsEveryone), int64(7)}, args)
}

func TestVisibleConversations_Staff(t *testing.T) {
	t.Parallel()

	enrollment := &model.Enrollment{ID: 3, CourseRole: model.CourseRoleStaff}

	query, args, err := sq.Select("conversations.id").
		From("conversations").
		Where(VisibleConversations(enrollment)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "conversations.participants = $3")
	assert.Equal(t, []interface{}{
		string(model.ParticipantsEveryone),
		int64(3),
		string(model.ParticipantsStaff),
	}, args)
}
