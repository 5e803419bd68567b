// Package access holds the single visibility rule for conversations.
//
// Every query that touches conversations, directly or through messages,
// must embed VisibleConversations in its WHERE clause. There is no
// post-hoc filtering path: a row the predicate rejects never leaves the
// store.
package access

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/courseforum/conversation-service/internal/model"
)

// VisibleConversations builds the predicate over the "conversations" table:
// a conversation is visible iff it is open to everyone, or staff-scoped and
// the viewer is staff, or the viewer is one of its selected participants.
func VisibleConversations(enrollment *model.Enrollment) sq.Sqlizer {
	conditions := sq.Or{
		sq.Eq{"conversations.participants": string(model.ParticipantsEveryone)},
		sq.Expr(
			"EXISTS (SELECT 1 FROM conversation_selected_participants"+
				" WHERE conversation_selected_participants.conversation_id = conversations.id"+
				" AND conversation_selected_participants.enrollment_id = ?)",
			enrollment.ID,
		),
	}
	if enrollment.IsStaff() {
		conditions = append(conditions, sq.Eq{"conversations.participants": string(model.ParticipantsStaff)})
	}
	return conditions
}
