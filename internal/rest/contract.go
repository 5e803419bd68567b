//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	api "github.com/courseforum/conversation-service/internal/generated"
	"github.com/courseforum/conversation-service/internal/model"
)

type DBRepo interface {
	GetCourseByReference(ctx context.Context, courseReference string) (*model.Course, error)
	GetEnrollment(ctx context.Context, courseID int64, userID uuid.UUID) (*model.Enrollment, error)
	GetEnrollmentsByReferences(ctx context.Context, courseID int64, references []string) ([]model.Enrollment, error)
	GetCourseTags(ctx context.Context, courseID int64, enrollment *model.Enrollment) ([]model.Tag, error)

	SearchConversations(ctx context.Context, course *model.Course, enrollment *model.Enrollment, filter *model.ConversationFilter, page, pageSize int) (*model.ConversationPage, error)
	GetConversation(ctx context.Context, course *model.Course, enrollment *model.Enrollment, conversationReference string) (*model.Conversation, error)
	GetSelectedParticipants(ctx context.Context, conversationID, excludeEnrollmentID int64) ([]model.Enrollment, error)
	NextConversationReference(ctx context.Context, courseID int64) (int64, error)
	InsertConversation(ctx context.Context, courseID, reference, authorEnrollmentID int64, conversation *model.NewConversation, hasFirstMessage bool) (int64, error)
	InsertSelectedParticipants(ctx context.Context, conversationID int64, enrollmentIDs []int64) error
	InsertTaggings(ctx context.Context, conversationID int64, tagIDs []int64) error
	RemoveTagging(ctx context.Context, conversationID, tagID int64) error
	ApplyConversationUpdate(ctx context.Context, conversationID int64, update *model.ConversationUpdate) error
	DeleteConversation(ctx context.Context, conversationID int64) error

	GetConversationMessages(ctx context.Context, conversation *model.Conversation, cursor model.MessageCursor, pageSize int) (*model.MessagePage, error)
	InsertMessage(ctx context.Context, conversationID, reference, authorEnrollmentID int64, anonymous bool, contentSource string, content *model.PreprocessedContent) (int64, error)

	InsertReadings(ctx context.Context, enrollmentID int64, messageIDs []int64) error
	MarkAllConversationsAsRead(ctx context.Context, course *model.Course, enrollment *model.Enrollment) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type CentrifugeClient interface {
	Publish(ctx context.Context, channel string, update model.LiveUpdate) error
}

type NotifierClient interface {
	SendMessageNotification(ctx context.Context, notification model.MessageNotification) error
}

type Validator interface {
	ParseConversationFilter(params *api.GetConversationsParams, tags []model.Tag) *model.ConversationFilter
	ValidateCreateConversation(req *api.CreateConversationRequest, enrollment *model.Enrollment, tags []model.Tag, selected []model.Enrollment) ([]model.Enrollment, error)
	BuildConversationUpdate(req *api.UpdateConversationRequest, conversation *model.Conversation, enrollment *model.Enrollment, selected []model.Enrollment) (*model.ConversationUpdate, error)
	ValidateAddTagging(reference string, conversation *model.Conversation, tags []model.Tag) (*model.Tag, error)
	ValidateRemoveTagging(reference string, conversation *model.Conversation, tags []model.Tag) (*model.Tag, error)
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, courseReference string) (string, int64, error)
}

type Preprocessor interface {
	Preprocess(source string) (*model.PreprocessedContent, error)
}
