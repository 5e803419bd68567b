package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/courseforum/conversation-service/internal/config"
	api "github.com/courseforum/conversation-service/internal/generated"
	"github.com/courseforum/conversation-service/internal/model"
	"github.com/courseforum/conversation-service/internal/pkg/tx"
)

const anonymousDisplayName = "anonymous"

type Handler struct {
	repository       DBRepo
	centrifugeClient CentrifugeClient
	notifierClient   NotifierClient
	validator        Validator
	jwtGenerator     JWTGenerator
	preprocessor     Preprocessor
	pagination       config.Pagination
}

func New(
	repo DBRepo,
	centrifugeClient CentrifugeClient,
	notifierClient NotifierClient,
	validator Validator,
	jwtGenerator JWTGenerator,
	preprocessor Preprocessor,
	pagination config.Pagination,
) *Handler {
	return &Handler{
		repository:       repo,
		centrifugeClient: centrifugeClient,
		notifierClient:   notifierClient,
		validator:        validator,
		jwtGenerator:     jwtGenerator,
		preprocessor:     preprocessor,
		pagination:       pagination,
	}
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetCourseSubscribeToken(w http.ResponseWriter, r *http.Request, courseReference string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetCourseSubscribeToken")

	_, enrollment, ok := h.resolveEnrollment(w, r, logger, courseReference)
	if !ok {
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(enrollment.UserID.String(), courseReference)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetCourseSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   courseChannel(courseReference),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request, courseReference string, params api.GetConversationsParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	course, enrollment, ok := h.resolveEnrollment(w, r, logger, courseReference)
	if !ok {
		return
	}

	tags, err := h.repository.GetCourseTags(r.Context(), course.ID, enrollment)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get course tags: %v", err))
		h.writeError(w, "failed to list conversations", http.StatusInternalServerError)
		return
	}

	filter := h.validator.ParseConversationFilter(&params, tags)

	page := 1
	if params.Page != nil && *params.Page > 1 {
		page = *params.Page
	}

	conversationPage, err := h.repository.SearchConversations(r.Context(), course, enrollment, filter, page, h.pagination.ConversationsPageSize)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to search conversations: %v", err))
		h.writeError(w, "failed to list conversations", http.StatusInternalServerError)
		return
	}

	items := make([]api.ConversationListItem, 0, len(conversationPage.Conversations))
	for _, ref := range conversationPage.Conversations {
		conversation, err := h.repository.GetConversation(r.Context(), course, enrollment, ref.Reference)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to load conversation %s: %v", ref.Reference, err))
			h.writeError(w, "failed to list conversations", http.StatusInternalServerError)
			return
		}
		if conversation == nil {
			continue
		}
		items = append(items, api.ConversationListItem{
			Conversation: toAPIConversation(conversation, enrollment),
			SearchResult: toAPISearchResult(ref.SearchResult),
		})
	}

	response := api.GetConversationsResponse{
		Conversations: items,
		MoreExist:     conversationPage.MoreExist,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request, courseReference string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateConversation")

	var req api.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	course, enrollment, ok := h.resolveEnrollment(w, r, logger, courseReference)
	if !ok {
		return
	}

	tags, err := h.repository.GetCourseTags(r.Context(), course.ID, enrollment)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get course tags: %v", err))
		h.writeError(w, "failed to create conversation", http.StatusInternalServerError)
		return
	}

	selected, err := h.repository.GetEnrollmentsByReferences(r.Context(), course.ID, req.SelectedParticipantsReferences)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to resolve selected participants: %v", err))
		h.writeError(w, "failed to create conversation", http.StatusInternalServerError)
		return
	}

	effective, err := h.validator.ValidateCreateConversation(&req, enrollment, tags, selected)
	if err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("conversation validation failed: %v", err), http.StatusBadRequest)
		return
	}

	conversationType, _ := model.ParseConversationType(req.Type)
	participants, _ := model.ParseParticipants(req.Participants)
	hasFirstMessage := req.Content != ""
	anonymous := isOn(req.IsAnonymous) && !enrollment.IsStaff()

	newConversation := &model.NewConversation{
		Type:                  conversationType,
		Title:                 req.Title,
		Participants:          participants,
		Anonymous:             anonymous,
		Announcement:          isOn(req.IsAnnouncement),
		Pinned:                isOn(req.IsPinned),
		TagIDs:                tagIDsByReferences(tags, req.TagsReferences),
		SelectedEnrollmentIDs: enrollmentIDs(effective),
	}

	var conversationReference string
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		reference, err := h.repository.NextConversationReference(ctx, course.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to claim conversation reference: %v", err))
			return err
		}
		conversationReference = fmt.Sprintf("%d", reference)

		conversationID, err := h.repository.InsertConversation(ctx, course.ID, reference, enrollment.ID, newConversation, hasFirstMessage)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to insert conversation: %v", err))
			return err
		}

		if participants != model.ParticipantsEveryone {
			if err := h.repository.InsertSelectedParticipants(ctx, conversationID, newConversation.SelectedEnrollmentIDs); err != nil {
				logger.Error(fmt.Sprintf("failed to insert selected participants: %v", err))
				return err
			}
		}

		if err := h.repository.InsertTaggings(ctx, conversationID, newConversation.TagIDs); err != nil {
			logger.Error(fmt.Sprintf("failed to insert taggings: %v", err))
			return err
		}

		if hasFirstMessage {
			content, err := h.preprocessor.Preprocess(req.Content)
			if err != nil {
				logger.Error(fmt.Sprintf("failed to preprocess content: %v", err))
				return err
			}

			messageID, err := h.repository.InsertMessage(ctx, conversationID, 1, enrollment.ID, anonymous, req.Content, content)
			if err != nil {
				logger.Error(fmt.Sprintf("failed to insert first message: %v", err))
				return err
			}

			if err := h.repository.InsertReadings(ctx, enrollment.ID, []int64{messageID}); err != nil {
				logger.Error(fmt.Sprintf("failed to insert author reading: %v", err))
				return err
			}
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete conversation creation transaction: %v", err))
		h.writeError(w, "failed to create conversation", http.StatusInternalServerError)
		return
	}

	h.publishLiveUpdate(r.Context(), logger, courseReference,
		fmt.Sprintf("/api/courses/%s/conversations", courseReference))

	if hasFirstMessage {
		notification := model.MessageNotification{
			CourseReference:       courseReference,
			ConversationReference: conversationReference,
			MessageReference:      "1",
			ConversationTitle:     req.Title,
			IsAnnouncement:        newConversation.Announcement,
		}
		if err := h.notifierClient.SendMessageNotification(r.Context(), notification); err != nil {
			logger.Error(fmt.Sprintf("failed to send message notification: %v", err))
		}
	}

	response := api.CreateConversationResponse{
		Reference: conversationReference,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) MarkAllConversationsAsRead(w http.ResponseWriter, r *http.Request, courseReference string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkAllConversationsAsRead")

	course, enrollment, ok := h.resolveEnrollment(w, r, logger, courseReference)
	if !ok {
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return h.repository.MarkAllConversationsAsRead(ctx, course, enrollment)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to mark all conversations as read: %v", err))
		h.writeError(w, "failed to mark all conversations as read", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request, courseReference string, conversationReference string, params api.GetConversationParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversation")

	course, enrollment, ok := h.resolveEnrollment(w, r, logger, courseReference)
	if !ok {
		return
	}

	conversation, ok := h.resolveConversation(w, r, logger, course, enrollment, conversationReference)
	if !ok {
		return
	}

	cursor := model.MessageCursor{}
	if params.BeforeMessageReference != nil {
		cursor.BeforeReference = *params.BeforeMessageReference
	}
	if params.AfterMessageReference != nil {
		cursor.AfterReference = *params.AfterMessageReference
	}

	messagePage, err := h.repository.GetConversationMessages(r.Context(), conversation, cursor, h.pagination.MessagesPageSize)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get messages: %v", err))
		h.writeError(w, "failed to get conversation", http.StatusInternalServerError)
		return
	}

	messageIDs := make([]int64, len(messagePage.Messages))
	for i, message := range messagePage.Messages {
		messageIDs[i] = message.ID
	}
	if err := h.repository.InsertReadings(r.Context(), enrollment.ID, messageIDs); err != nil {
		logger.Error(fmt.Sprintf("failed to record readings: %v", err))
	}

	messages := make([]api.Message, len(messagePage.Messages))
	for i, message := range messagePage.Messages {
		messages[i] = toAPIMessage(&message, enrollment)
	}

	response := api.GetConversationResponse{
		Conversation:      toAPIConversation(conversation, enrollment),
		Messages:          messages,
		MoreMessagesExist: messagePage.MoreExist,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) UpdateConversation(w http.ResponseWriter, r *http.Request, courseReference string, conversationReference string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateConversation")

	var req api.UpdateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	course, enrollment, ok := h.resolveEnrollment(w, r, logger, courseReference)
	if !ok {
		return
	}

	conversation, ok := h.resolveConversation(w, r, logger, course, enrollment, conversationReference)
	if !ok {
		return
	}

	if !model.MayEditConversation(enrollment, conversation) {
		logger.Error("requester may not edit this conversation")
		h.writeError(w, "not allowed to edit this conversation", http.StatusForbidden)
		return
	}

	var selected []model.Enrollment
	if req.SelectedParticipantsReferences != nil {
		var err error
		selected, err = h.repository.GetEnrollmentsByReferences(r.Context(), course.ID, *req.SelectedParticipantsReferences)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to resolve selected participants: %v", err))
			h.writeError(w, "failed to update conversation", http.StatusInternalServerError)
			return
		}
	}

	update, err := h.validator.BuildConversationUpdate(&req, conversation, enrollment, selected)
	if err != nil {
		logger.Error(fmt.Sprintf("update validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("update validation failed: %v", err), http.StatusBadRequest)
		return
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return h.repository.ApplyConversationUpdate(ctx, conversation.ID, update)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to apply conversation update: %v", err))
		h.writeError(w, "failed to update conversation", http.StatusInternalServerError)
		return
	}

	h.publishLiveUpdate(r.Context(), logger, courseReference,
		fmt.Sprintf("/api/courses/%s/conversations/%s", courseReference, conversationReference))

	refreshed, err := h.repository.GetConversation(r.Context(), course, enrollment, conversationReference)
	if err != nil || refreshed == nil {
		logger.Error(fmt.Sprintf("failed to reload conversation: %v", err))
		h.writeError(w, "failed to update conversation", http.StatusInternalServerError)
		return
	}

	if update.SetAnnouncement != nil && *update.SetAnnouncement {
		notification := model.MessageNotification{
			CourseReference:       courseReference,
			ConversationReference: conversationReference,
			MessageReference:      "1",
			ConversationTitle:     refreshed.Title,
			IsAnnouncement:        true,
		}
		if err := h.notifierClient.SendMessageNotification(r.Context(), notification); err != nil {
			logger.Error(fmt.Sprintf("failed to send announcement notification: %v", err))
		}
	}

	h.writeJSON(w, toAPIConversation(refreshed, enrollment), http.StatusOK)
}

// DeleteConversation is staff-only moderation; authors cannot delete their
// own threads.
func (h *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request, courseReference string, conversationReference string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteConversation")

	course, enrollment, ok := h.resolveEnrollment(w, r, logger, courseReference)
	if !ok {
		return
	}

	conversation, ok := h.resolveConversation(w, r, logger, course, enrollment, conversationReference)
	if !ok {
		return
	}

	if !enrollment.IsStaff() {
		logger.Error("only staff may delete conversations")
		h.writeError(w, "only staff may delete conversations", http.StatusForbidden)
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return h.repository.DeleteConversation(ctx, conversation.ID)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete conversation: %v", err))
		h.writeError(w, "failed to delete conversation", http.StatusInternalServerError)
		return
	}

	h.publishLiveUpdate(r.Context(), logger, courseReference,
		fmt.Sprintf("/api/courses/%s/conversations", courseReference))

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateTagging(w http.ResponseWriter, r *http.Request, courseReference string, conversationReference string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateTagging")

	var req api.TaggingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	course, enrollment, ok := h.resolveEnrollment(w, r, logger, courseReference)
	if !ok {
		return
	}

	conversation, ok := h.resolveConversation(w, r, logger, course, enrollment, conversationReference)
	if !ok {
		return
	}

	if !model.MayEditConversation(enrollment, conversation) {
		logger.Error("requester may not edit this conversation")
		h.writeError(w, "not allowed to edit this conversation", http.StatusForbidden)
		return
	}

	tags, err := h.repository.GetCourseTags(r.Context(), course.ID, enrollment)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get course tags: %v", err))
		h.writeError(w, "failed to add tag", http.StatusInternalServerError)
		return
	}

	tag, err := h.validator.ValidateAddTagging(req.Reference, conversation, tags)
	if err != nil {
		logger.Error(fmt.Sprintf("tagging validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("tagging validation failed: %v", err), http.StatusBadRequest)
		return
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return h.repository.InsertTaggings(ctx, conversation.ID, []int64{tag.ID})
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to insert tagging: %v", err))
		h.writeError(w, "failed to add tag", http.StatusInternalServerError)
		return
	}

	h.publishLiveUpdate(r.Context(), logger, courseReference,
		fmt.Sprintf("/api/courses/%s/conversations/%s", courseReference, conversationReference))

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteTagging(w http.ResponseWriter, r *http.Request, courseReference string, conversationReference string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteTagging")

	var req api.TaggingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	course, enrollment, ok := h.resolveEnrollment(w, r, logger, courseReference)
	if !ok {
		return
	}

	conversation, ok := h.resolveConversation(w, r, logger, course, enrollment, conversationReference)
	if !ok {
		return
	}

	if !model.MayEditConversation(enrollment, conversation) {
		logger.Error("requester may not edit this conversation")
		h.writeError(w, "not allowed to edit this conversation", http.StatusForbidden)
		return
	}

	tags, err := h.repository.GetCourseTags(r.Context(), course.ID, enrollment)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get course tags: %v", err))
		h.writeError(w, "failed to remove tag", http.StatusInternalServerError)
		return
	}

	tag, err := h.validator.ValidateRemoveTagging(req.Reference, conversation, tags)
	if err != nil {
		logger.Error(fmt.Sprintf("tagging validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("tagging validation failed: %v", err), http.StatusBadRequest)
		return
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return h.repository.RemoveTagging(ctx, conversation.ID, tag.ID)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to remove tagging: %v", err))
		h.writeError(w, "failed to remove tag", http.StatusInternalServerError)
		return
	}

	h.publishLiveUpdate(r.Context(), logger, courseReference,
		fmt.Sprintf("/api/courses/%s/conversations/%s", courseReference, conversationReference))

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSelectedParticipants(w http.ResponseWriter, r *http.Request, courseReference string, conversationReference string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSelectedParticipants")

	course, enrollment, ok := h.resolveEnrollment(w, r, logger, courseReference)
	if !ok {
		return
	}

	conversation, ok := h.resolveConversation(w, r, logger, course, enrollment, conversationReference)
	if !ok {
		return
	}

	if conversation.Participants == model.ParticipantsEveryone || len(conversation.SelectedParticipants) <= 1 {
		logger.Error("conversation has no selected participants to show")
		h.writeError(w, "conversation has no selected participants to show", http.StatusBadRequest)
		return
	}

	participants := make([]api.Enrollment, len(conversation.SelectedParticipants))
	for i, participant := range conversation.SelectedParticipants {
		participants[i] = toAPIEnrollment(&participant)
	}

	response := api.GetSelectedParticipantsResponse{
		SelectedParticipants: participants,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

// resolveEnrollment maps the authenticated user onto a course membership.
// Unknown courses and non-enrolled requesters get the same 404, so probing
// course references reveals nothing.
func (h *Handler) resolveEnrollment(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, courseReference string) (*model.Course, *model.Enrollment, bool) {
	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return nil, nil, false
	}

	userID, err := uuid.Parse(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid user UUID: %v", err))
		h.writeError(w, "invalid user UUID", http.StatusBadRequest)
		return nil, nil, false
	}

	course, err := h.repository.GetCourseByReference(r.Context(), courseReference)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get course: %v", err))
		h.writeError(w, "failed to resolve course", http.StatusInternalServerError)
		return nil, nil, false
	}
	if course == nil {
		h.writeError(w, "course not found", http.StatusNotFound)
		return nil, nil, false
	}

	enrollment, err := h.repository.GetEnrollment(r.Context(), course.ID, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get enrollment: %v", err))
		h.writeError(w, "failed to resolve course", http.StatusInternalServerError)
		return nil, nil, false
	}
	if enrollment == nil {
		h.writeError(w, "course not found", http.StatusNotFound)
		return nil, nil, false
	}

	return course, enrollment, true
}

// resolveConversation loads the aggregate; invisible and missing collapse
// into the same 404.
func (h *Handler) resolveConversation(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, course *model.Course, enrollment *model.Enrollment, conversationReference string) (*model.Conversation, bool) {
	conversation, err := h.repository.GetConversation(r.Context(), course, enrollment, conversationReference)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		h.writeError(w, "failed to resolve conversation", http.StatusInternalServerError)
		return nil, false
	}
	if conversation == nil {
		h.writeError(w, "conversation not found", http.StatusNotFound)
		return nil, false
	}
	return conversation, true
}

func (h *Handler) publishLiveUpdate(ctx context.Context, logger logger_lib.LoggerInterface, courseReference, url string) {
	err := h.centrifugeClient.Publish(ctx, courseChannel(courseReference), model.LiveUpdate{URL: url})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to publish live update: %v", err))
	}
}

func courseChannel(courseReference string) string {
	return "course:" + courseReference
}

func toAPIConversation(conversation *model.Conversation, enrollment *model.Enrollment) api.Conversation {
	selectedParticipants := make([]api.Enrollment, len(conversation.SelectedParticipants))
	for i, participant := range conversation.SelectedParticipants {
		selectedParticipants[i] = toAPIEnrollment(&participant)
	}

	taggings := make([]api.Tag, len(conversation.Taggings))
	for i, tag := range conversation.Taggings {
		taggings[i] = api.Tag{
			Reference: tag.Reference,
			Name:      tag.Name,
			StaffOnly: tag.StaffOnly,
		}
	}

	endorsements := make([]api.Endorsement, len(conversation.Endorsements))
	for i, endorsement := range conversation.Endorsements {
		endorsements[i] = api.Endorsement{
			MessageReference: endorsement.MessageReference,
			EndorserName:     endorsement.Endorser.DisplayName(),
			CreatedAt:        formatTime(endorsement.CreatedAt),
		}
	}

	return api.Conversation{
		Reference:            conversation.Reference,
		Type:                 string(conversation.Type),
		Participants:         string(conversation.Participants),
		Title:                conversation.Title,
		CreatedAt:            formatTime(conversation.CreatedAt),
		UpdatedAt:            formatTimePtr(conversation.UpdatedAt),
		Author:               toAPIAuthor(conversation.Author, conversation.AnonymousAt, conversation.AuthorVisibleTo(enrollment)),
		ResolvedAt:           formatTimePtr(conversation.ResolvedAt),
		AnnouncementAt:       formatTimePtr(conversation.AnnouncementAt),
		PinnedAt:             formatTimePtr(conversation.PinnedAt),
		SelectedParticipants: selectedParticipants,
		Taggings:             taggings,
		MessagesCount:        conversation.MessagesCount,
		ReadingsCount:        conversation.ReadingsCount,
		Endorsements:         endorsements,
	}
}

func toAPIMessage(message *model.Message, enrollment *model.Enrollment) api.Message {
	return api.Message{
		Reference:           message.Reference,
		CreatedAt:           formatTime(message.CreatedAt),
		UpdatedAt:           formatTimePtr(message.UpdatedAt),
		Author:              toAPIAuthor(message.Author, message.AnonymousAt, message.AuthorVisibleTo(enrollment)),
		ContentPreprocessed: message.ContentPreprocessed,
	}
}

// toAPIAuthor renders an author the way the viewer may see them: anonymous
// authors collapse to a nameless placeholder unless the viewer sees through
// anonymity, and departed authors always render the departed sentinel.
func toAPIAuthor(author model.Author, anonymousAt *time.Time, visible bool) api.Author {
	isAnonymous := anonymousAt != nil

	if isAnonymous && !visible {
		return api.Author{
			DisplayName: anonymousDisplayName,
			IsAnonymous: true,
		}
	}

	if author.Departed {
		return api.Author{
			DisplayName: model.DepartedAuthorName,
			IsAnonymous: isAnonymous,
		}
	}

	reference := author.Enrollment.Reference
	result := api.Author{
		DisplayName: author.DisplayName(),
		Reference:   &reference,
		IsAnonymous: isAnonymous,
	}
	if author.Enrollment.AvatarURL != "" {
		avatarURL := author.Enrollment.AvatarURL
		result.AvatarUrl = &avatarURL
	}
	return result
}

func toAPIEnrollment(enrollment *model.Enrollment) api.Enrollment {
	result := api.Enrollment{
		Reference:  enrollment.Reference,
		Name:       enrollment.UserName,
		CourseRole: string(enrollment.CourseRole),
	}
	if enrollment.AvatarURL != "" {
		avatarURL := enrollment.AvatarURL
		result.AvatarUrl = &avatarURL
	}
	return result
}

func toAPISearchResult(searchResult *model.SearchResult) *api.SearchResult {
	if searchResult == nil {
		return nil
	}

	result := &api.SearchResult{
		Type: string(searchResult.Type),
	}

	switch searchResult.Type {
	case model.SearchResultConversationTitle:
		highlight := searchResult.ConversationTitleHighlight
		result.ConversationTitleHighlight = &highlight
	case model.SearchResultMessageAuthorName:
		messageReference := searchResult.MessageReference
		highlight := searchResult.MessageAuthorNameHighlight
		result.MessageReference = &messageReference
		result.MessageAuthorNameHighlight = &highlight
	case model.SearchResultMessageContent:
		messageReference := searchResult.MessageReference
		snippet := searchResult.MessageContentSnippet
		result.MessageReference = &messageReference
		result.MessageContentSnippet = &snippet
	}

	return result
}

func tagIDsByReferences(tags []model.Tag, references []string) []int64 {
	ids := make([]int64, 0, len(references))
	for _, reference := range references {
		for _, tag := range tags {
			if tag.Reference == reference {
				ids = append(ids, tag.ID)
				break
			}
		}
	}
	return ids
}

func enrollmentIDs(enrollments []model.Enrollment) []int64 {
	ids := make([]int64, len(enrollments))
	for i, enrollment := range enrollments {
		ids[i] = enrollment.ID
	}
	return ids
}

func isOn(value *string) bool {
	return value != nil && *value == "on"
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
