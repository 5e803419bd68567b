package validator

import (
	"fmt"
	"strings"

	api "github.com/courseforum/conversation-service/internal/generated"
	"github.com/courseforum/conversation-service/internal/model"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ParseConversationFilter normalizes untrusted query parameters into a
// typed filter. Malformed or out-of-domain values are dropped silently:
// query strings are client-controlled and an invalid filter key means "no
// filter", never an error.
func (v *Validator) ParseConversationFilter(params *api.GetConversationsParams, tags []model.Tag) *model.ConversationFilter {
	filter := &model.ConversationFilter{}

	if params.Search != nil {
		filter.Search = SanitizeSearch(*params.Search)
	}

	if params.IsUnread != nil {
		if value, ok := parseBoolString(*params.IsUnread); ok {
			filter.IsUnread = &value
		}
	}

	if params.Types != nil {
		seen := make(map[model.ConversationType]struct{})
		for _, raw := range *params.Types {
			conversationType, ok := model.ParseConversationType(raw)
			if !ok {
				continue
			}
			if _, dup := seen[conversationType]; dup {
				continue
			}
			seen[conversationType] = struct{}{}
			filter.Types = append(filter.Types, conversationType)
		}
	}

	// isResolved only makes sense when filtering within questions, and
	// isAnnouncement within notes; incoherent combinations are dropped.
	if params.IsResolved != nil && containsType(filter.Types, model.ConversationTypeQuestion) {
		if value, ok := parseBoolString(*params.IsResolved); ok {
			filter.IsResolved = &value
		}
	}

	if params.IsAnnouncement != nil && containsType(filter.Types, model.ConversationTypeNote) {
		if value, ok := parseBoolString(*params.IsAnnouncement); ok {
			filter.IsAnnouncement = &value
		}
	}

	if params.Participantses != nil {
		seen := make(map[model.Participants]struct{})
		for _, raw := range *params.Participantses {
			participants, ok := model.ParseParticipants(raw)
			if !ok {
				continue
			}
			if _, dup := seen[participants]; dup {
				continue
			}
			seen[participants] = struct{}{}
			filter.Participantses = append(filter.Participantses, participants)
		}
	}

	if params.IsPinned != nil {
		if value, ok := parseBoolString(*params.IsPinned); ok {
			filter.IsPinned = &value
		}
	}

	if params.TagsReferences != nil {
		available := make(map[string]struct{}, len(tags))
		for _, tag := range tags {
			available[tag.Reference] = struct{}{}
		}
		seen := make(map[string]struct{})
		for _, reference := range *params.TagsReferences {
			if _, ok := available[reference]; !ok {
				continue
			}
			if _, dup := seen[reference]; dup {
				continue
			}
			seen[reference] = struct{}{}
			filter.TagsReferences = append(filter.TagsReferences, reference)
		}
	}

	if params.IsQuick != nil && *params.IsQuick == "true" && !filter.Empty() {
		filter.IsQuick = true
	}

	return filter
}

// SanitizeSearch strips full-text query syntax from a raw search string.
// The remainder is plain words; an empty remainder disables search.
func SanitizeSearch(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch r {
		case '&', '|', '!', '(', ')', ':', '*', '\'', '"', '<', '>', '\\':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ValidateCreateConversation checks a create request against the closed
// sets and course state, and returns the effective selected-participant
// list: a student opening a staff-only conversation, and anyone opening a
// selected-people conversation, is force-added so the thread never becomes
// invisible to its own author.
func (v *Validator) ValidateCreateConversation(
	req *api.CreateConversationRequest,
	enrollment *model.Enrollment,
	tags []model.Tag,
	selected []model.Enrollment,
) ([]model.Enrollment, error) {
	conversationType, ok := model.ParseConversationType(req.Type)
	if !ok {
		return nil, fmt.Errorf("conversation type '%s' is not supported", req.Type)
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	if strings.TrimSpace(req.Content) == "" && conversationType != model.ConversationTypeChat {
		return nil, fmt.Errorf("content is required")
	}

	if err := validateTagsReferences(req.TagsReferences, conversationType, tags); err != nil {
		return nil, err
	}

	participants, ok := model.ParseParticipants(req.Participants)
	if !ok {
		return nil, fmt.Errorf("participants '%s' is not supported", req.Participants)
	}

	if err := validateSelectedReferences(req.SelectedParticipantsReferences, participants, selected); err != nil {
		return nil, err
	}

	effective := selected
	if (participants == model.ParticipantsStaff && !enrollment.IsStaff()) ||
		participants == model.ParticipantsSelectedPeople {
		effective = forceAddEnrollment(effective, enrollment)
	}

	if participants == model.ParticipantsStaff {
		for _, participant := range effective {
			if participant.IsStaff() {
				return nil, fmt.Errorf("staff-scoped conversations must not list staff as selected participants")
			}
		}
	}

	if req.IsAnnouncement != nil && *req.IsAnnouncement == "on" {
		if !enrollment.IsStaff() || conversationType != model.ConversationTypeNote {
			return nil, fmt.Errorf("only staff may announce, and only notes can be announcements")
		}
	}

	if req.IsPinned != nil && *req.IsPinned == "on" && !enrollment.IsStaff() {
		return nil, fmt.Errorf("only staff may pin conversations")
	}

	if req.IsAnonymous != nil && *req.IsAnonymous == "on" && enrollment.IsStaff() {
		return nil, fmt.Errorf("staff may not post anonymously")
	}

	return effective, nil
}

// BuildConversationUpdate validates every requested PATCH field against the
// current conversation snapshot and collects them into a single write set.
// Nothing is written until every field passes; the caller applies the
// returned set in one transaction.
func (v *Validator) BuildConversationUpdate(
	req *api.UpdateConversationRequest,
	conversation *model.Conversation,
	enrollment *model.Enrollment,
	selected []model.Enrollment,
) (*model.ConversationUpdate, error) {
	if !model.MayEditConversation(enrollment, conversation) {
		return nil, fmt.Errorf("not allowed to edit this conversation")
	}

	update := &model.ConversationUpdate{}

	effectiveType := conversation.Type
	if req.Type != nil {
		conversationType, ok := model.ParseConversationType(*req.Type)
		if !ok {
			return nil, fmt.Errorf("conversation type '%s' is not supported", *req.Type)
		}
		if conversationType == conversation.Type {
			return nil, fmt.Errorf("conversation already has type '%s'", conversationType)
		}
		update.Type = &conversationType
		effectiveType = conversationType
	}

	if req.Participants != nil {
		participants, ok := model.ParseParticipants(*req.Participants)
		if !ok {
			return nil, fmt.Errorf("participants '%s' is not supported", *req.Participants)
		}

		var references []string
		if req.SelectedParticipantsReferences != nil {
			references = *req.SelectedParticipantsReferences
		}
		if err := validateSelectedReferences(references, participants, selected); err != nil {
			return nil, err
		}

		effective := selected
		if (participants == model.ParticipantsStaff && !enrollment.IsStaff()) ||
			participants == model.ParticipantsSelectedPeople {
			effective = forceAddEnrollment(effective, enrollment)
		}
		if participants == model.ParticipantsStaff {
			for _, participant := range effective {
				if participant.IsStaff() {
					return nil, fmt.Errorf("staff-scoped conversations must not list staff as selected participants")
				}
			}
		}

		update.Participants = &participants
		update.SelectedEnrollmentIDs = enrollmentIDs(effective)
	}

	if req.IsAnonymous != nil {
		value, ok := parseBoolString(*req.IsAnonymous)
		if !ok {
			return nil, fmt.Errorf("isAnonymous must be \"true\" or \"false\"")
		}
		if enrollment.IsStaff() {
			return nil, fmt.Errorf("staff may not toggle anonymity")
		}
		if !conversation.Author.Is(enrollment) {
			return nil, fmt.Errorf("only the author may toggle anonymity")
		}
		if value == (conversation.AnonymousAt != nil) {
			return nil, fmt.Errorf("conversation anonymity is already %t", value)
		}
		update.SetAnonymous = &value
	}

	if req.IsAnnouncement != nil {
		value, ok := parseBoolString(*req.IsAnnouncement)
		if !ok {
			return nil, fmt.Errorf("isAnnouncement must be \"true\" or \"false\"")
		}
		if !enrollment.IsStaff() {
			return nil, fmt.Errorf("only staff may change announcements")
		}
		if effectiveType != model.ConversationTypeNote {
			return nil, fmt.Errorf("only notes can be announcements")
		}
		if value == (conversation.AnnouncementAt != nil) {
			return nil, fmt.Errorf("conversation announcement is already %t", value)
		}
		update.SetAnnouncement = &value
		if value {
			update.BumpUpdatedAt = true
		}
	}

	if req.IsPinned != nil {
		value, ok := parseBoolString(*req.IsPinned)
		if !ok {
			return nil, fmt.Errorf("isPinned must be \"true\" or \"false\"")
		}
		if !enrollment.IsStaff() {
			return nil, fmt.Errorf("only staff may pin conversations")
		}
		if value == (conversation.PinnedAt != nil) {
			return nil, fmt.Errorf("conversation pin is already %t", value)
		}
		update.SetPinned = &value
		if value {
			update.BumpUpdatedAt = true
		}
	}

	if req.IsResolved != nil {
		value, ok := parseBoolString(*req.IsResolved)
		if !ok {
			return nil, fmt.Errorf("isResolved must be \"true\" or \"false\"")
		}
		if effectiveType != model.ConversationTypeQuestion {
			return nil, fmt.Errorf("only questions can be resolved")
		}
		if value == (conversation.ResolvedAt != nil) {
			return nil, fmt.Errorf("conversation resolution is already %t", value)
		}
		update.SetResolved = &value
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("title is required")
		}
		update.Title = &title
		update.BumpUpdatedAt = true
	}

	if update.Empty() {
		return nil, fmt.Errorf("no supported fields to update")
	}

	return update, nil
}

func (v *Validator) ValidateAddTagging(reference string, conversation *model.Conversation, tags []model.Tag) (*model.Tag, error) {
	tag := findTag(tags, reference)
	if tag == nil {
		return nil, fmt.Errorf("tag '%s' does not exist", reference)
	}
	for _, tagging := range conversation.Taggings {
		if tagging.ID == tag.ID {
			return nil, fmt.Errorf("tag '%s' is already applied", reference)
		}
	}
	return tag, nil
}

func (v *Validator) ValidateRemoveTagging(reference string, conversation *model.Conversation, tags []model.Tag) (*model.Tag, error) {
	tag := findTag(tags, reference)
	if tag == nil {
		return nil, fmt.Errorf("tag '%s' does not exist", reference)
	}
	applied := false
	for _, tagging := range conversation.Taggings {
		if tagging.ID == tag.ID {
			applied = true
			break
		}
	}
	if !applied {
		return nil, fmt.Errorf("tag '%s' is not applied", reference)
	}
	if len(conversation.Taggings) == 1 &&
		conversation.Type != model.ConversationTypeChat &&
		len(tags) > 0 {
		return nil, fmt.Errorf("conversations of type '%s' must keep at least one tag", conversation.Type)
	}
	return tag, nil
}

func validateTagsReferences(references []string, conversationType model.ConversationType, tags []model.Tag) error {
	if len(tags) == 0 {
		if len(references) != 0 {
			return fmt.Errorf("course has no tags")
		}
		return nil
	}

	if conversationType != model.ConversationTypeChat && len(references) == 0 {
		return fmt.Errorf("at least one tag is required")
	}

	seen := make(map[string]struct{}, len(references))
	for _, reference := range references {
		if _, dup := seen[reference]; dup {
			return fmt.Errorf("duplicate tag reference '%s'", reference)
		}
		seen[reference] = struct{}{}
		if findTag(tags, reference) == nil {
			return fmt.Errorf("tag '%s' does not exist", reference)
		}
	}

	return nil
}

func validateSelectedReferences(references []string, participants model.Participants, selected []model.Enrollment) error {
	seen := make(map[string]struct{}, len(references))
	for _, reference := range references {
		if _, dup := seen[reference]; dup {
			return fmt.Errorf("duplicate participant reference '%s'", reference)
		}
		seen[reference] = struct{}{}
	}

	switch participants {
	case model.ParticipantsEveryone:
		if len(references) != 0 {
			return fmt.Errorf("everyone-scoped conversations must not list selected participants")
		}
	case model.ParticipantsSelectedPeople:
		if len(references) == 0 {
			return fmt.Errorf("selected-people conversations require at least one selected participant")
		}
	}

	// the caller resolves references against course enrollments; a missing
	// resolution means an unknown reference
	if len(selected) != len(references) {
		return fmt.Errorf("some selected participants are not enrolled in this course")
	}

	return nil
}

func forceAddEnrollment(selected []model.Enrollment, enrollment *model.Enrollment) []model.Enrollment {
	for _, participant := range selected {
		if participant.ID == enrollment.ID {
			return selected
		}
	}
	return append(append([]model.Enrollment{}, selected...), *enrollment)
}

func enrollmentIDs(enrollments []model.Enrollment) []int64 {
	ids := make([]int64, len(enrollments))
	for i, enrollment := range enrollments {
		ids[i] = enrollment.ID
	}
	return ids
}

func findTag(tags []model.Tag, reference string) *model.Tag {
	for i := range tags {
		if tags[i].Reference == reference {
			return &tags[i]
		}
	}
	return nil
}

func containsType(types []model.ConversationType, t model.ConversationType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func parseBoolString(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
