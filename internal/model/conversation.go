package model

import (
	"time"
)

type ConversationType string

const (
	ConversationTypeQuestion ConversationType = "question"
	ConversationTypeNote     ConversationType = "note"
	ConversationTypeChat     ConversationType = "chat"
)

func ParseConversationType(s string) (ConversationType, bool) {
	switch ConversationType(s) {
	case ConversationTypeQuestion, ConversationTypeNote, ConversationTypeChat:
		return ConversationType(s), true
	}
	return "", false
}

type Participants string

const (
	ParticipantsEveryone       Participants = "everyone"
	ParticipantsStaff          Participants = "staff"
	ParticipantsSelectedPeople Participants = "selected-people"
)

func ParseParticipants(s string) (Participants, bool) {
	switch Participants(s) {
	case ParticipantsEveryone, ParticipantsStaff, ParticipantsSelectedPeople:
		return Participants(s), true
	}
	return "", false
}

// Conversation is the full aggregate returned by the reader: the row itself
// plus everything a viewer is allowed to see about it.
type Conversation struct {
	ID                   int64
	CourseID             int64
	Reference            string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
	Author               Author
	AnonymousAt          *time.Time
	Type                 ConversationType
	ResolvedAt           *time.Time
	AnnouncementAt       *time.Time
	PinnedAt             *time.Time
	Participants         Participants
	Title                string
	NextMessageReference int64

	SelectedParticipants []Enrollment
	Taggings             []Tag
	MessagesCount        int64
	ReadingsCount        int64
	Endorsements         []Endorsement
}

// AuthorVisibleTo reports whether the viewer may learn who started an
// anonymous conversation. Staff and the author always see through anonymity.
func (c *Conversation) AuthorVisibleTo(enrollment *Enrollment) bool {
	if c.AnonymousAt == nil {
		return true
	}
	return enrollment.IsStaff() || c.Author.Is(enrollment)
}

func MayEditConversation(enrollment *Enrollment, conversation *Conversation) bool {
	return enrollment.IsStaff() || conversation.Author.Is(enrollment)
}

type Endorsement struct {
	ID               int64
	MessageID        int64
	MessageReference string
	CreatedAt        time.Time
	Endorser         Author
}

// ConversationUpdate is the write set produced by validating a PATCH
// request. Nil fields are untouched; the whole set commits in one
// transaction or not at all.
type ConversationUpdate struct {
	Participants          *Participants
	SelectedEnrollmentIDs []int64
	SetAnonymous          *bool
	Type                  *ConversationType
	SetAnnouncement       *bool
	SetPinned             *bool
	SetResolved           *bool
	Title                 *string

	// BumpUpdatedAt is derived during validation: title edits,
	// announcement-on and pin-on resurface the conversation in recency
	// ordering, nothing else does.
	BumpUpdatedAt bool
}

func (u *ConversationUpdate) Empty() bool {
	return u.Participants == nil &&
		u.SetAnonymous == nil &&
		u.Type == nil &&
		u.SetAnnouncement == nil &&
		u.SetPinned == nil &&
		u.SetResolved == nil &&
		u.Title == nil
}

type NewConversation struct {
	Type                  ConversationType
	Title                 string
	Participants          Participants
	Anonymous             bool
	Announcement          bool
	Pinned                bool
	TagIDs                []int64
	SelectedEnrollmentIDs []int64
}
