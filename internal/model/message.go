package model

import (
	"time"
)

type MessageList []Message

type Message struct {
	ID                  int64
	ConversationID      int64
	Reference           string
	CreatedAt           time.Time
	UpdatedAt           *time.Time
	Author              Author
	AnonymousAt         *time.Time
	ContentSource       string
	ContentPreprocessed string
}

func (m *Message) AuthorVisibleTo(enrollment *Enrollment) bool {
	if m.AnonymousAt == nil {
		return true
	}
	return enrollment.IsStaff() || m.Author.Is(enrollment)
}

// MessagePage is one chronological page of a conversation. Messages are
// always ascending by reference; Reversed records that the page was fetched
// newest-first (the chat default) before being put back in order.
type MessagePage struct {
	Messages  MessageList
	MoreExist bool
	Reversed  bool
}

type MessageCursor struct {
	BeforeReference string
	AfterReference  string
}

// PreprocessedContent is what the content pipeline produces from raw
// author input: the sanitized render form and the plain-text search form.
type PreprocessedContent struct {
	ContentPreprocessed string
	ContentSearch       string
}
