package model

// ConversationFilter is the request-scoped, already-validated filter built
// from untrusted query parameters. A zero filter matches everything.
type ConversationFilter struct {
	IsQuick        bool
	IsUnread       *bool
	Types          []ConversationType
	IsResolved     *bool
	IsAnnouncement *bool
	Participantses []Participants
	IsPinned       *bool
	TagsReferences []string
	Search         string
}

func (f *ConversationFilter) Empty() bool {
	return f.IsUnread == nil &&
		len(f.Types) == 0 &&
		f.IsResolved == nil &&
		f.IsAnnouncement == nil &&
		len(f.Participantses) == 0 &&
		f.IsPinned == nil &&
		len(f.TagsReferences) == 0 &&
		f.Search == ""
}

type SearchResultType string

const (
	SearchResultConversationTitle SearchResultType = "conversationTitle"
	SearchResultMessageAuthorName SearchResultType = "messageAuthorUserName"
	SearchResultMessageContent    SearchResultType = "messageContent"
)

// SearchResult is the single best-matching highlight attached to a
// conversation reference in search mode. Exactly one of the three shapes is
// populated, picked by the fixed priority title > author name > content.
type SearchResult struct {
	Type SearchResultType

	ConversationTitleHighlight string

	MessageReference           string
	MessageAuthorNameHighlight string
	MessageContentSnippet      string
}

// ConversationRef is one row of a search/list result: the reference plus
// the optional search metadata the list view renders.
type ConversationRef struct {
	Reference    string
	SearchResult *SearchResult
}

type ConversationPage struct {
	Conversations []ConversationRef
	MoreExist     bool
}
