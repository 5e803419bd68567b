package model

// UserUpdateEvent arrives over the platform user topic whenever a profile
// changes upstream. Renames matter here: author-name search reads
// users.name, so stale names would make search miss.
type UserUpdateEvent struct {
	UserID    string `json:"user_uuid"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_link"`
}

// MessageNotification is the payload handed to the email-notification
// collaborator; delivery itself is out of this service's hands.
type MessageNotification struct {
	CourseReference       string `json:"course_reference"`
	ConversationReference string `json:"conversation_reference"`
	MessageReference      string `json:"message_reference"`
	ConversationTitle     string `json:"conversation_title"`
	IsAnnouncement        bool   `json:"is_announcement"`
}
