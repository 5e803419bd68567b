package model

import (
	"github.com/google/uuid"
)

type CourseRole string

const (
	CourseRoleStudent CourseRole = "student"
	CourseRoleStaff   CourseRole = "staff"
)

type Course struct {
	ID                        int64  `db:"id"`
	Reference                 string `db:"reference"`
	Name                      string `db:"name"`
	NextConversationReference int64  `db:"next_conversation_reference"`
}

type Enrollment struct {
	ID         int64      `db:"id"`
	CourseID   int64      `db:"course_id"`
	Reference  string     `db:"reference"`
	CourseRole CourseRole `db:"course_role"`
	UserID     uuid.UUID  `db:"user_id"`
	UserName   string     `db:"user_name"`
	AvatarURL  string     `db:"avatar_url"`
}

func (e *Enrollment) IsStaff() bool {
	return e.CourseRole == CourseRoleStaff
}

// Author identifies who created a conversation or message. Enrollments may
// be removed after posting; such authors are Departed and carry a zero
// Enrollment that must not be rendered as a real person.
type Author struct {
	Departed   bool
	Enrollment Enrollment
}

const DepartedAuthorName = "no-longer-enrolled"

func (a Author) DisplayName() string {
	if a.Departed {
		return DepartedAuthorName
	}
	return a.Enrollment.UserName
}

func (a Author) Is(enrollment *Enrollment) bool {
	return !a.Departed && enrollment != nil && a.Enrollment.ID == enrollment.ID
}

type Tag struct {
	ID        int64  `db:"id"`
	CourseID  int64  `db:"course_id"`
	Reference string `db:"reference"`
	Name      string `db:"name"`
	StaffOnly bool   `db:"staff_only"`
}
