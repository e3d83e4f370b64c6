package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOrganization Role = "ORGANIZATION"
	RoleUser         Role = "USER"
	RoleAdmin        Role = "ADMIN"
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleOrganization, RoleUser, RoleAdmin:
		return r, true
	}
	return "", false
}

// Actor is the authenticated identity every operation receives explicitly.
// Credentials are verified upstream; the core never re-checks them.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

type User struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	OrgName   string    `json:"org_name,omitempty"`
	College   string    `json:"college,omitempty"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Form struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      FormStatus `json:"status"`
	ShareCode   string     `json:"share_code"`
	Questions   []Question `json:"questions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Question struct {
	ID       uuid.UUID    `json:"id"`
	FormID   uuid.UUID    `json:"form_id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Required bool         `json:"required"`
	Options  []string     `json:"options,omitempty"`
	Position int          `json:"position"`
}

// Question looks up a question of the form by id.
func (f *Form) Question(id uuid.UUID) (Question, bool) {
	for _, q := range f.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

type Response struct {
	ID        uuid.UUID `json:"id"`
	FormID    uuid.UUID `json:"form_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Answers   []Answer  `json:"answers"`
}

type Answer struct {
	QuestionID uuid.UUID `json:"question_id"`
	Value      any       `json:"value"`
}

// AnswerInput is one submitted answer before validation.
type AnswerInput struct {
	QuestionID uuid.UUID `json:"question_id"`
	Value      any       `json:"value"`
}
