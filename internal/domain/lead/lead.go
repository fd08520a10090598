package lead

import (
	"context"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusConverted Status = "converted"
	StatusClosed    Status = "closed"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusContacted, StatusConverted, StatusClosed:
		return true
	}
	return false
}

// Answer is one career-test question/answer pair embedded on the lead.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Lead struct {
	ID         common.UUID `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Program    string      `json:"program"`
	StudyLevel string      `json:"study_level"`
	Country    string      `json:"country"`
	Message    string      `json:"message"`
	CareerTest []Answer    `json:"career_test,omitempty"`
	Consent    bool        `json:"consent"`
	Status     Status      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type Filter struct {
	Status       Status
	Program      string
	NameContains string
	Page         int
	Limit        int
}

type Repository interface {
	Create(ctx context.Context, l Lead) (*Lead, error)
	GetByID(ctx context.Context, id common.UUID) (*Lead, error)
	// FindByContact matches email case-insensitively or phone exactly,
	// reporting which field matched. Returns a nil lead when neither does.
	FindByContact(ctx context.Context, email, phone string) (*Lead, string, error)
	List(ctx context.Context, filter Filter) ([]Lead, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Lead, error)
	Delete(ctx context.Context, id common.UUID) error
}
