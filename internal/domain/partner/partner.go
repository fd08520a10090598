package partner

import (
	"context"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusUnderReview Status = "under-review"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusUnderReview:
		return true
	}
	return false
}

type Application struct {
	ID              common.UUID `json:"id"`
	Organization    string      `json:"organization"`
	ContactName     string      `json:"contact_name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	PartnershipType string      `json:"partnership_type"`
	Website         string      `json:"website"`
	Message         string      `json:"message"`
	Status          Status      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type Filter struct {
	Status Status
	Page   int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, a Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByContact(ctx context.Context, email, phone string) (*Application, string, error)
	List(ctx context.Context, filter Filter) ([]Application, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
	Delete(ctx context.Context, id common.UUID) error
}
