package company

import (
	"context"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

type Company struct {
	ID         common.UUID `json:"id"`
	Name       string      `json:"name"`
	LogoImage  string      `json:"logo_image"`
	ModuleType string      `json:"module_type"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, c Company) (*Company, error)
	Update(ctx context.Context, c Company) (*Company, error)
	GetByID(ctx context.Context, id common.UUID) (*Company, error)
	List(ctx context.Context, moduleType string, page, limit int) ([]Company, error)
	Delete(ctx context.Context, id common.UUID) error
}
