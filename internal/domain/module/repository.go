package module

import (
	"context"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

type Filter struct {
	Type          Type
	Category      string
	TitleContains string
	Published     *bool
	Page          int
	Limit         int
}

type Repository interface {
	Create(ctx context.Context, m Module) (*Module, error)
	Update(ctx context.Context, m Module) (*Module, error)
	GetByID(ctx context.Context, id common.UUID) (*Module, error)
	GetBySlug(ctx context.Context, slug string) (*Module, error)
	List(ctx context.Context, filter Filter) ([]Module, error)
	Delete(ctx context.Context, id common.UUID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c Category) (*Category, error)
	List(ctx context.Context, moduleType Type) ([]Category, error)
}
