package job

import (
	"context"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

type Filter struct {
	Department    string
	Location      string
	TitleContains string
	Published     *bool
	Page          int
	Limit         int
}

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	Update(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	GetBySlug(ctx context.Context, slug string) (*Job, error)
	SlugExists(ctx context.Context, slug string, excludeID common.UUID) (bool, error)
	List(ctx context.Context, filter Filter) ([]Job, error)
	Delete(ctx context.Context, id common.UUID) error
}
