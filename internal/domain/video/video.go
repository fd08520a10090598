package video

import (
	"context"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

type Video struct {
	ID           common.UUID `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	SourceURL    string      `json:"source_url"`
	YouTubeID    string      `json:"youtube_id"`
	ThumbnailURL string      `json:"thumbnail_url"`
	Published    bool        `json:"published"`
	PublishedAt  *time.Time  `json:"published_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, v Video) (*Video, error)
	Update(ctx context.Context, v Video) (*Video, error)
	GetByID(ctx context.Context, id common.UUID) (*Video, error)
	List(ctx context.Context, published *bool, page, limit int) ([]Video, error)
	Delete(ctx context.Context, id common.UUID) error
}
