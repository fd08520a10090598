package app

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/video"
)

// Matches watch URLs, short links, embeds and shorts.
var youtubeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/(?:embed|shorts|v)/([A-Za-z0-9_-]{11})`),
}

type VideoService struct {
	repo   video.Repository
	logger Logger
}

func NewVideoService(repo video.Repository, logger Logger) *VideoService {
	return &VideoService{repo: repo, logger: logger}
}

func (s *VideoService) Create(ctx context.Context, v video.Video) (*video.Video, error) {
	if err := s.prepare(&v); err != nil {
		return nil, err
	}
	if v.Published {
		now := time.Now().UTC()
		v.PublishedAt = &now
	}
	return s.repo.Create(ctx, v)
}

func (s *VideoService) Update(ctx context.Context, v video.Video) (*video.Video, error) {
	current, err := s.repo.GetByID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	if err := s.prepare(&v); err != nil {
		return nil, err
	}
	switch {
	case v.Published && current.PublishedAt == nil:
		now := time.Now().UTC()
		v.PublishedAt = &now
	case v.Published:
		v.PublishedAt = current.PublishedAt
	default:
		v.PublishedAt = nil
	}
	return s.repo.Update(ctx, v)
}

func (s *VideoService) Get(ctx context.Context, id common.UUID) (*video.Video, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VideoService) List(ctx context.Context, published *bool, page, limit int) ([]video.Video, error) {
	return s.repo.List(ctx, published, page, limit)
}

func (s *VideoService) Delete(ctx context.Context, id common.UUID) error {
	return s.repo.Delete(ctx, id)
}

// prepare derives the YouTube id and thumbnail from the source URL.
func (s *VideoService) prepare(v *video.Video) error {
	fields := map[string]string{}
	v.Title = strings.TrimSpace(v.Title)
	v.SourceURL = strings.TrimSpace(v.SourceURL)
	if v.Title == "" {
		fields["title"] = "title is required"
	}
	if v.SourceURL == "" {
		fields["source_url"] = "source URL is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid video", fields)
	}

	id := ExtractYouTubeID(v.SourceURL)
	if id == "" {
		return common.NewValidationError("invalid video", map[string]string{"source_url": "not a recognizable YouTube URL"})
	}
	v.YouTubeID = id
	if v.ThumbnailURL == "" {
		v.ThumbnailURL = fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
	}
	return nil
}

func ExtractYouTubeID(sourceURL string) string {
	for _, pattern := range youtubeIDPatterns {
		if m := pattern.FindStringSubmatch(sourceURL); m != nil {
			return m[1]
		}
	}
	return ""
}
