package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/video"
)

type VideoRepository struct {
	db *sql.DB
}

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = `id, title, description, source_url, youtube_id, thumbnail_url, published, published_at, created_at, updated_at`

func (r *VideoRepository) Create(ctx context.Context, v video.Video) (*video.Video, error) {
	v.ID = common.NewUUID()
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO videos (`+videoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		v.ID, v.Title, v.Description, v.SourceURL, v.YouTubeID, v.ThumbnailURL,
		v.Published, v.PublishedAt, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create video", err)
	}
	return &v, nil
}

func (r *VideoRepository) Update(ctx context.Context, v video.Video) (*video.Video, error) {
	v.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE videos SET title = $1, description = $2, source_url = $3, youtube_id = $4, thumbnail_url = $5, published = $6, published_at = $7, updated_at = $8
		WHERE id = $9`,
		v.Title, v.Description, v.SourceURL, v.YouTubeID, v.ThumbnailURL, v.Published,
		v.PublishedAt, v.UpdatedAt, v.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update video", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "video not found", sql.ErrNoRows)
	}
	return &v, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id common.UUID) (*video.Video, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id)
	return scanVideo(row)
}

func (r *VideoRepository) List(ctx context.Context, published *bool, page, limit int) ([]video.Video, error) {
	var b queryBuilder
	if published != nil {
		b.add("published = $%d", *published)
	}
	pageClause, args := b.page(page, limit)
	rows, err := r.db.QueryContext(ctx, `SELECT `+videoColumns+` FROM videos`+b.where()+` ORDER BY created_at DESC`+pageClause, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list videos", err)
	}
	defer rows.Close()
	var items []video.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}
	return items, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete video", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "video not found", sql.ErrNoRows)
	}
	return nil
}

func scanVideo(row scannable) (*video.Video, error) {
	var v video.Video
	if err := row.Scan(&v.ID, &v.Title, &v.Description, &v.SourceURL, &v.YouTubeID,
		&v.ThumbnailURL, &v.Published, &v.PublishedAt, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "video not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load video", err)
	}
	return &v, nil
}
