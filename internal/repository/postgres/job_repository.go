package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, title, slug, department, location, employment_type, description, responsibilities, requirements, benefits, published, created_at, updated_at`

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		j.ID, j.Title, j.Slug, j.Department, j.Location, j.EmploymentType, j.Description,
		pq.Array(j.Responsibilities), pq.Array(j.Requirements), pq.Array(j.Benefits),
		j.Published, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return nil, common.NewConflictError("job slug already exists", "slug")
		}
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	j.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, slug = $2, department = $3, location = $4, employment_type = $5, description = $6, responsibilities = $7, requirements = $8, benefits = $9, published = $10, updated_at = $11
		WHERE id = $12`,
		j.Title, j.Slug, j.Department, j.Location, j.EmploymentType, j.Description,
		pq.Array(j.Responsibilities), pq.Array(j.Requirements), pq.Array(j.Benefits),
		j.Published, j.UpdatedAt, j.ID)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return nil, common.NewConflictError("job slug already exists", "slug")
		}
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return &j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *JobRepository) GetBySlug(ctx context.Context, slug string) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE slug = $1`, slug)
	return scanJob(row)
}

func (r *JobRepository) SlugExists(ctx context.Context, slug string, excludeID common.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM jobs WHERE slug = $1 AND id <> $2)`, slug, excludeID).Scan(&exists)
	if err != nil {
		return false, common.NewError(common.CodeInternal, "failed to check slug", err)
	}
	return exists, nil
}

func (r *JobRepository) List(ctx context.Context, filter job.Filter) ([]job.Job, error) {
	var b queryBuilder
	if filter.Department != "" {
		b.add("department = $%d", filter.Department)
	}
	if filter.Location != "" {
		b.add("location = $%d", filter.Location)
	}
	if filter.TitleContains != "" {
		b.add("title ILIKE $%d", "%"+filter.TitleContains+"%")
	}
	if filter.Published != nil {
		b.add("published = $%d", *filter.Published)
	}
	pageClause, args := b.page(filter.Page, filter.Limit)
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs`+b.where()+` ORDER BY created_at DESC`+pageClause, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *j)
	}
	return items, nil
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

func scanJob(row scannable) (*job.Job, error) {
	var j job.Job
	if err := row.Scan(&j.ID, &j.Title, &j.Slug, &j.Department, &j.Location, &j.EmploymentType,
		&j.Description, pq.Array(&j.Responsibilities), pq.Array(&j.Requirements), pq.Array(&j.Benefits),
		&j.Published, &j.CreatedAt, &j.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return &j, nil
}
