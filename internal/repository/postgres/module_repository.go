package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/module"
)

type ModuleRepository struct {
	db *sql.DB
}

func NewModuleRepository(db *sql.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

const moduleColumns = `id, module_type, title, description, long_description, category, custom_fields, highlights, cover_image, gallery_images, published, slug, created_at, updated_at`

func (r *ModuleRepository) Create(ctx context.Context, m module.Module) (*module.Module, error) {
	m.ID = common.NewUUID()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	fields, err := encodeCustomFields(m.CustomFields)
	if err != nil {
		return nil, err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO modules (`+moduleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		m.ID, m.Type, m.Title, m.Description, m.LongDescription, m.Category, fields,
		pq.Array(m.Highlights), m.CoverImage, pq.Array(m.GalleryImages), m.Published,
		nullableSlug(m.Slug), m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create module", err)
	}
	return &m, nil
}

func (r *ModuleRepository) Update(ctx context.Context, m module.Module) (*module.Module, error) {
	m.UpdatedAt = time.Now().UTC()
	fields, err := encodeCustomFields(m.CustomFields)
	if err != nil {
		return nil, err
	}
	result, err := r.db.ExecContext(ctx, `UPDATE modules SET module_type = $1, title = $2, description = $3, long_description = $4, category = $5, custom_fields = $6, highlights = $7, cover_image = $8, gallery_images = $9, published = $10, slug = $11, updated_at = $12
		WHERE id = $13`,
		m.Type, m.Title, m.Description, m.LongDescription, m.Category, fields,
		pq.Array(m.Highlights), m.CoverImage, pq.Array(m.GalleryImages), m.Published,
		nullableSlug(m.Slug), m.UpdatedAt, m.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update module", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "module not found", sql.ErrNoRows)
	}
	return &m, nil
}

func (r *ModuleRepository) GetByID(ctx context.Context, id common.UUID) (*module.Module, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+moduleColumns+` FROM modules WHERE id = $1`, id)
	return scanModuleRow(row)
}

func (r *ModuleRepository) GetBySlug(ctx context.Context, slug string) (*module.Module, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+moduleColumns+` FROM modules WHERE slug = $1`, slug)
	return scanModuleRow(row)
}

func (r *ModuleRepository) List(ctx context.Context, filter module.Filter) ([]module.Module, error) {
	var b queryBuilder
	if filter.Type != "" {
		b.add("module_type = $%d", filter.Type)
	}
	if filter.Category != "" {
		b.add("category = $%d", filter.Category)
	}
	if filter.TitleContains != "" {
		b.add("title ILIKE $%d", "%"+filter.TitleContains+"%")
	}
	if filter.Published != nil {
		b.add("published = $%d", *filter.Published)
	}
	pageClause, args := b.page(filter.Page, filter.Limit)
	rows, err := r.db.QueryContext(ctx, `SELECT `+moduleColumns+` FROM modules`+b.where()+` ORDER BY created_at DESC`+pageClause, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list modules", err)
	}
	defer rows.Close()
	var items []module.Module
	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	return items, nil
}

func (r *ModuleRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM modules WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete module", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "module not found", sql.ErrNoRows)
	}
	return nil
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanModuleRow(row *sql.Row) (*module.Module, error) {
	return scanModule(row)
}

func scanModule(row scannable) (*module.Module, error) {
	var m module.Module
	var fields []byte
	var slug sql.NullString
	if err := row.Scan(&m.ID, &m.Type, &m.Title, &m.Description, &m.LongDescription, &m.Category,
		&fields, pq.Array(&m.Highlights), &m.CoverImage, pq.Array(&m.GalleryImages),
		&m.Published, &slug, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "module not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load module", err)
	}
	m.Slug = slug.String
	if err := json.Unmarshal(fields, &m.CustomFields); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode custom fields", err)
	}
	return &m, nil
}

func encodeCustomFields(fields []module.CustomField) ([]byte, error) {
	if fields == nil {
		fields = []module.CustomField{}
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode custom fields", err)
	}
	return encoded, nil
}

func nullableSlug(slug string) sql.NullString {
	return sql.NullString{String: slug, Valid: slug != ""}
}

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c module.Category) (*module.Category, error) {
	c.ID = common.NewUUID()
	c.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO module_categories (id, name, module_type, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Type, c.CreatedAt)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return nil, common.NewConflictError("category already exists for this module type", "name")
		}
		return nil, common.NewError(common.CodeInternal, "failed to create category", err)
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context, moduleType module.Type) ([]module.Category, error) {
	var b queryBuilder
	if moduleType != "" {
		b.add("module_type = $%d", moduleType)
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, module_type, created_at FROM module_categories`+b.where()+` ORDER BY name`, b.args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list categories", err)
	}
	defer rows.Close()
	var items []module.Category
	for rows.Next() {
		var c module.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan category", err)
		}
		items = append(items, c)
	}
	return items, nil
}
