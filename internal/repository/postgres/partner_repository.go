package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/partner"
)

type PartnerRepository struct {
	db *sql.DB
}

func NewPartnerRepository(db *sql.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

const partnerColumns = `id, organization, contact_name, email, phone, partnership_type, website, message, status, created_at, updated_at`

func (r *PartnerRepository) Create(ctx context.Context, a partner.Application) (*partner.Application, error) {
	a.ID = common.NewUUID()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Status == "" {
		a.Status = partner.StatusPending
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO partner_applications (`+partnerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.Organization, a.ContactName, a.Email, a.Phone, a.PartnershipType,
		a.Website, a.Message, a.Status, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return nil, common.NewConflictError("partner application already exists", conflictField(constraint))
		}
		return nil, common.NewError(common.CodeInternal, "failed to create partner application", err)
	}
	return &a, nil
}

func (r *PartnerRepository) GetByID(ctx context.Context, id common.UUID) (*partner.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+partnerColumns+` FROM partner_applications WHERE id = $1`, id)
	return scanPartner(row)
}

func (r *PartnerRepository) FindByContact(ctx context.Context, email, phone string) (*partner.Application, string, error) {
	// Empty contact fields never match; either side may be blank.
	row := r.db.QueryRowContext(ctx, `SELECT `+partnerColumns+` FROM partner_applications WHERE ($1 <> '' AND lower(email) = lower($1)) OR ($2 <> '' AND phone = $2) LIMIT 1`, email, phone)
	existing, err := scanPartner(row)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, "", nil
		}
		return nil, "", err
	}
	field := "phone"
	if strings.EqualFold(existing.Email, email) {
		field = "email"
	}
	return existing, field, nil
}

func (r *PartnerRepository) List(ctx context.Context, filter partner.Filter) ([]partner.Application, error) {
	var b queryBuilder
	if filter.Status != "" {
		b.add("status = $%d", filter.Status)
	}
	pageClause, args := b.page(filter.Page, filter.Limit)
	rows, err := r.db.QueryContext(ctx, `SELECT `+partnerColumns+` FROM partner_applications`+b.where()+` ORDER BY created_at DESC`+pageClause, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list partner applications", err)
	}
	defer rows.Close()
	var items []partner.Application
	for rows.Next() {
		a, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, nil
}

func (r *PartnerRepository) UpdateStatus(ctx context.Context, id common.UUID, status partner.Status) (*partner.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE partner_applications SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update partner application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "partner application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *PartnerRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM partner_applications WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete partner application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "partner application not found", sql.ErrNoRows)
	}
	return nil
}

func scanPartner(row scannable) (*partner.Application, error) {
	var a partner.Application
	if err := row.Scan(&a.ID, &a.Organization, &a.ContactName, &a.Email, &a.Phone,
		&a.PartnershipType, &a.Website, &a.Message, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "partner application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load partner application", err)
	}
	return &a, nil
}
