package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/lead"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

const leadColumns = `id, name, email, phone, program, study_level, country, message, career_test, consent, status, created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, l lead.Lead) (*lead.Lead, error) {
	l.ID = common.NewUUID()
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	if l.Status == "" {
		l.Status = lead.StatusNew
	}
	answers, err := encodeAnswers(l.CareerTest)
	if err != nil {
		return nil, err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO leads (`+leadColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		l.ID, l.Name, l.Email, l.Phone, l.Program, l.StudyLevel, l.Country, l.Message,
		answers, l.Consent, l.Status, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return nil, common.NewConflictError("lead already exists", conflictField(constraint))
		}
		return nil, common.NewError(common.CodeInternal, "failed to create lead", err)
	}
	return &l, nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id common.UUID) (*lead.Lead, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	return scanLead(row)
}

func (r *LeadRepository) FindByContact(ctx context.Context, email, phone string) (*lead.Lead, string, error) {
	// Empty contact fields never match; either side may be blank.
	row := r.db.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE ($1 <> '' AND lower(email) = lower($1)) OR ($2 <> '' AND phone = $2) LIMIT 1`, email, phone)
	existing, err := scanLead(row)
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

func (r *LeadRepository) List(ctx context.Context, filter lead.Filter) ([]lead.Lead, error) {
	var b queryBuilder
	if filter.Status != "" {
		b.add("status = $%d", filter.Status)
	}
	if filter.Program != "" {
		b.add("program = $%d", filter.Program)
	}
	if filter.NameContains != "" {
		b.add("name ILIKE $%d", "%"+filter.NameContains+"%")
	}
	pageClause, args := b.page(filter.Page, filter.Limit)
	rows, err := r.db.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads`+b.where()+` ORDER BY created_at DESC`+pageClause, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list leads", err)
	}
	defer rows.Close()
	var items []lead.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	return items, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id common.UUID, status lead.Status) (*lead.Lead, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE leads SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update lead status", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "lead not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *LeadRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete lead", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "lead not found", sql.ErrNoRows)
	}
	return nil
}

func scanLead(row scannable) (*lead.Lead, error) {
	var l lead.Lead
	var answers []byte
	if err := row.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Program, &l.StudyLevel,
		&l.Country, &l.Message, &answers, &l.Consent, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "lead not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load lead", err)
	}
	if err := json.Unmarshal(answers, &l.CareerTest); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode career test", err)
	}
	return &l, nil
}

func encodeAnswers(answers []lead.Answer) ([]byte, error) {
	if answers == nil {
		answers = []lead.Answer{}
	}
	encoded, err := json.Marshal(answers)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode career test", err)
	}
	return encoded, nil
}

// conflictField maps a unique-constraint name to the contact field it
// guards, keeping the 409 payload stable when the pre-insert check loses
// a race.
func conflictField(constraint string) string {
	if strings.Contains(constraint, "phone") {
		return "phone"
	}
	return "email"
}
