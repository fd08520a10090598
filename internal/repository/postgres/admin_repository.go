package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/admin"
)

type AdminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `id, email, password_hash, name, contact_emails, contact_phones, address, map_link, social_links, created_at, updated_at`

func (r *AdminRepository) Seed(ctx context.Context, email, passwordHash string) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO admin_accounts (id, email, password_hash, social_links, created_at, updated_at)
		VALUES ($1, $2, $3, '[]', $4, $5)
		ON CONFLICT (lower(email)) DO NOTHING`,
		common.NewUUID(), email, passwordHash, now, now)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to seed admin account", err)
	}
	return nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admin_accounts WHERE lower(email) = lower($1)`, email)
	return scanAdmin(row)
}

func (r *AdminRepository) GetByID(ctx context.Context, id common.UUID) (*admin.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admin_accounts WHERE id = $1`, id)
	return scanAdmin(row)
}

func (r *AdminRepository) UpdateProfile(ctx context.Context, id common.UUID, profile admin.Profile) (*admin.Account, error) {
	links, err := json.Marshal(emptyIfNilLinks(profile.SocialLinks))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode social links", err)
	}
	result, err := r.db.ExecContext(ctx, `UPDATE admin_accounts SET name = $1, contact_emails = $2, contact_phones = $3, address = $4, map_link = $5, social_links = $6, updated_at = $7
		WHERE id = $8`,
		profile.Name, pq.Array(profile.ContactEmails), pq.Array(profile.ContactPhones), profile.Address, profile.MapLink, links, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update admin profile", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "admin account not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *AdminRepository) SetResetToken(ctx context.Context, id common.UUID, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE admin_accounts SET reset_token_hash = $1, reset_token_expires = $2, updated_at = $3 WHERE id = $4`,
		tokenHash, expiresAt, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to store reset token", err)
	}
	return nil
}

func (r *AdminRepository) ResetPassword(ctx context.Context, tokenHash, passwordHash string, now time.Time) error {
	result, err := r.db.ExecContext(ctx, `UPDATE admin_accounts SET password_hash = $1, reset_token_hash = NULL, reset_token_expires = NULL, updated_at = $2
		WHERE reset_token_hash = $3 AND reset_token_expires > $4`,
		passwordHash, now, tokenHash, now)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to reset password", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "invalid or expired reset token", nil)
	}
	return nil
}

func scanAdmin(row *sql.Row) (*admin.Account, error) {
	var account admin.Account
	var links []byte
	if err := row.Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Name,
		pq.Array(&account.ContactEmails), pq.Array(&account.ContactPhones),
		&account.Address, &account.MapLink, &links, &account.CreatedAt, &account.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "admin account not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load admin account", err)
	}
	if err := json.Unmarshal(links, &account.SocialLinks); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode social links", err)
	}
	return &account, nil
}

func emptyIfNilLinks(links []admin.SocialLink) []admin.SocialLink {
	if links == nil {
		return []admin.SocialLink{}
	}
	return links
}
