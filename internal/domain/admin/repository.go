package admin

import (
	"context"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

type Repository interface {
	// Seed inserts the account unless one with the same email already
	// exists. Safe to call on every start.
	Seed(ctx context.Context, email, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id common.UUID) (*Account, error)
	UpdateProfile(ctx context.Context, id common.UUID, profile Profile) (*Account, error)
	SetResetToken(ctx context.Context, id common.UUID, tokenHash string, expiresAt time.Time) error
	// ResetPassword swaps the password for the account holding a live
	// reset token and clears the token in the same statement. Returns
	// not found when no matching, non-expired token exists.
	ResetPassword(ctx context.Context, tokenHash, passwordHash string, now time.Time) error
}
