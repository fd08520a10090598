package app

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/admin"
	"github.com/manoj8056887579/careerhq-sub001/internal/integration/mailer"
	"github.com/manoj8056887579/careerhq-sub001/internal/security"
)

const (
	resetTokenBytes = 32
	resetTokenTTL   = time.Hour
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// AuthService implements the admin session and password reset flows.
type AuthService struct {
	admins   admin.Repository
	sessions *security.SessionProvider
	mail     mailer.Mailer
	logger   Logger
	baseURL  string
}

func NewAuthService(admins admin.Repository, sessions *security.SessionProvider, mail mailer.Mailer, logger Logger, baseURL string) *AuthService {
	return &AuthService{
		admins:   admins,
		sessions: sessions,
		mail:     mail,
		logger:   logger,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// Seed upserts the bootstrap admin account. Repeated starts with the
// same email are no-ops.
func (s *AuthService) Seed(ctx context.Context, email, password string) error {
	hash, err := security.HashPassword(password)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to hash admin password", err)
	}
	return s.admins.Seed(ctx, strings.ToLower(strings.TrimSpace(email)), hash)
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Account   *admin.Account
}

// Login verifies credentials and mints a session token. Every failure
// mode returns the same unauthorized error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
	}
	account, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
		}
		return nil, err
	}
	if !security.CheckPassword(account.PasswordHash, password) {
		return nil, common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
	}
	token, expiresAt, err := s.sessions.Generate(account.ID, account.Email, account.Name)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create session", err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Account: account}, nil
}

func (s *AuthService) Account(ctx context.Context, id common.UUID) (*admin.Account, error) {
	return s.admins.GetByID(ctx, id)
}

func (s *AuthService) UpdateProfile(ctx context.Context, id common.UUID, profile admin.Profile) (*admin.Account, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return nil, common.NewError(common.CodeValidation, "name is required", nil)
	}
	return s.admins.UpdateProfile(ctx, id, profile)
}

// ForgotPassword issues a reset token and mails the reset link. The
// caller always gets a nil error for unknown addresses so the endpoint
// cannot be used to probe which emails exist.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return common.NewError(common.CodeValidation, "email is required", nil)
	}
	account, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil
		}
		return err
	}

	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return common.NewError(common.CodeInternal, "failed to generate reset token", err)
	}
	token := hex.EncodeToString(raw)
	if err := s.admins.SetResetToken(ctx, account.ID, hashResetToken(token), time.Now().UTC().Add(resetTokenTTL)); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/admin/reset-password?token=%s", s.baseURL, token)
	body := fmt.Sprintf("A password reset was requested for your account.\n\nReset link (valid for 1 hour):\n%s\n\nIf you did not request this, ignore this email.", link)
	if err := s.mail.Send(account.Email, "Password reset", body); err != nil {
		s.logger.Error("failed to send reset email: " + err.Error())
	}
	return nil
}

// ResetPassword consumes a reset token. Tokens are single use; the
// matching update clears them.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return common.NewError(common.CodeValidation, "token is required", nil)
	}
	if len(newPassword) < 8 {
		return common.NewError(common.CodeValidation, "password must be at least 8 characters", nil)
	}
	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	if err := s.admins.ResetPassword(ctx, hashResetToken(token), hash, time.Now().UTC()); err != nil {
		if common.Is(err, common.CodeNotFound) {
			return common.NewError(common.CodeValidation, "invalid or expired reset token", nil)
		}
		return err
	}
	return nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
