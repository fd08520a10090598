package app

import (
	"context"
	"strings"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/partner"
	"github.com/manoj8056887579/careerhq-sub001/internal/integration/captcha"
)

type PartnerService struct {
	repo        partner.Repository
	captcha     captcha.Verifier
	logger      Logger
	skipCaptcha bool
}

func NewPartnerService(repo partner.Repository, verifier captcha.Verifier, skipCaptcha bool, logger Logger) *PartnerService {
	return &PartnerService{repo: repo, captcha: verifier, skipCaptcha: skipCaptcha, logger: logger}
}

// Submit records a partnership application. Duplicate contacts are
// detected per collection, independent of the leads table.
func (s *PartnerService) Submit(ctx context.Context, a partner.Application, captchaToken, remoteIP string) (*partner.Application, error) {
	a.Organization = strings.TrimSpace(a.Organization)
	a.ContactName = strings.TrimSpace(a.ContactName)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Phone = strings.TrimSpace(a.Phone)

	fields := map[string]string{}
	if a.Organization == "" {
		fields["organization"] = "organization is required"
	}
	if a.ContactName == "" {
		fields["contact_name"] = "contact name is required"
	}
	if a.Email == "" && a.Phone == "" {
		fields["email"] = "email or phone is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid partner application", fields)
	}

	// Verification only applies when the form actually sent a token.
	if !s.skipCaptcha && s.captcha != nil && captchaToken != "" {
		result, err := s.captcha.Verify(ctx, captchaToken, remoteIP)
		if err != nil {
			s.logger.Error("captcha verification unavailable: " + err.Error())
		} else if !result.Success {
			return nil, common.NewValidationError("captcha verification failed", map[string]string{"captcha": "token rejected"})
		}
	}

	if existing, field, err := s.repo.FindByContact(ctx, a.Email, a.Phone); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, common.NewConflictError("a partner application with this contact already exists", field)
	}

	a.Status = partner.StatusPending
	return s.repo.Create(ctx, a)
}

func (s *PartnerService) Get(ctx context.Context, id common.UUID) (*partner.Application, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PartnerService) List(ctx context.Context, filter partner.Filter) ([]partner.Application, error) {
	if filter.Status != "" && !partner.ValidStatus(filter.Status) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "unknown partner application status"})
	}
	return s.repo.List(ctx, filter)
}

func (s *PartnerService) UpdateStatus(ctx context.Context, id common.UUID, status partner.Status) (*partner.Application, error) {
	if !partner.ValidStatus(status) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "unknown partner application status"})
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *PartnerService) Delete(ctx context.Context, id common.UUID) error {
	return s.repo.Delete(ctx, id)
}
