package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/lead"
	"github.com/manoj8056887579/careerhq-sub001/internal/integration/captcha"
)

const exportLimit = 10000

type LeadService struct {
	repo    lead.Repository
	captcha captcha.Verifier
	logger  Logger
	// skipCaptcha bypasses verification entirely, set in development.
	skipCaptcha bool
}

func NewLeadService(repo lead.Repository, verifier captcha.Verifier, skipCaptcha bool, logger Logger) *LeadService {
	return &LeadService{repo: repo, captcha: verifier, skipCaptcha: skipCaptcha, logger: logger}
}

// Submit records a lead after captcha and duplicate checks. The
// duplicate check reports which contact field already exists.
func (s *LeadService) Submit(ctx context.Context, l lead.Lead, captchaToken, remoteIP string) (*lead.Lead, error) {
	l.Name = strings.TrimSpace(l.Name)
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
	l.Phone = strings.TrimSpace(l.Phone)

	fields := map[string]string{}
	if l.Name == "" {
		fields["name"] = "name is required"
	}
	if l.Email == "" && l.Phone == "" {
		fields["email"] = "email or phone is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid lead", fields)
	}

	if err := s.verifyCaptcha(ctx, captchaToken, remoteIP); err != nil {
		return nil, err
	}

	if existing, field, err := s.repo.FindByContact(ctx, l.Email, l.Phone); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, common.NewConflictError("a lead with this contact already exists", field)
	}

	l.Status = lead.StatusNew
	return s.repo.Create(ctx, l)
}

// verifyCaptcha blocks only on an explicit failure verdict. A
// submission without a token is not verified at all, and transport
// errors to the verification service let the submission through.
func (s *LeadService) verifyCaptcha(ctx context.Context, token, remoteIP string) error {
	if s.skipCaptcha || s.captcha == nil || token == "" {
		return nil
	}
	result, err := s.captcha.Verify(ctx, token, remoteIP)
	if err != nil {
		s.logger.Error("captcha verification unavailable: " + err.Error())
		return nil
	}
	if !result.Success {
		return common.NewValidationError("captcha verification failed", map[string]string{"captcha": "token rejected"})
	}
	s.logger.Info(fmt.Sprintf("captcha verified, score %.2f", result.Score))
	return nil
}

type ContactCheck struct {
	Exists bool       `json:"exists"`
	Field  string     `json:"field,omitempty"`
	Lead   *lead.Lead `json:"lead,omitempty"`
}

// CheckContact backs the public verify endpoint used by the intake form
// to warn about duplicates before submission.
func (s *LeadService) CheckContact(ctx context.Context, email, phone string) (*ContactCheck, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)
	if email == "" && phone == "" {
		return nil, common.NewError(common.CodeValidation, "email or phone is required", nil)
	}
	existing, field, err := s.repo.FindByContact(ctx, email, phone)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return &ContactCheck{Exists: false}, nil
	}
	return &ContactCheck{Exists: true, Field: field, Lead: existing}, nil
}

func (s *LeadService) Get(ctx context.Context, id common.UUID) (*lead.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LeadService) List(ctx context.Context, filter lead.Filter) ([]lead.Lead, error) {
	if filter.Status != "" && !lead.ValidStatus(filter.Status) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "unknown lead status"})
	}
	return s.repo.List(ctx, filter)
}

// Export returns every lead matching the filter, ignoring pagination.
func (s *LeadService) Export(ctx context.Context, filter lead.Filter) ([]lead.Lead, error) {
	filter.Page = 1
	filter.Limit = exportLimit
	return s.List(ctx, filter)
}

func (s *LeadService) UpdateStatus(ctx context.Context, id common.UUID, status lead.Status) (*lead.Lead, error) {
	if !lead.ValidStatus(status) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "unknown lead status"})
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *LeadService) Delete(ctx context.Context, id common.UUID) error {
	return s.repo.Delete(ctx, id)
}
