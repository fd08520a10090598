package app

import (
	"context"
	"strings"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/company"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/module"
)

type CompanyService struct {
	repo   company.Repository
	media  *MediaService
	logger Logger
}

func NewCompanyService(repo company.Repository, media *MediaService, logger Logger) *CompanyService {
	return &CompanyService{repo: repo, media: media, logger: logger}
}

func (s *CompanyService) Create(ctx context.Context, c company.Company) (*company.Company, error) {
	if err := validateCompany(c); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

func (s *CompanyService) Update(ctx context.Context, c company.Company) (*company.Company, error) {
	current, err := s.repo.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if err := validateCompany(c); err != nil {
		return nil, err
	}
	var replacedLogo string
	if c.LogoImage == "" {
		c.LogoImage = current.LogoImage
	} else if current.LogoImage != "" && c.LogoImage != current.LogoImage {
		replacedLogo = current.LogoImage
	}
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if replacedLogo != "" {
		s.media.Cleanup(replacedLogo)
	}
	return updated, nil
}

func (s *CompanyService) Get(ctx context.Context, id common.UUID) (*company.Company, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context, moduleType string, page, limit int) ([]company.Company, error) {
	if moduleType != "" && !module.ValidType(module.Type(moduleType)) {
		return nil, common.NewValidationError("invalid module type", map[string]string{"module_type": "unknown module type"})
	}
	return s.repo.List(ctx, moduleType, page, limit)
}

func (s *CompanyService) Delete(ctx context.Context, id common.UUID) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if current.LogoImage != "" {
		s.media.Cleanup(current.LogoImage)
	}
	return nil
}

func validateCompany(c company.Company) error {
	fields := map[string]string{}
	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = "name is required"
	}
	if c.ModuleType != "" && !module.ValidType(module.Type(c.ModuleType)) {
		fields["module_type"] = "unknown module type"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid company", fields)
	}
	return nil
}
