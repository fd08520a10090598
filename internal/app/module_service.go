package app

import (
	"context"
	"strings"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/module"
	"github.com/manoj8056887579/careerhq-sub001/internal/slug"
)

type ModuleService struct {
	repo       module.Repository
	categories module.CategoryRepository
	media      *MediaService
	logger     Logger
}

func NewModuleService(repo module.Repository, categories module.CategoryRepository, media *MediaService, logger Logger) *ModuleService {
	return &ModuleService{repo: repo, categories: categories, media: media, logger: logger}
}

func (s *ModuleService) Create(ctx context.Context, m module.Module) (*module.Module, error) {
	if err := validateModule(m); err != nil {
		return nil, err
	}
	if m.Slug == "" {
		m.Slug = slug.Make(m.Title)
	}
	return s.repo.Create(ctx, m)
}

// Update is partial on the media fields: an empty cover keeps the
// current one, gallery images are merged rather than replaced. A
// replaced cover is cleaned up from the object store.
func (s *ModuleService) Update(ctx context.Context, m module.Module) (*module.Module, error) {
	current, err := s.repo.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if err := validateModule(m); err != nil {
		return nil, err
	}

	var replacedCover string
	if m.CoverImage == "" {
		m.CoverImage = current.CoverImage
	} else if current.CoverImage != "" && m.CoverImage != current.CoverImage {
		replacedCover = current.CoverImage
	}
	m.GalleryImages = mergeGallery(current.GalleryImages, m.GalleryImages)
	if m.Slug == "" {
		m.Slug = slug.Make(m.Title)
	}

	updated, err := s.repo.Update(ctx, m)
	if err != nil {
		return nil, err
	}
	if replacedCover != "" {
		s.media.Cleanup(replacedCover)
	}
	return updated, nil
}

func (s *ModuleService) Get(ctx context.Context, id common.UUID) (*module.Module, error) {
	return s.repo.GetByID(ctx, id)
}

// Resolve looks the module up by slug first and falls back to id.
func (s *ModuleService) Resolve(ctx context.Context, ref string) (*module.Module, error) {
	if m, err := s.repo.GetBySlug(ctx, ref); err == nil {
		return m, nil
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	id, err := common.ParseUUID(ref)
	if err != nil {
		return nil, common.NewError(common.CodeNotFound, "module not found", nil)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ModuleService) List(ctx context.Context, filter module.Filter) ([]module.Module, error) {
	if filter.Type != "" && !module.ValidType(filter.Type) {
		return nil, common.NewValidationError("invalid module type", map[string]string{"module_type": "unknown module type"})
	}
	return s.repo.List(ctx, filter)
}

// Delete removes the row and then hands the cover plus every gallery
// image to the object store cleanup.
func (s *ModuleService) Delete(ctx context.Context, id common.UUID) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	refs := append([]string{current.CoverImage}, current.GalleryImages...)
	s.media.Cleanup(refs...)
	return nil
}

func (s *ModuleService) CreateCategory(ctx context.Context, c module.Category) (*module.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, common.NewError(common.CodeValidation, "name is required", nil)
	}
	if !module.ValidType(c.Type) {
		return nil, common.NewValidationError("invalid module type", map[string]string{"module_type": "unknown module type"})
	}
	return s.categories.Create(ctx, c)
}

func (s *ModuleService) ListCategories(ctx context.Context, moduleType module.Type) ([]module.Category, error) {
	if moduleType != "" && !module.ValidType(moduleType) {
		return nil, common.NewValidationError("invalid module type", map[string]string{"module_type": "unknown module type"})
	}
	return s.categories.List(ctx, moduleType)
}

func validateModule(m module.Module) error {
	fields := map[string]string{}
	if strings.TrimSpace(m.Title) == "" {
		fields["title"] = "title is required"
	}
	if !module.ValidType(m.Type) {
		fields["module_type"] = "unknown module type"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid module", fields)
	}
	return nil
}

func mergeGallery(current, incoming []string) []string {
	if len(incoming) == 0 {
		return current
	}
	seen := make(map[string]bool, len(current))
	merged := make([]string, 0, len(current)+len(incoming))
	for _, img := range current {
		if img != "" && !seen[img] {
			seen[img] = true
			merged = append(merged, img)
		}
	}
	for _, img := range incoming {
		if img != "" && !seen[img] {
			seen[img] = true
			merged = append(merged, img)
		}
	}
	return merged
}
