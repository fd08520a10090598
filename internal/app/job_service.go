package app

import (
	"context"
	"strings"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/job"
	"github.com/manoj8056887579/careerhq-sub001/internal/slug"
)

type JobService struct {
	repo   job.Repository
	logger Logger
}

func NewJobService(repo job.Repository, logger Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

func (s *JobService) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	if err := validateJob(j); err != nil {
		return nil, err
	}
	derived, err := s.deriveSlug(ctx, j.Title, "")
	if err != nil {
		return nil, err
	}
	j.Slug = derived
	return s.repo.Create(ctx, j)
}

// Update regenerates the slug from the title when the payload leaves it
// empty, so a PUT without a slug never wipes the existing one.
func (s *JobService) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	if _, err := s.repo.GetByID(ctx, j.ID); err != nil {
		return nil, err
	}
	if err := validateJob(j); err != nil {
		return nil, err
	}
	if j.Slug == "" {
		derived, err := s.deriveSlug(ctx, j.Title, j.ID)
		if err != nil {
			return nil, err
		}
		j.Slug = derived
	}
	return s.repo.Update(ctx, j)
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	return s.repo.GetByID(ctx, id)
}

// Resolve looks the job up by slug first and falls back to id.
func (s *JobService) Resolve(ctx context.Context, ref string) (*job.Job, error) {
	if j, err := s.repo.GetBySlug(ctx, ref); err == nil {
		return j, nil
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	id, err := common.ParseUUID(ref)
	if err != nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *JobService) List(ctx context.Context, filter job.Filter) ([]job.Job, error) {
	return s.repo.List(ctx, filter)
}

func (s *JobService) Delete(ctx context.Context, id common.UUID) error {
	return s.repo.Delete(ctx, id)
}

// deriveSlug builds a slug from the title and appends a timestamp
// suffix when the plain form is already taken by another job.
func (s *JobService) deriveSlug(ctx context.Context, title string, excludeID common.UUID) (string, error) {
	base := slug.Make(title)
	if base == "" {
		return "", common.NewError(common.CodeValidation, "title does not yield a valid slug", nil)
	}
	taken, err := s.repo.SlugExists(ctx, base, excludeID)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return slug.Disambiguate(base), nil
}

func validateJob(j job.Job) error {
	fields := map[string]string{}
	if strings.TrimSpace(j.Title) == "" {
		fields["title"] = "title is required"
	}
	if j.EmploymentType != "" && !job.ValidEmploymentType(j.EmploymentType) {
		fields["employment_type"] = "employment type must be full-time, part-time, contract, or internship"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job", fields)
	}
	return nil
}
