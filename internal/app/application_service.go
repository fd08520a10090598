package app

import (
	"context"
	"io"
	"strings"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/application"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/job"
	"github.com/manoj8056887579/careerhq-sub001/internal/storage"
)

type ApplicationService struct {
	repo    application.Repository
	jobs    job.Repository
	resumes *storage.ResumeStore
	logger  Logger
}

func NewApplicationService(repo application.Repository, jobs job.Repository, resumes *storage.ResumeStore, logger Logger) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, resumes: resumes, logger: logger}
}

// Submit files an application against a published job. The job title is
// denormalized onto the application so it survives job deletion.
func (s *ApplicationService) Submit(ctx context.Context, a application.Application, resumeName string, resume io.Reader) (*application.Application, error) {
	fields := map[string]string{}
	if strings.TrimSpace(a.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(a.Email) == "" {
		fields["email"] = "email is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid application", fields)
	}

	posting, err := s.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return nil, err
	}
	if !posting.Published {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.JobTitle = posting.Title
	a.Status = application.StatusPending

	if resume != nil {
		path, err := s.resumes.Save(resumeName, resume)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to store resume", err)
		}
		a.ResumePath = path
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		if a.ResumePath != "" {
			if removeErr := s.resumes.Remove(a.ResumePath); removeErr != nil {
				s.logger.Error("failed to remove orphaned resume " + a.ResumePath + ": " + removeErr.Error())
			}
		}
		return nil, err
	}
	return created, nil
}

func (s *ApplicationService) Get(ctx context.Context, id common.UUID) (*application.Application, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ApplicationService) List(ctx context.Context, filter application.Filter) ([]application.Application, error) {
	if filter.Status != "" && !application.ValidStatus(filter.Status) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "unknown application status"})
	}
	return s.repo.List(ctx, filter)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	if !application.ValidStatus(status) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "unknown application status"})
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Delete removes the row and then the resume file. A failed file
// removal is logged, not surfaced.
func (s *ApplicationService) Delete(ctx context.Context, id common.UUID) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if current.ResumePath != "" {
		if err := s.resumes.Remove(current.ResumePath); err != nil {
			s.logger.Error("failed to remove resume " + current.ResumePath + ": " + err.Error())
		}
	}
	return nil
}

type ResumeDownload struct {
	Content     io.ReadCloser
	Filename    string
	ContentType string
}

func (s *ApplicationService) OpenResume(ctx context.Context, id common.UUID) (*ResumeDownload, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.ResumePath == "" {
		return nil, common.NewError(common.CodeNotFound, "application has no resume", nil)
	}
	content, err := s.resumes.Open(a.ResumePath)
	if err != nil {
		return nil, common.NewError(common.CodeNotFound, "resume file not found", err)
	}
	return &ResumeDownload{
		Content:     content,
		Filename:    a.ResumePath,
		ContentType: storage.MIMEType(a.ResumePath),
	}, nil
}
