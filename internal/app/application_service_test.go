package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/application"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/job"
	"github.com/manoj8056887579/careerhq-sub001/internal/storage"
)

func newApplicationService(t *testing.T) (*ApplicationService, *fakeApplicationRepo, *fakeJobRepo, string) {
	t.Helper()
	dir := t.TempDir()
	resumes, err := storage.NewResumeStore(dir)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	apps := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	return NewApplicationService(apps, jobs, resumes, nopLogger{}), apps, jobs, dir
}

func publishedJob(t *testing.T, jobs *fakeJobRepo) *job.Job {
	t.Helper()
	j, err := jobs.Create(context.Background(), job.Job{Title: "Senior Counsellor", Slug: "senior-counsellor", Published: true})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return j
}

func TestApplicationSubmitDenormalizesJobTitle(t *testing.T) {
	service, _, jobs, dir := newApplicationService(t)
	j := publishedJob(t, jobs)

	created, err := service.Submit(context.Background(), application.Application{
		JobID: j.ID,
		Name:  "Asha Rao",
		Email: "Asha@Example.com",
	}, "cv.pdf", strings.NewReader("resume body"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.JobTitle != "Senior Counsellor" {
		t.Fatalf("expected denormalized title, got %q", created.JobTitle)
	}
	if created.Email != "asha@example.com" {
		t.Fatalf("expected lowercased email, got %q", created.Email)
	}
	if created.Status != application.StatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.ResumePath == "" {
		t.Fatal("expected stored resume path")
	}
	if _, err := os.Stat(filepath.Join(dir, created.ResumePath)); err != nil {
		t.Fatalf("expected resume file on disk, got %v", err)
	}
}

func TestApplicationSubmitUnpublishedJobIsNotFound(t *testing.T) {
	service, _, jobs, _ := newApplicationService(t)
	j, err := jobs.Create(context.Background(), job.Job{Title: "Hidden Role", Slug: "hidden-role"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, err = service.Submit(context.Background(), application.Application{JobID: j.ID, Name: "Asha", Email: "a@b.c"}, "", nil)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApplicationSubmitRemovesResumeOnCreateFailure(t *testing.T) {
	service, apps, jobs, dir := newApplicationService(t)
	j := publishedJob(t, jobs)
	apps.createErr = common.NewError(common.CodeInternal, "boom", nil)

	_, err := service.Submit(context.Background(), application.Application{
		JobID: j.ID,
		Name:  "Asha",
		Email: "a@b.c",
	}, "cv.pdf", strings.NewReader("resume body"))
	if err == nil {
		t.Fatal("expected create failure to surface")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("expected readable dir, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected orphaned resume removed, found %d files", len(entries))
	}
}

func TestApplicationDeleteRemovesResume(t *testing.T) {
	service, _, jobs, dir := newApplicationService(t)
	j := publishedJob(t, jobs)

	created, err := service.Submit(context.Background(), application.Application{
		JobID: j.ID,
		Name:  "Asha",
		Email: "a@b.c",
	}, "cv.pdf", strings.NewReader("resume body"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := service.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, created.ResumePath)); !os.IsNotExist(err) {
		t.Fatalf("expected resume removed, got %v", err)
	}
}

func TestApplicationOpenResume(t *testing.T) {
	service, _, jobs, _ := newApplicationService(t)
	j := publishedJob(t, jobs)

	created, err := service.Submit(context.Background(), application.Application{
		JobID: j.ID,
		Name:  "Asha",
		Email: "a@b.c",
	}, "cv.pdf", strings.NewReader("resume body"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	download, err := service.OpenResume(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer download.Content.Close()
	if download.ContentType != "application/pdf" {
		t.Fatalf("expected pdf content type, got %q", download.ContentType)
	}
	if download.Filename != created.ResumePath {
		t.Fatalf("expected filename %q, got %q", created.ResumePath, download.Filename)
	}
}

func TestApplicationUpdateStatusValidates(t *testing.T) {
	service, _, jobs, _ := newApplicationService(t)
	j := publishedJob(t, jobs)
	created, err := service.Submit(context.Background(), application.Application{JobID: j.ID, Name: "Asha", Email: "a@b.c"}, "", nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if _, err := service.UpdateStatus(context.Background(), created.ID, "archived"); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	updated, err := service.UpdateStatus(context.Background(), created.ID, application.StatusShortlisted)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Status != application.StatusShortlisted {
		t.Fatalf("expected shortlisted, got %q", updated.Status)
	}
}
