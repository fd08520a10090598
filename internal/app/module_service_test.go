package app

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/module"
)

func newModuleService(t *testing.T) (*ModuleService, *fakeModuleRepo, *fakeObjectStore) {
	t.Helper()
	repo := newFakeModuleRepo()
	store := newFakeObjectStore()
	media := NewMediaService(store, "https://cdn.careerhq.in", nopLogger{})
	service := NewModuleService(repo, &fakeCategoryRepo{}, media, nopLogger{})
	return service, repo, store
}

func TestModuleCreateValidatesType(t *testing.T) {
	service, _, _ := newModuleService(t)
	_, err := service.Create(context.Background(), module.Module{Title: "IELTS Prep", Type: "bogus"})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestModuleCreateDerivesSlug(t *testing.T) {
	service, _, _ := newModuleService(t)
	created, err := service.Create(context.Background(), module.Module{Title: "Study in Canada", Type: module.TypeStudyAbroad})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Slug != "study-in-canada" {
		t.Fatalf("expected derived slug, got %q", created.Slug)
	}
}

func TestModuleDeleteCleansUpMedia(t *testing.T) {
	service, _, store := newModuleService(t)
	created, err := service.Create(context.Background(), module.Module{
		Title:         "Study in Canada",
		Type:          module.TypeStudyAbroad,
		CoverImage:    "study-abroad/cover.jpg",
		GalleryImages: []string{"study-abroad/g1.jpg", "study-abroad/g2.jpg"},
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := service.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	deleted := store.waitDeleted(3, 2*time.Second)
	sort.Strings(deleted)
	want := []string{"study-abroad/cover.jpg", "study-abroad/g1.jpg", "study-abroad/g2.jpg"}
	if len(deleted) != len(want) {
		t.Fatalf("expected %d deletes, got %v", len(want), deleted)
	}
	for i, key := range want {
		if deleted[i] != key {
			t.Fatalf("expected delete of %q, got %v", key, deleted)
		}
	}
}

func TestModuleUpdateMergesGalleryAndReplacesCover(t *testing.T) {
	service, _, store := newModuleService(t)
	created, err := service.Create(context.Background(), module.Module{
		Title:         "Study in Canada",
		Type:          module.TypeStudyAbroad,
		CoverImage:    "study-abroad/old-cover.jpg",
		GalleryImages: []string{"study-abroad/g1.jpg"},
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	updated, err := service.Update(context.Background(), module.Module{
		ID:            created.ID,
		Title:         "Study in Canada",
		Type:          module.TypeStudyAbroad,
		CoverImage:    "study-abroad/new-cover.jpg",
		GalleryImages: []string{"study-abroad/g2.jpg"},
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.CoverImage != "study-abroad/new-cover.jpg" {
		t.Fatalf("expected replaced cover, got %q", updated.CoverImage)
	}
	if len(updated.GalleryImages) != 2 {
		t.Fatalf("expected merged gallery, got %v", updated.GalleryImages)
	}

	deleted := store.waitDeleted(1, 2*time.Second)
	if len(deleted) != 1 || deleted[0] != "study-abroad/old-cover.jpg" {
		t.Fatalf("expected old cover cleanup, got %v", deleted)
	}
}

func TestModuleUpdateKeepsCoverWhenOmitted(t *testing.T) {
	service, _, _ := newModuleService(t)
	created, err := service.Create(context.Background(), module.Module{
		Title:      "Study in Canada",
		Type:       module.TypeStudyAbroad,
		CoverImage: "study-abroad/cover.jpg",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	updated, err := service.Update(context.Background(), module.Module{
		ID:    created.ID,
		Title: "Study in Canada",
		Type:  module.TypeStudyAbroad,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.CoverImage != "study-abroad/cover.jpg" {
		t.Fatalf("expected cover kept, got %q", updated.CoverImage)
	}
}

func TestModuleResolveFallsBackToID(t *testing.T) {
	service, _, _ := newModuleService(t)
	created, err := service.Create(context.Background(), module.Module{Title: "Study in Canada", Type: module.TypeStudyAbroad})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	bySlug, err := service.Resolve(context.Background(), "study-in-canada")
	if err != nil {
		t.Fatalf("expected slug lookup, got %v", err)
	}
	if bySlug.ID != created.ID {
		t.Fatal("slug lookup returned wrong module")
	}

	byID, err := service.Resolve(context.Background(), created.ID.String())
	if err != nil {
		t.Fatalf("expected id fallback, got %v", err)
	}
	if byID.ID != created.ID {
		t.Fatal("id lookup returned wrong module")
	}

	if _, err := service.Resolve(context.Background(), "no-such-ref"); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
