package app

import (
	"context"
	"errors"
	"testing"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/lead"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/partner"
	"github.com/manoj8056887579/careerhq-sub001/internal/integration/captcha"
)

func TestPartnerSubmitDefaultsToPending(t *testing.T) {
	service := NewPartnerService(newFakePartnerRepo(), nil, true, nopLogger{})
	created, err := service.Submit(context.Background(), partner.Application{
		Organization: "Acme College",
		ContactName:  "Ravi",
		Email:        "Ravi@Acme.edu",
	}, "", "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Status != partner.StatusPending {
		t.Fatalf("expected pending, got %q", created.Status)
	}
	if created.Email != "ravi@acme.edu" {
		t.Fatalf("expected lowercased email, got %q", created.Email)
	}
}

func TestPartnerSubmitDuplicateIsIndependentOfLeads(t *testing.T) {
	leads := NewLeadService(newFakeLeadRepo(), nil, true, nopLogger{})
	partners := NewPartnerService(newFakePartnerRepo(), nil, true, nopLogger{})

	if _, err := leads.Submit(context.Background(), leadFixture("shared@example.com"), "", ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	// Same contact is fine across collections.
	if _, err := partners.Submit(context.Background(), partnerFixture("shared@example.com"), "", ""); err != nil {
		t.Fatalf("expected cross-collection submit, got %v", err)
	}

	_, err := partners.Submit(context.Background(), partnerFixture("SHARED@example.com"), "", "")
	var appErr *common.Error
	if !errors.As(err, &appErr) || appErr.Code != common.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if appErr.Field != "email" {
		t.Fatalf("expected field email, got %q", appErr.Field)
	}
}

func TestPartnerSubmitWithoutTokenSkipsCaptcha(t *testing.T) {
	verifier := &fakeCaptcha{result: captcha.Result{Success: false}}
	service := NewPartnerService(newFakePartnerRepo(), verifier, false, nopLogger{})

	if _, err := service.Submit(context.Background(), partnerFixture("ravi@acme.edu"), "", ""); err != nil {
		t.Fatalf("expected token-less submission to pass, got %v", err)
	}
	if verifier.calls != 0 {
		t.Fatalf("expected no verification calls, got %d", verifier.calls)
	}
}

func leadFixture(email string) lead.Lead {
	return lead.Lead{Name: "Shared Contact", Email: email}
}

func partnerFixture(email string) partner.Application {
	return partner.Application{Organization: "Acme College", ContactName: "Ravi", Email: email}
}

func TestPartnerUpdateStatus(t *testing.T) {
	service := NewPartnerService(newFakePartnerRepo(), nil, true, nopLogger{})
	created, err := service.Submit(context.Background(), partnerFixture("ravi@acme.edu"), "", "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if _, err := service.UpdateStatus(context.Background(), created.ID, "escalated"); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	updated, err := service.UpdateStatus(context.Background(), created.ID, partner.StatusUnderReview)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Status != partner.StatusUnderReview {
		t.Fatalf("expected under-review, got %q", updated.Status)
	}
}
