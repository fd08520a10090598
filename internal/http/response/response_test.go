package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{common.NewError(common.CodeValidation, "bad", nil), 400},
		{common.NewError(common.CodeNotFound, "missing", nil), 404},
		{common.NewConflictError("dup", "email"), 409},
		{common.NewError(common.CodeUnauthorized, "nope", nil), 401},
		{common.NewError(common.CodeForbidden, "nope", nil), 403},
		{common.NewError(common.CodeRateLimited, "slow down", nil), 429},
		{common.NewError(common.CodeInternal, "boom", errors.New("cause")), 500},
		{errors.New("plain error"), 500},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		Error(rec, tc.err)
		if rec.Code != tc.status {
			t.Fatalf("expected status %d for %v, got %d", tc.status, tc.err, rec.Code)
		}
	}
}

func TestErrorHidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, common.NewError(common.CodeInternal, "db exploded", errors.New("secret dsn")))

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON body, got %v", err)
	}
	if body["message"] != "internal server error" {
		t.Fatalf("expected generic message, got %q", body["message"])
	}
}

func TestConflictCarriesField(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, common.NewConflictError("a lead with this contact already exists", "phone"))

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON body, got %v", err)
	}
	if body["field"] != "phone" {
		t.Fatalf("expected field phone, got %v", body["field"])
	}
}
