package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

func decodeJSON(r *http.Request, v interface{}) error {
	defer io.Copy(io.Discard, r.Body)
	// Unknown fields are ignored so older admin panels keep working.
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return common.NewError(common.CodeValidation, "request body is required", nil)
		}
		return common.NewError(common.CodeValidation, "invalid JSON body", err)
	}
	return nil
}

func idParam(r *http.Request) (common.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := common.ParseUUID(raw)
	if err != nil {
		return "", common.NewError(common.CodeValidation, "invalid id", err)
	}
	return id, nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

// queryBool reads an optional boolean filter; absent means no filter.
func queryBool(r *http.Request, key string) *bool {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

// refParam is the slug-or-id segment on public detail routes. It shares
// the {id} placeholder with the admin routes so both can live on the
// same path prefix.
func refParam(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// listPayload keeps empty collections rendering as [] instead of null.
func listPayload[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}
