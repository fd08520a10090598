package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
)

type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Field   string            `json:"field,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// Error maps a coded error to its HTTP status. Internal causes are
// never echoed to the client.
func Error(w http.ResponseWriter, err error) {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		JSON(w, http.StatusInternalServerError, errorBody{Error: string(common.CodeInternal), Message: "internal server error"})
		return
	}

	body := errorBody{Error: string(appErr.Code), Message: appErr.Message, Field: appErr.Field, Fields: appErr.Fields}
	switch appErr.Code {
	case common.CodeValidation:
		JSON(w, http.StatusBadRequest, body)
	case common.CodeNotFound:
		JSON(w, http.StatusNotFound, body)
	case common.CodeConflict:
		JSON(w, http.StatusConflict, body)
	case common.CodeUnauthorized:
		JSON(w, http.StatusUnauthorized, body)
	case common.CodeForbidden:
		JSON(w, http.StatusForbidden, body)
	case common.CodeRateLimited:
		JSON(w, http.StatusTooManyRequests, body)
	default:
		body.Message = "internal server error"
		JSON(w, http.StatusInternalServerError, body)
	}
}
