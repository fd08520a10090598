package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/manoj8056887579/careerhq-sub001/internal/app"
	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/application"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/response"
)

const maxResumeBytes = 10 << 20

type ApplicationHandler struct {
	applications *app.ApplicationService
}

func NewApplicationHandler(applications *app.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// Submit accepts multipart form data: the application fields plus an
// optional resume file part.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "multipart form data is required", err))
		return
	}
	jobID, err := common.ParseUUID(r.FormValue("job_id"))
	if err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid job_id", err))
		return
	}

	var resume io.Reader
	var resumeName string
	file, header, err := r.FormFile("resume")
	if err == nil {
		defer file.Close()
		if header.Size > maxResumeBytes {
			response.Error(w, common.NewError(common.CodeValidation, "resume exceeds 10 MB limit", nil))
			return
		}
		resume = file
		resumeName = header.Filename
	} else if err != http.ErrMissingFile {
		response.Error(w, common.NewError(common.CodeValidation, "invalid resume upload", err))
		return
	}

	created, err := h.applications.Submit(r.Context(), application.Application{
		JobID:       jobID,
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		CoverLetter: r.FormValue("cover_letter"),
	}, resumeName, resume)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	a, err := h.applications.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, a)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := application.Filter{
		Status: application.Status(r.URL.Query().Get("status")),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}
	if raw := r.URL.Query().Get("job_id"); raw != "" {
		jobID, err := common.ParseUUID(raw)
		if err != nil {
			response.Error(w, common.NewError(common.CodeValidation, "invalid job_id", err))
			return
		}
		filter.JobID = jobID
	}
	items, err := h.applications.List(r.Context(), filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, listPayload(items))
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), id, application.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.applications.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Message: "application deleted"})
}

// DownloadResume streams the stored resume as an attachment.
func (h *ApplicationHandler) DownloadResume(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	download, err := h.applications.OpenResume(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	defer download.Content.Close()

	w.Header().Set("Content-Type", download.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	if _, err := io.Copy(w, download.Content); err != nil {
		// Headers are already out; nothing useful to send.
		return
	}
}
