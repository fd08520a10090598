package handlers

import (
	"net/http"

	"github.com/manoj8056887579/careerhq-sub001/internal/app"
	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/job"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Department       string   `json:"department"`
	Location         string   `json:"location"`
	EmploymentType   string   `json:"employment_type"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Benefits         []string `json:"benefits"`
	Published        bool     `json:"published"`
}

func (r jobRequest) toDomain() job.Job {
	return job.Job{
		Title:            r.Title,
		Slug:             r.Slug,
		Department:       r.Department,
		Location:         r.Location,
		EmploymentType:   job.EmploymentType(r.EmploymentType),
		Description:      r.Description,
		Responsibilities: r.Responsibilities,
		Requirements:     r.Requirements,
		Benefits:         r.Benefits,
		Published:        r.Published,
	}
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), req.toDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	j := req.toDomain()
	j.ID = id
	updated, err := h.jobs.Update(r.Context(), j)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	j, err := h.jobs.Resolve(r.Context(), refParam(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	if !j.Published {
		response.Error(w, common.NewError(common.CodeNotFound, "job not found", nil))
		return
	}
	response.JSON(w, http.StatusOK, j)
}

func (h *JobHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	j, err := h.jobs.Resolve(r.Context(), refParam(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, j)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	published := true
	items, err := h.jobs.List(r.Context(), job.Filter{
		Department:    r.URL.Query().Get("department"),
		Location:      r.URL.Query().Get("location"),
		TitleContains: r.URL.Query().Get("title"),
		Published:     &published,
		Page:          queryInt(r, "page", 1),
		Limit:         queryInt(r, "limit", 20),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, listPayload(items))
}

func (h *JobHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.List(r.Context(), job.Filter{
		Department:    r.URL.Query().Get("department"),
		Location:      r.URL.Query().Get("location"),
		TitleContains: r.URL.Query().Get("title"),
		Published:     queryBool(r, "published"),
		Page:          queryInt(r, "page", 1),
		Limit:         queryInt(r, "limit", 20),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, listPayload(items))
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Message: "job deleted"})
}
