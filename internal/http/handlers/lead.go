package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/app"
	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/lead"
	"github.com/manoj8056887579/careerhq-sub001/internal/export"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/middleware"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/response"
)

type LeadHandler struct {
	leads *app.LeadService
}

func NewLeadHandler(leads *app.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

type leadRequest struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Program      string        `json:"program"`
	StudyLevel   string        `json:"study_level"`
	Country      string        `json:"country"`
	Message      string        `json:"message"`
	CareerTest   []lead.Answer `json:"career_test"`
	Consent      bool          `json:"consent"`
	CaptchaToken string        `json:"captcha_token"`
}

func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.leads.Submit(r.Context(), lead.Lead{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Program:    req.Program,
		StudyLevel: req.StudyLevel,
		Country:    req.Country,
		Message:    req.Message,
		CareerTest: req.CareerTest,
		Consent:    req.Consent,
	}, req.CaptchaToken, middleware.ClientIP(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// Verify lets the intake form check for an existing lead before
// submitting.
func (h *LeadHandler) Verify(w http.ResponseWriter, r *http.Request) {
	check, err := h.leads.CheckContact(r.Context(), r.URL.Query().Get("email"), r.URL.Query().Get("phone"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, check)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	l, err := h.leads.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, l)
}

func leadFilterFromQuery(r *http.Request) lead.Filter {
	return lead.Filter{
		Status:       lead.Status(r.URL.Query().Get("status")),
		Program:      r.URL.Query().Get("program"),
		NameContains: r.URL.Query().Get("name"),
		Page:         queryInt(r, "page", 1),
		Limit:        queryInt(r, "limit", 20),
	}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.leads.List(r.Context(), leadFilterFromQuery(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, listPayload(items))
}

func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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
	updated, err := h.leads.UpdateStatus(r.Context(), id, lead.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.leads.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Message: "lead deleted"})
}

// Export streams an xlsx workbook of leads matching the list filters.
func (h *LeadHandler) Export(w http.ResponseWriter, r *http.Request) {
	items, err := h.leads.Export(r.Context(), leadFilterFromQuery(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	filename := fmt.Sprintf("leads_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteLeads(w, items); err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "failed to write export", err))
		return
	}
}
