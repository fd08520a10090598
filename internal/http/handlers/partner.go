package handlers

import (
	"net/http"

	"github.com/manoj8056887579/careerhq-sub001/internal/app"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/partner"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/middleware"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/response"
)

type PartnerHandler struct {
	partners *app.PartnerService
}

func NewPartnerHandler(partners *app.PartnerService) *PartnerHandler {
	return &PartnerHandler{partners: partners}
}

type partnerRequest struct {
	Organization    string `json:"organization"`
	ContactName     string `json:"contact_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PartnershipType string `json:"partnership_type"`
	Website         string `json:"website"`
	Message         string `json:"message"`
	CaptchaToken    string `json:"captcha_token"`
}

func (h *PartnerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req partnerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.partners.Submit(r.Context(), partner.Application{
		Organization:    req.Organization,
		ContactName:     req.ContactName,
		Email:           req.Email,
		Phone:           req.Phone,
		PartnershipType: req.PartnershipType,
		Website:         req.Website,
		Message:         req.Message,
	}, req.CaptchaToken, middleware.ClientIP(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	a, err := h.partners.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, a)
}

func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.partners.List(r.Context(), partner.Filter{
		Status: partner.Status(r.URL.Query().Get("status")),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, listPayload(items))
}

func (h *PartnerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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
	updated, err := h.partners.UpdateStatus(r.Context(), id, partner.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *PartnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.partners.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Message: "partner application deleted"})
}
