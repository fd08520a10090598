package handlers

import (
	"net/http"

	"github.com/manoj8056887579/careerhq-sub001/internal/app"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/company"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/response"
)

type CompanyHandler struct {
	companies *app.CompanyService
}

func NewCompanyHandler(companies *app.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

type companyRequest struct {
	Name       string `json:"name"`
	LogoImage  string `json:"logo_image"`
	ModuleType string `json:"module_type"`
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.companies.Create(r.Context(), company.Company{
		Name:       req.Name,
		LogoImage:  req.LogoImage,
		ModuleType: req.ModuleType,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.companies.Update(r.Context(), company.Company{
		ID:         id,
		Name:       req.Name,
		LogoImage:  req.LogoImage,
		ModuleType: req.ModuleType,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	c, err := h.companies.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, c)
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.companies.List(r.Context(),
		r.URL.Query().Get("module_type"),
		queryInt(r, "page", 1),
		queryInt(r, "limit", 20))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, listPayload(items))
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.companies.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Message: "company deleted"})
}
