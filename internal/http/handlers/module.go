package handlers

import (
	"net/http"

	"github.com/manoj8056887579/careerhq-sub001/internal/app"
	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/module"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/response"
)

type ModuleHandler struct {
	modules *app.ModuleService
}

func NewModuleHandler(modules *app.ModuleService) *ModuleHandler {
	return &ModuleHandler{modules: modules}
}

type moduleRequest struct {
	Type            string               `json:"module_type"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	LongDescription string               `json:"long_description"`
	Category        string               `json:"category"`
	CustomFields    []module.CustomField `json:"custom_fields"`
	Highlights      []string             `json:"highlights"`
	CoverImage      string               `json:"cover_image"`
	GalleryImages   []string             `json:"gallery_images"`
	Published       bool                 `json:"published"`
	Slug            string               `json:"slug"`
}

func (r moduleRequest) toDomain() module.Module {
	return module.Module{
		Type:            module.Type(r.Type),
		Title:           r.Title,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		Category:        r.Category,
		CustomFields:    r.CustomFields,
		Highlights:      r.Highlights,
		CoverImage:      r.CoverImage,
		GalleryImages:   r.GalleryImages,
		Published:       r.Published,
		Slug:            r.Slug,
	}
}

func (h *ModuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req moduleRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.modules.Create(r.Context(), req.toDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ModuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req moduleRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	m := req.toDomain()
	m.ID = id
	updated, err := h.modules.Update(r.Context(), m)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

// Get resolves by slug first, then id, and hides unpublished modules
// from the public route.
func (h *ModuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.modules.Resolve(r.Context(), refParam(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	if !m.Published {
		response.Error(w, common.NewError(common.CodeNotFound, "module not found", nil))
		return
	}
	response.JSON(w, http.StatusOK, m)
}

func (h *ModuleHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	m, err := h.modules.Resolve(r.Context(), refParam(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, m)
}

func (h *ModuleHandler) List(w http.ResponseWriter, r *http.Request) {
	published := true
	items, err := h.modules.List(r.Context(), module.Filter{
		Type:          module.Type(r.URL.Query().Get("module_type")),
		Category:      r.URL.Query().Get("category"),
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

func (h *ModuleHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	items, err := h.modules.List(r.Context(), module.Filter{
		Type:          module.Type(r.URL.Query().Get("module_type")),
		Category:      r.URL.Query().Get("category"),
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

func (h *ModuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.modules.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Message: "module deleted"})
}

type categoryRequest struct {
	Name string `json:"name"`
	Type string `json:"module_type"`
}

func (h *ModuleHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.modules.CreateCategory(r.Context(), module.Category{
		Name: req.Name,
		Type: module.Type(req.Type),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ModuleHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.modules.ListCategories(r.Context(), module.Type(r.URL.Query().Get("module_type")))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, listPayload(items))
}
