package handlers

import (
	"net/http"

	"github.com/manoj8056887579/careerhq-sub001/internal/app"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/video"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/response"
)

type VideoHandler struct {
	videos *app.VideoService
}

func NewVideoHandler(videos *app.VideoService) *VideoHandler {
	return &VideoHandler{videos: videos}
}

type videoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	SourceURL    string `json:"source_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Published    bool   `json:"published"`
}

func (r videoRequest) toDomain() video.Video {
	return video.Video{
		Title:        r.Title,
		Description:  r.Description,
		SourceURL:    r.SourceURL,
		ThumbnailURL: r.ThumbnailURL,
		Published:    r.Published,
	}
}

func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.videos.Create(r.Context(), req.toDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req videoRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	v := req.toDomain()
	v.ID = id
	updated, err := h.videos.Update(r.Context(), v)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	v, err := h.videos.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, v)
}

func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	published := true
	items, err := h.videos.List(r.Context(), &published, queryInt(r, "page", 1), queryInt(r, "limit", 20))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, listPayload(items))
}

func (h *VideoHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	items, err := h.videos.List(r.Context(), queryBool(r, "published"), queryInt(r, "page", 1), queryInt(r, "limit", 20))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, listPayload(items))
}

func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.videos.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Message: "video deleted"})
}
