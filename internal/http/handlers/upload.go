package handlers

import (
	"net/http"

	"github.com/manoj8056887579/careerhq-sub001/internal/app"
	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/domain/module"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/response"
)

const maxUploadBytes = 5 << 20

type UploadHandler struct {
	media *app.MediaService
}

func NewUploadHandler(media *app.MediaService) *UploadHandler {
	return &UploadHandler{media: media}
}

// Upload accepts one multipart image part named "file". The object key
// prefix is derived from the module_type field; clients cannot choose
// an arbitrary folder.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "multipart form data is required", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "file part is required", err))
		return
	}
	defer file.Close()

	var folder string
	if mt := module.Type(r.FormValue("module_type")); module.ValidType(mt) {
		folder = string(mt)
	}
	result, err := h.media.UploadImage(r.Context(),
		folder,
		header.Header.Get("Content-Type"),
		header.Size,
		file)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, result)
}
