package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/storage"
)

const maxImageBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// MediaService uploads images to the delegated object store and cleans
// up keys that are no longer referenced.
type MediaService struct {
	store      storage.ObjectStore
	publicBase string
	logger     Logger
}

func NewMediaService(store storage.ObjectStore, publicBase string, logger Logger) *MediaService {
	return &MediaService{
		store:      store,
		publicBase: strings.TrimRight(publicBase, "/"),
		logger:     logger,
	}
}

type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadImage stores one image under the given folder and returns the
// object key plus a public URL.
func (s *MediaService) UploadImage(ctx context.Context, folder, contentType string, size int64, data io.Reader) (*UploadResult, error) {
	if s.store == nil {
		return nil, common.NewError(common.CodeInternal, "object store not configured", nil)
	}
	if size > maxImageBytes {
		return nil, common.NewError(common.CodeValidation, "image exceeds 5 MB limit", nil)
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, common.NewValidationError("unsupported image type", map[string]string{"file": "only jpeg, png, webp and gif are accepted"})
	}

	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to generate object key", err)
	}
	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "uploads"
	}
	key := fmt.Sprintf("%s/%d_%s%s", folder, time.Now().UnixMilli(), hex.EncodeToString(suffix), ext)

	if err := s.store.Upload(ctx, key, io.LimitReader(data, maxImageBytes), contentType); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upload image", err)
	}
	return &UploadResult{Key: key, URL: s.PublicURL(key)}, nil
}

func (s *MediaService) PublicURL(key string) string {
	if s.publicBase == "" {
		return key
	}
	return s.publicBase + "/" + strings.TrimLeft(key, "/")
}

// Cleanup deletes the given object references in the background.
// Failures are logged, never surfaced; orphaned objects are acceptable,
// blocked deletes are not.
func (s *MediaService) Cleanup(refs ...string) {
	if s.store == nil {
		return
	}
	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		if key := objectKey(ref); key != "" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		for _, key := range keys {
			if err := s.store.Delete(ctx, key); err != nil {
				s.logger.Error("failed to delete object " + key + ": " + err.Error())
			}
		}
	}()
}

// objectKey accepts either a bare key or a full URL and returns the key.
func objectKey(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.Contains(ref, "://") {
		parsed, err := url.Parse(ref)
		if err != nil {
			return ""
		}
		return strings.TrimLeft(path.Clean(parsed.Path), "/")
	}
	return strings.TrimLeft(ref, "/")
}
