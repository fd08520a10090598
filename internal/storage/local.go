package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ResumeStore writes uploaded resumes to a local public directory and
// persists only the relative path.
type ResumeStore struct {
	dir string
}

func NewResumeStore(dir string) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResumeStore{dir: dir}, nil
}

// Save writes data under a collision-resistant filename derived from the
// sanitized original name, a millisecond timestamp and a random suffix.
func (s *ResumeStore) Save(originalName string, data io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	base = unsafeChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		base = "resume"
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%d_%s%s", base, time.Now().UnixMilli(), hex.EncodeToString(suffix), ext)

	file, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer file.Close()
	if _, err := io.Copy(file, data); err != nil {
		return "", err
	}
	return name, nil
}

func (s *ResumeStore) Open(name string) (io.ReadCloser, error) {
	cleaned, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.Open(cleaned)
}

func (s *ResumeStore) Remove(name string) error {
	cleaned, err := s.resolve(name)
	if err != nil {
		return err
	}
	return os.Remove(cleaned)
}

// resolve rejects any name that would escape the resume directory.
func (s *ResumeStore) resolve(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) {
		return "", fmt.Errorf("invalid resume path %q", name)
	}
	return filepath.Join(s.dir, cleaned), nil
}

var mimeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".rtf":  "application/rtf",
	".odt":  "application/vnd.oasis.opendocument.text",
}

// MIMEType maps a resume filename to a content type for download.
func MIMEType(name string) string {
	if mime, ok := mimeByExtension[strings.ToLower(filepath.Ext(name))]; ok {
		return mime
	}
	return "application/octet-stream"
}
