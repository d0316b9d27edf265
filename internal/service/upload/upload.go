package upload

import (
	"EasyToLearn/internal/app_errors"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

// Files are never written anywhere: an upload is encoded in place as a data
// URL and stored inside its record.

const DefaultMaxBytes = 8 << 20

var noteExtensions = map[string]struct{}{
	".pdf": {}, ".ppt": {}, ".pptx": {}, ".doc": {}, ".docx": {}, ".txt": {},
}

type Service struct {
	maxBytes int64
}

func NewService(maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Service{maxBytes: maxBytes}
}

// EncodeDataURL reads the whole file once and returns it as a base64 data
// URL. The read resolves exactly once; a failure surfaces as the error and
// nothing is kept.
func (s *Service) EncodeDataURL(fileName string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("upload exceeds %d bytes", s.maxBytes)
	}
	return fmt.Sprintf("data:%s;base64,%s", ContentType(fileName), base64.StdEncoding.EncodeToString(data)), nil
}

// CheckNoteFile rejects anything that is not a document format notes accept.
func (s *Service) CheckNoteFile(fileName string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := noteExtensions[ext]; !ok {
		return app_errors.ErrFileType
	}
	return nil
}

// ContentType resolves a MIME type from the file extension, defaulting to an
// opaque byte stream.
func ContentType(fileName string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName))); t != "" {
		return t
	}
	return "application/octet-stream"
}

// FormatFileSize renders a byte count for upload previews.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", size, units[i])
}
