package server

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// saveUpload stores an uploaded image under the upload directory as
// <uuid><ext>, never trusting the client filename as a path, and returns the
// stored name for use as the game's picture reference.
func (s *Server) saveUpload(file multipart.File, header *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + sanitizeExt(header.Filename)
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(s.cfg.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	s.logger.Info("stored upload",
		zap.String("original", header.Filename),
		zap.String("stored", name))
	return name, nil
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

func (s *Server) handleDisplayImage(w http.ResponseWriter, r *http.Request) {
	name, ok := parseImagePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	clean := filepath.Base(name)
	if clean != name || clean == "." || clean == ".." {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.cfg.UploadDir, clean))
}
