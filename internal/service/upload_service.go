package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"go-pos-backend/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
)

// extByMIME covers the accepted upload types. The sniffed type is
// authoritative; the client's declared type and filename are ignored.
var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UploadService interface {
	Save(data []byte) (string, error)
}

type uploadService struct {
	root string // upload root, e.g. "uploads"
}

func NewUploadService(root string) UploadService {
	return &uploadService{root: root}
}

// Save sniffs the content type, names the file with 16 random hex chars and
// the sniffed extension, and writes it under <root>/products. The write goes
// to a temp file first and is renamed into place, so a half-written file is
// never visible at the final path.
func (s *uploadService) Save(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	ext, ok := extByMIME[mtype.String()]
	if !ok {
		return "", ErrInvalidImage
	}

	token := make([]byte, 8)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("generate file name: %w", err)
	}
	name := hex.EncodeToString(token) + ext

	dir := filepath.Join(s.root, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Logger.Error().Err(err).Str("dir", dir).Msg("create upload dir")
		return "", ErrStorage
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		logger.Logger.Error().Err(err).Msg("create temp upload file")
		return "", ErrStorage
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		logger.Logger.Error().Err(err).Msg("write upload")
		return "", ErrStorage
	}
	if err := tmp.Close(); err != nil {
		logger.Logger.Error().Err(err).Msg("close upload")
		return "", ErrStorage
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		logger.Logger.Error().Err(err).Msg("chmod upload")
		return "", ErrStorage
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		logger.Logger.Error().Err(err).Msg("rename upload")
		return "", ErrStorage
	}

	return "uploads/products/" + name, nil
}
