package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
)

// Каталоги хранилища по типу файла
const (
	ResumeDir       = "resumes"
	ProfileImageDir = "profileImages"
)

type UploadService interface {
	// SaveResume проверяет PDF и сохраняет его; возвращает ключ в хранилище
	SaveResume(ctx context.Context, file *multipart.FileHeader) (string, error)

	// SaveProfileImage проверяет jpeg/png и сохраняет; возвращает публичный URL
	SaveProfileImage(ctx context.Context, file *multipart.FileHeader) (string, string, error)

	// Open открывает сохраненный файл и возвращает его размер
	Open(ctx context.Context, key string) (io.ReadCloser, int64, error)

	// Remove удаляет файл; ошибки только логируются
	Remove(ctx context.Context, key string)
}

type UploadConfig struct {
	MaxFileSize       int64
	ResumeTypes       []string
	ProfileImageTypes []string
}

func DefaultUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxFileSize:       5 * 1024 * 1024,
		ResumeTypes:       []string{"application/pdf"},
		ProfileImageTypes: []string{"image/jpeg", "image/png"},
	}
}

type uploadService struct {
	storage storage.Storage
	config  *UploadConfig
}

func NewUploadService(storage storage.Storage, config *UploadConfig) UploadService {
	if config == nil {
		config = DefaultUploadConfig()
	}
	return &uploadService{
		storage: storage,
		config:  config,
	}
}

func (s *uploadService) SaveResume(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.ErrResumeRequired
	}
	return s.save(ctx, file, "resume", ResumeDir, s.config.ResumeTypes)
}

func (s *uploadService) SaveProfileImage(ctx context.Context, file *multipart.FileHeader) (string, string, error) {
	key, err := s.save(ctx, file, "profileImage", ProfileImageDir, s.config.ProfileImageTypes)
	if err != nil {
		return "", "", err
	}
	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		s.Remove(ctx, key)
		return "", "", apperrors.StorageError(err)
	}
	return key, url, nil
}

func (s *uploadService) save(ctx context.Context, file *multipart.FileHeader, field, dir string, allowed []string) (string, error) {
	if file.Size > s.config.MaxFileSize {
		return "", apperrors.ErrFileTooLarge.WithDetails(map[string]interface{}{
			"field":   field,
			"maxSize": s.config.MaxFileSize,
		})
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", apperrors.InternalError(fmt.Errorf("failed to detect file type: %w", err))
	}
	if !isAllowedType(mtype, allowed) {
		return "", apperrors.ErrInvalidFileType.WithDetails(map[string]interface{}{
			"field":    field,
			"detected": mtype.String(),
			"allowed":  allowed,
		})
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", apperrors.InternalError(fmt.Errorf("failed to rewind uploaded file: %w", err))
	}

	key, err := generateFileKey(dir, field, file.Filename, mtype.Extension())
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	// +1 байт, чтобы заметить файл больше заявленного размера
	limited := &io.LimitedReader{R: src, N: s.config.MaxFileSize + 1}
	if err := s.storage.Save(ctx, key, limited, mtype.String()); err != nil {
		return "", apperrors.StorageError(err)
	}
	if limited.N == 0 {
		s.Remove(ctx, key)
		return "", apperrors.ErrFileTooLarge
	}

	logger.CtxInfo(ctx, "File stored", "key", key, "mime", mtype.String(), "size", file.Size)
	return key, nil
}

func (s *uploadService) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	size, err := s.storage.GetSize(ctx, key)
	if err != nil {
		return nil, 0, err
	}
	rc, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, 0, err
	}
	return rc, size, nil
}

func (s *uploadService) Remove(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.CtxWithError(ctx, "Failed to remove stored file", err, "key", key)
	}
}

func isAllowedType(mtype *mimetype.MIME, allowed []string) bool {
	for _, a := range allowed {
		if mtype.Is(a) {
			return true
		}
	}
	return false
}

var unsafeNameChars = regexp.MustCompile(`[^a-z0-9]+`)

// sanitizeBaseName оставляет в имени файла только [a-z0-9-]
func sanitizeBaseName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = unsafeNameChars.ReplaceAllString(strings.ToLower(base), "-")
	base = strings.Trim(base, "-")
	if len(base) > 50 {
		base = strings.Trim(base[:50], "-")
	}
	if base == "" {
		base = "file"
	}
	return base
}

// generateFileKey - <dir>/<field>-<имя>-<10 hex><ext>
func generateFileKey(dir, field, filename, ext string) (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}
	name := fmt.Sprintf("%s-%s-%s%s", field, sanitizeBaseName(filename), hex.EncodeToString(buf), ext)
	return path.Join(dir, name), nil
}
