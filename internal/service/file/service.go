package file

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/storage"
)

type FileService interface {
	// Photo uploads
	UploadEmployeePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// Document uploads
	UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string, documentType string) (string, error)

	// Generic operations
	DownloadFile(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadEmployeePhoto stores a profile photo under photos/<employee>.
func (s *fileServiceImpl) UploadEmployeePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := []string{".jpg", ".jpeg", ".png"}

	isValid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			isValid = true
			break
		}
	}
	if !isValid {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	newFilename := fmt.Sprintf("%s-%s%s", employeeID, uuid.New().String(), ext)
	path := filepath.Join("photos", employeeID, newFilename)

	return s.storage.Upload(ctx, file, path, contentType)
}

// UploadDocument stores an employee document under documents/<employee>.
func (s *fileServiceImpl) UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string, documentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", fmt.Errorf("filename must have an extension")
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	newFilename := fmt.Sprintf("%s-%s-%s%s", employeeID, strings.ToLower(documentType), uuid.New().String(), ext)
	path := filepath.Join("documents", employeeID, newFilename)

	return s.storage.Upload(ctx, file, path, contentType)
}

func (s *fileServiceImpl) DownloadFile(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, path)
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}
