package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrms-backend-go/internal/domain/document"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/service/file"
)

type DocumentServiceImpl struct {
	documentRepo document.EmployeeDocumentRepository
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
}

func NewDocumentService(
	documentRepo document.EmployeeDocumentRepository,
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
) document.DocumentService {
	return &DocumentServiceImpl{
		documentRepo: documentRepo,
		employeeRepo: employeeRepo,
		fileService:  fileService,
	}
}

func mapDocumentToResponse(d document.EmployeeDocument) document.DocumentResponse {
	var expiryStr *string
	if d.ExpiryDate != nil {
		s := d.ExpiryDate.Format("2006-01-02")
		expiryStr = &s
	}

	return document.DocumentResponse{
		ID:             d.ID,
		EmployeeID:     d.EmployeeID,
		EmployeeName:   d.EmployeeName,
		DocumentType:   string(d.DocumentType),
		Title:          d.Title,
		DocumentFile:   d.DocumentFile,
		Description:    d.Description,
		ExpiryDate:     expiryStr,
		IsConfidential: d.IsConfidential,
		UploadedBy:     d.UploadedBy,
		UploadDate:     d.UploadDate.Format(time.RFC3339),
	}
}

// Upload implements document.DocumentService. The uploader identity is
// stamped from the explicit actor on creation only; updates never
// touch it.
func (s *DocumentServiceImpl) Upload(ctx context.Context, actor user.Principal, req document.CreateDocumentRequest, f io.Reader, filename string) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.DocumentResponse{}, employee.ErrEmployeeNotFound
		}
		return document.DocumentResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	path, err := s.fileService.UploadDocument(ctx, emp.EmployeeID, f, filename, req.DocumentType)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to upload document file: %w", err)
	}

	var expiry *time.Time
	if req.ExpiryDate != "" {
		parsed, _ := time.Parse("2006-01-02", req.ExpiryDate)
		expiry = &parsed
	}

	var uploadedBy *string
	if actor.UserID != "" {
		uploadedBy = &actor.UserID
	}

	entity := document.EmployeeDocument{
		EmployeeID:     req.EmployeeID,
		DocumentType:   document.DocumentType(req.DocumentType),
		Title:          req.Title,
		DocumentFile:   path,
		Description:    req.Description,
		ExpiryDate:     expiry,
		IsConfidential: req.IsConfidential,
		UploadedBy:     uploadedBy,
	}

	created, err := s.documentRepo.Create(ctx, entity)
	if err != nil {
		// Without the row the stored blob is unreachable; remove it.
		_ = s.fileService.DeleteFile(ctx, path)

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return document.DocumentResponse{}, employee.ErrEmployeeNotFound
		}
		return document.DocumentResponse{}, fmt.Errorf("failed to create employee document: %w", err)
	}

	return s.Get(ctx, created.ID)
}

// Get implements document.DocumentService.
func (s *DocumentServiceImpl) Get(ctx context.Context, id string) (document.DocumentResponse, error) {
	d, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.DocumentResponse{}, document.ErrDocumentNotFound
		}
		return document.DocumentResponse{}, fmt.Errorf("failed to get employee document: %w", err)
	}
	return mapDocumentToResponse(d), nil
}

// Download implements document.DocumentService. Returns the blob
// stream and the stored locator.
func (s *DocumentServiceImpl) Download(ctx context.Context, id string) (io.ReadCloser, string, error) {
	d, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", document.ErrDocumentNotFound
		}
		return nil, "", fmt.Errorf("failed to get employee document: %w", err)
	}

	rc, err := s.fileService.DownloadFile(ctx, d.DocumentFile)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download document file: %w", err)
	}
	return rc, d.DocumentFile, nil
}

// List implements document.DocumentService.
func (s *DocumentServiceImpl) List(ctx context.Context, filter document.DocumentFilter) (document.ListDocumentsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	documents, total, err := s.documentRepo.List(ctx, filter)
	if err != nil {
		return document.ListDocumentsResponse{}, fmt.Errorf("failed to list employee documents: %w", err)
	}

	results := make([]document.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		results = append(results, mapDocumentToResponse(d))
	}

	return document.ListDocumentsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Documents:  results,
	}, nil
}

// Update implements document.DocumentService. Metadata only; the file
// reference, uploader and upload timestamp are immutable.
func (s *DocumentServiceImpl) Update(ctx context.Context, req document.UpdateDocumentRequest) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}

	existing, err := s.documentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.DocumentResponse{}, document.ErrDocumentNotFound
		}
		return document.DocumentResponse{}, fmt.Errorf("failed to get employee document: %w", err)
	}

	if req.DocumentType != "" {
		existing.DocumentType = document.DocumentType(req.DocumentType)
	}
	if req.Title != "" {
		existing.Title = req.Title
	}
	existing.Description = req.Description
	if req.ExpiryDate != "" {
		parsed, _ := time.Parse("2006-01-02", req.ExpiryDate)
		existing.ExpiryDate = &parsed
	}
	existing.IsConfidential = req.IsConfidential

	if err := s.documentRepo.Update(ctx, existing); err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to update employee document: %w", err)
	}

	return s.Get(ctx, req.ID)
}

// Delete implements document.DocumentService. Removes the stored blob
// along with the row.
func (s *DocumentServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get employee document: %w", err)
	}

	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee document: %w", err)
	}

	if err := s.fileService.DeleteFile(ctx, existing.DocumentFile); err != nil {
		return fmt.Errorf("failed to delete document file: %w", err)
	}
	return nil
}
