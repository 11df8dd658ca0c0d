package document

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/peoplecore/hrms-backend-go/internal/domain/document"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	employee.EmployeeRepository
}

func (stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, EmployeeID: "EMP12AB34CD"}, nil
}

type failingDocumentRepo struct {
	document.EmployeeDocumentRepository
	err error
}

func (r failingDocumentRepo) Create(ctx context.Context, d document.EmployeeDocument) (document.EmployeeDocument, error) {
	return document.EmployeeDocument{}, r.err
}

type recordingFileService struct {
	file.FileService
	path    string
	deleted []string
}

func (s *recordingFileService) UploadDocument(ctx context.Context, employeeID string, f io.Reader, filename string, documentType string) (string, error) {
	return s.path, nil
}

func (s *recordingFileService) DeleteFile(ctx context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

func TestUploadRemovesBlobWhenInsertFails(t *testing.T) {
	fs := &recordingFileService{path: "documents/EMP12AB34CD/contract.pdf"}
	svc := NewDocumentService(
		failingDocumentRepo{err: errors.New("insert failed")},
		stubEmployeeRepo{},
		fs,
	)

	_, err := svc.Upload(
		context.Background(),
		user.Principal{UserID: "u1"},
		document.CreateDocumentRequest{
			EmployeeID:   "e1",
			DocumentType: "CONTRACT",
			Title:        "Employment contract",
		},
		strings.NewReader("pdf bytes"),
		"contract.pdf",
	)

	require.Error(t, err)
	assert.Equal(t, []string{fs.path}, fs.deleted, "the stored blob should be removed when the row never lands")
}
