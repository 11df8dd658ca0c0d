package document

import (
	"context"
	"io"

	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
)

type DocumentService interface {
	Upload(ctx context.Context, actor user.Principal, req CreateDocumentRequest, file io.Reader, filename string) (DocumentResponse, error)
	Get(ctx context.Context, id string) (DocumentResponse, error)
	Download(ctx context.Context, id string) (io.ReadCloser, string, error)
	List(ctx context.Context, filter DocumentFilter) (ListDocumentsResponse, error)
	Update(ctx context.Context, req UpdateDocumentRequest) (DocumentResponse, error)
	Delete(ctx context.Context, id string) error
}
