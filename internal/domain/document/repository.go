package document

import "context"

type EmployeeDocumentRepository interface {
	Create(ctx context.Context, doc EmployeeDocument) (EmployeeDocument, error)
	GetByID(ctx context.Context, id string) (EmployeeDocument, error)
	List(ctx context.Context, filter DocumentFilter) ([]EmployeeDocument, int64, error)
	Update(ctx context.Context, doc EmployeeDocument) error
	Delete(ctx context.Context, id string) error
}
