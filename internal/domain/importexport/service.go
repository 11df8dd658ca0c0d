package importexport

import (
	"context"
	"io"
)

type ImportExportService interface {
	ExportEmployees(ctx context.Context, w io.Writer) error
	ImportEmployees(ctx context.Context, r io.Reader) (ImportResult, error)
	ExportDepartments(ctx context.Context, w io.Writer) error
	ImportDepartments(ctx context.Context, r io.Reader) (ImportResult, error)
}
