package employee

import (
	"context"
	"io"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)
	ListDirectReports(ctx context.Context, managerID string) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Terminate(ctx context.Context, req TerminateEmployeeRequest) (EmployeeResponse, error)
	UploadPhoto(ctx context.Context, id string, file io.Reader, filename string) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
