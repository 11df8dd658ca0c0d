package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, pos Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	GetByTitleAndDepartment(ctx context.Context, title, departmentID string) (Position, error)
	List(ctx context.Context, departmentID *string) ([]Position, error)
	Update(ctx context.Context, pos Position) error
	Delete(ctx context.Context, id string) error
}
