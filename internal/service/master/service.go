package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrms-backend-go/internal/domain/master/department"
	"github.com/peoplecore/hrms-backend-go/internal/domain/master/position"
)

type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	// Position operations
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetPosition(ctx context.Context, id string) (position.PositionResponse, error)
	ListPositions(ctx context.Context, departmentID *string) ([]position.PositionResponse, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error)
	DeletePosition(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
	}
}

func mapDepartmentToResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		ManagerID:     d.ManagerID,
		ManagerName:   d.ManagerName,
		EmployeeCount: d.EmployeeCount,
		IsActive:      d.IsActive,
	}
}

func mapPositionToResponse(p position.Position) position.PositionResponse {
	return position.PositionResponse{
		ID:             p.ID,
		Title:          p.Title,
		DepartmentID:   p.DepartmentID,
		DepartmentName: p.DepartmentName,
		Description:    p.Description,
		MinSalary:      p.MinSalary,
		MaxSalary:      p.MaxSalary,
		Requirements:   p.Requirements,
		IsActive:       p.IsActive,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	entity := department.Department{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		IsActive:    true,
	}

	created, err := s.departmentRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return department.DepartmentResponse{}, department.ErrDepartmentNameExists
			case "23503": // foreign_key_violation
				return department.DepartmentResponse{}, fmt.Errorf("manager %s: %w", *req.ManagerID, department.ErrDepartmentNotFound)
			}
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return mapDepartmentToResponse(created), nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}
	return mapDepartmentToResponse(d), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	results := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		results = append(results, mapDepartmentToResponse(d))
	}
	return results, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	existing, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.ManagerID = req.ManagerID
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.departmentRepo.Update(ctx, existing); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}

	return s.GetDepartment(ctx, req.ID)
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

// ==================== POSITION OPERATIONS ====================

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	entity := position.Position{
		Title:        req.Title,
		DepartmentID: req.DepartmentID,
		Description:  req.Description,
		MinSalary:    req.MinSalary,
		MaxSalary:    req.MaxSalary,
		Requirements: req.Requirements,
		IsActive:     true,
	}

	created, err := s.positionRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return position.PositionResponse{}, position.ErrPositionExists
			case "23503": // foreign_key_violation
				return position.PositionResponse{}, department.ErrDepartmentNotFound
			}
		}
		return position.PositionResponse{}, fmt.Errorf("failed to create position: %w", err)
	}

	return s.GetPosition(ctx, created.ID)
}

func (s *masterServiceImpl) GetPosition(ctx context.Context, id string) (position.PositionResponse, error) {
	p, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.PositionResponse{}, position.ErrPositionNotFound
		}
		return position.PositionResponse{}, fmt.Errorf("failed to get position: %w", err)
	}
	return mapPositionToResponse(p), nil
}

func (s *masterServiceImpl) ListPositions(ctx context.Context, departmentID *string) ([]position.PositionResponse, error) {
	positions, err := s.positionRepo.List(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	results := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		results = append(results, mapPositionToResponse(p))
	}
	return results, nil
}

func (s *masterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	existing, err := s.positionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.PositionResponse{}, position.ErrPositionNotFound
		}
		return position.PositionResponse{}, fmt.Errorf("failed to get position: %w", err)
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.MinSalary = req.MinSalary
	existing.MaxSalary = req.MaxSalary
	existing.Requirements = req.Requirements
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.positionRepo.Update(ctx, existing); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return position.PositionResponse{}, position.ErrPositionExists
		}
		return position.PositionResponse{}, fmt.Errorf("failed to update position: %w", err)
	}

	return s.GetPosition(ctx, req.ID)
}

func (s *masterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	if err := s.positionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}
