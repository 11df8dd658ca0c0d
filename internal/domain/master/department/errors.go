package department

import (
	"fmt"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
)

var (
	ErrDepartmentNotFound   = fmt.Errorf("department not found: %w", apperr.ErrReference)
	ErrDepartmentNameExists = fmt.Errorf("department with this name already exists: %w", apperr.ErrUniqueness)
)
