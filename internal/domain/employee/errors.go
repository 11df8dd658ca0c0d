package employee

import (
	"fmt"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
)

var (
	ErrEmployeeNotFound  = fmt.Errorf("employee not found: %w", apperr.ErrReference)
	ErrUserAlreadyLinked = fmt.Errorf("user is already linked to another employee: %w", apperr.ErrUniqueness)
	ErrEmployeeIDExists  = fmt.Errorf("employee id already exists: %w", apperr.ErrUniqueness)
)
