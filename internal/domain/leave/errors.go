package leave

import (
	"fmt"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
)

var (
	ErrLeaveTypeNotFound    = fmt.Errorf("leave type not found: %w", apperr.ErrReference)
	ErrLeaveTypeNameExists  = fmt.Errorf("leave type with this name already exists: %w", apperr.ErrUniqueness)
	ErrLeaveRequestNotFound = fmt.Errorf("leave request not found: %w", apperr.ErrReference)
	ErrInvalidTransition    = fmt.Errorf("leave request status transition not allowed: %w", apperr.ErrValidation)
)
