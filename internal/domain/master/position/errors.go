package position

import (
	"fmt"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
)

var (
	ErrPositionNotFound = fmt.Errorf("position not found: %w", apperr.ErrReference)
	ErrPositionExists   = fmt.Errorf("position with this title already exists in the department: %w", apperr.ErrUniqueness)
)
