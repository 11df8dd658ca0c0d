package performance

import (
	"fmt"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
)

var (
	ErrReviewNotFound = fmt.Errorf("performance review not found: %w", apperr.ErrReference)
	ErrReviewFinal    = fmt.Errorf("performance review is finalized and cannot be changed: %w", apperr.ErrValidation)
)
