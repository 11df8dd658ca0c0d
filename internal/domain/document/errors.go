package document

import (
	"fmt"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
)

var ErrDocumentNotFound = fmt.Errorf("employee document not found: %w", apperr.ErrReference)
