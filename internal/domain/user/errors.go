package user

import (
	"fmt"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
)

var (
	ErrUserNotFound   = fmt.Errorf("user not found: %w", apperr.ErrReference)
	ErrUsernameExists = fmt.Errorf("username already exists: %w", apperr.ErrUniqueness)
)
