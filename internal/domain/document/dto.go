package document

import (
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
)

type CreateDocumentRequest struct {
	EmployeeID     string `json:"employee_id"`
	DocumentType   string `json:"document_type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ExpiryDate     string `json:"expiry_date"`
	IsConfidential bool   `json:"is_confidential"`
}

func (r *CreateDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.DocumentType) {
		errs = append(errs, validator.ValidationError{
			Field:   "document_type",
			Message: "document_type is required",
		})
	} else if !validator.IsInSlice(r.DocumentType, DocumentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "document_type",
			Message: "document_type is not a recognized document type",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 200 characters",
		})
	}

	if r.ExpiryDate != "" {
		if _, ok := validator.IsValidDate(r.ExpiryDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expiry_date",
				Message: "expiry_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDocumentRequest struct {
	ID             string `json:"-"`
	DocumentType   string `json:"document_type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ExpiryDate     string `json:"expiry_date"`
	IsConfidential bool   `json:"is_confidential"`
}

func (r *UpdateDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DocumentType != "" && !validator.IsInSlice(r.DocumentType, DocumentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "document_type",
			Message: "document_type is not a recognized document type",
		})
	}

	if len(r.Title) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 200 characters",
		})
	}

	if r.ExpiryDate != "" {
		if _, ok := validator.IsValidDate(r.ExpiryDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expiry_date",
				Message: "expiry_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DocumentFilter struct {
	EmployeeID   *string
	DocumentType *string
	Page         int
	Limit        int
}

type DocumentResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	DocumentType   string  `json:"document_type"`
	Title          string  `json:"title"`
	DocumentFile   string  `json:"document_file"`
	Description    string  `json:"description,omitempty"`
	ExpiryDate     *string `json:"expiry_date,omitempty"`
	IsConfidential bool    `json:"is_confidential"`
	UploadedBy     *string `json:"uploaded_by,omitempty"`
	UploadDate     string  `json:"upload_date"`
}

type ListDocumentsResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Documents  []DocumentResponse `json:"documents"`
}
