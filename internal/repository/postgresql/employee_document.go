package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/document"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type employeeDocumentRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeDocumentRepository(db *database.DB) document.EmployeeDocumentRepository {
	return &employeeDocumentRepositoryImpl{db: db}
}

const documentSelect = `
	SELECT ed.id, ed.employee_id, ed.document_type, ed.title, ed.document_file, ed.description,
		   ed.expiry_date, ed.is_confidential, ed.uploaded_by, ed.upload_date,
		   CONCAT_WS(' ', e.first_name, NULLIF(e.middle_name, ''), e.last_name)
	FROM employee_documents ed
	JOIN employees e ON e.id = ed.employee_id
`

func scanDocument(row pgx.Row, d *document.EmployeeDocument) error {
	return row.Scan(
		&d.ID, &d.EmployeeID, &d.DocumentType, &d.Title, &d.DocumentFile, &d.Description,
		&d.ExpiryDate, &d.IsConfidential, &d.UploadedBy, &d.UploadDate,
		&d.EmployeeName,
	)
}

// Create implements document.EmployeeDocumentRepository.
func (r *employeeDocumentRepositoryImpl) Create(ctx context.Context, doc document.EmployeeDocument) (document.EmployeeDocument, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employee_documents (
			employee_id, document_type, title, document_file, description,
			expiry_date, is_confidential, uploaded_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, upload_date
	`
	err := q.QueryRow(ctx, query,
		doc.EmployeeID, doc.DocumentType, doc.Title, doc.DocumentFile, doc.Description,
		doc.ExpiryDate, doc.IsConfidential, doc.UploadedBy,
	).Scan(&doc.ID, &doc.UploadDate)
	if err != nil {
		return document.EmployeeDocument{}, err
	}
	return doc, nil
}

// GetByID implements document.EmployeeDocumentRepository.
func (r *employeeDocumentRepositoryImpl) GetByID(ctx context.Context, id string) (document.EmployeeDocument, error) {
	q := GetQuerier(ctx, r.db)
	var d document.EmployeeDocument
	err := scanDocument(q.QueryRow(ctx, documentSelect+` WHERE ed.id = $1`, id), &d)
	if err != nil {
		return document.EmployeeDocument{}, err
	}
	return d, nil
}

// List implements document.EmployeeDocumentRepository.
func (r *employeeDocumentRepositoryImpl) List(ctx context.Context, filter document.DocumentFilter) ([]document.EmployeeDocument, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("ed.employee_id = $%d", len(args)))
	}
	if filter.DocumentType != nil {
		args = append(args, *filter.DocumentType)
		conditions = append(conditions, fmt.Sprintf("ed.document_type = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employee_documents ed` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := documentSelect + where + ` ORDER BY ed.upload_date DESC`
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var documents []document.EmployeeDocument
	for rows.Next() {
		var d document.EmployeeDocument
		if err := scanDocument(rows, &d); err != nil {
			return nil, 0, err
		}
		documents = append(documents, d)
	}
	return documents, total, rows.Err()
}

// Update implements document.EmployeeDocumentRepository.
// uploaded_by and upload_date are stamped at create and never change.
func (r *employeeDocumentRepositoryImpl) Update(ctx context.Context, doc document.EmployeeDocument) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employee_documents
		SET document_type = $2, title = $3, description = $4, expiry_date = $5, is_confidential = $6
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		doc.ID, doc.DocumentType, doc.Title, doc.Description, doc.ExpiryDate, doc.IsConfidential,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("employee document with id %s not found", doc.ID)
	}
	return nil
}

// Delete implements document.EmployeeDocumentRepository.
func (r *employeeDocumentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM employee_documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("employee document with id %s not found", id)
	}
	return nil
}
