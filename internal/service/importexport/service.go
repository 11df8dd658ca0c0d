package importexport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/domain/importexport"
	"github.com/peoplecore/hrms-backend-go/internal/domain/master/department"
	"github.com/peoplecore/hrms-backend-go/internal/domain/master/position"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrms-backend-go/internal/repository/postgresql"
	"github.com/xuri/excelize/v2"
)

const (
	employeeSheet   = "Employees"
	departmentSheet = "Departments"

	exportPageSize = 500
)

var employeeHeaders = []interface{}{
	"employee_id", "first_name", "last_name", "personal_email", "phone_number",
	"department", "position", "hire_date", "employment_status", "salary",
}

var departmentHeaders = []interface{}{"name", "description", "is_active"}

type ImportExportServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
}

func NewImportExportService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
) importexport.ImportExportService {
	return &ImportExportServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
	}
}

// ExportEmployees implements importexport.ImportExportService.
func (s *ImportExportServiceImpl) ExportEmployees(ctx context.Context, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", employeeSheet)
	f.SetSheetRow(employeeSheet, "A1", &employeeHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(employeeSheet, "A1", "J1", style)

	rowNum := 2
	for page := 1; ; page++ {
		employees, _, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{Page: page, Limit: exportPageSize})
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		if len(employees) == 0 {
			break
		}

		for _, emp := range employees {
			var deptName, posTitle string
			if emp.DepartmentName != nil {
				deptName = *emp.DepartmentName
			}
			if emp.PositionTitle != nil {
				posTitle = *emp.PositionTitle
			}
			var salary string
			if emp.Salary != nil {
				salary = strconv.FormatFloat(*emp.Salary, 'f', 2, 64)
			}

			row := []interface{}{
				emp.EmployeeID, emp.FirstName, emp.LastName, emp.PersonalEmail, emp.PhoneNumber,
				deptName, posTitle, emp.HireDate.Format("2006-01-02"), string(emp.EmploymentStatus), salary,
			}
			cell, _ := excelize.CoordinatesToCellName(1, rowNum)
			f.SetSheetRow(employeeSheet, cell, &row)
			rowNum++
		}

		if len(employees) < exportPageSize {
			break
		}
	}

	return f.Write(w)
}

// ImportEmployees implements importexport.ImportExportService. Rows
// are matched to existing records by employee_id; importing an
// unchanged export updates in place and never duplicates.
func (s *ImportExportServiceImpl) ImportEmployees(ctx context.Context, r io.Reader) (importexport.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return importexport.ImportResult{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetList()[0])
	if err != nil {
		return importexport.ImportResult{}, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return importexport.ImportResult{}, fmt.Errorf("workbook has no header row")
	}

	// All rows land in one transaction, so an interrupted import
	// never leaves the workbook half-applied.
	var result importexport.ImportResult
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		for i, row := range rows[1:] {
			rowNum := i + 1
			er := parseEmployeeRow(row)
			if er.FirstName == "" || er.LastName == "" {
				result.Skipped++
				result.Errors = append(result.Errors, importexport.RowError{
					Row: rowNum, Message: "first_name and last_name are required",
				})
				continue
			}

			err := withRowSavepoint(ctx, tx, func(rowCtx context.Context) error {
				return s.upsertEmployee(rowCtx, er, &result)
			})
			if err != nil {
				result.Skipped++
				result.Errors = append(result.Errors, importexport.RowError{Row: rowNum, Message: err.Error()})
			}
		}
		return nil
	})
	if err != nil {
		return importexport.ImportResult{}, err
	}

	return result, nil
}

// withRowSavepoint runs fn under a nested transaction (a savepoint),
// so a rejected row does not poison the surrounding import
// transaction.
func withRowSavepoint(ctx context.Context, tx pgx.Tx, fn func(ctx context.Context) error) error {
	rowTx, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(context.WithValue(ctx, "tx", rowTx)); err != nil {
		_ = rowTx.Rollback(ctx)
		return err
	}
	return rowTx.Commit(ctx)
}

func parseEmployeeRow(row []string) importexport.EmployeeRow {
	col := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	er := importexport.EmployeeRow{
		EmployeeID:       col(0),
		FirstName:        col(1),
		LastName:         col(2),
		PersonalEmail:    col(3),
		PhoneNumber:      col(4),
		Department:       col(5),
		Position:         col(6),
		HireDate:         col(7),
		EmploymentStatus: col(8),
	}
	if raw := col(9); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			er.Salary = &v
		}
	}
	return er
}

func (s *ImportExportServiceImpl) upsertEmployee(ctx context.Context, er importexport.EmployeeRow, result *importexport.ImportResult) error {
	var deptID, posID *string
	if er.Department != "" {
		d, err := s.departmentRepo.GetByName(ctx, er.Department)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("department %q does not exist", er.Department)
			}
			return fmt.Errorf("failed to look up department: %w", err)
		}
		deptID = &d.ID

		if er.Position != "" {
			p, err := s.positionRepo.GetByTitleAndDepartment(ctx, er.Position, d.ID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("position %q does not exist in department %q", er.Position, er.Department)
				}
				return fmt.Errorf("failed to look up position: %w", err)
			}
			posID = &p.ID
		}
	}

	var hireDate time.Time
	if er.HireDate != "" {
		var err error
		hireDate, err = time.Parse("2006-01-02", er.HireDate)
		if err != nil {
			return fmt.Errorf("hire_date %q is not a valid date", er.HireDate)
		}
	}

	if er.EmployeeID != "" {
		existing, err := s.employeeRepo.GetByEmployeeID(ctx, er.EmployeeID)
		if err == nil {
			existing.FirstName = er.FirstName
			existing.LastName = er.LastName
			existing.PersonalEmail = er.PersonalEmail
			existing.PhoneNumber = er.PhoneNumber
			existing.DepartmentID = deptID
			existing.PositionID = posID
			if !hireDate.IsZero() {
				existing.HireDate = hireDate
			}
			if er.EmploymentStatus != "" {
				existing.EmploymentStatus = employee.EmploymentStatus(er.EmploymentStatus)
			}
			existing.Salary = er.Salary

			if err := s.employeeRepo.Update(ctx, existing); err != nil {
				return fmt.Errorf("failed to update employee: %w", err)
			}
			result.Updated++
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to look up employee: %w", err)
		}
	}

	badge := er.EmployeeID
	if badge == "" {
		badge = employee.NewEmployeeID()
	}
	status := employee.StatusActive
	if er.EmploymentStatus != "" {
		status = employee.EmploymentStatus(er.EmploymentStatus)
	}
	if hireDate.IsZero() {
		hireDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	_, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID:       badge,
		FirstName:        er.FirstName,
		LastName:         er.LastName,
		PersonalEmail:    er.PersonalEmail,
		PhoneNumber:      er.PhoneNumber,
		DepartmentID:     deptID,
		PositionID:       posID,
		HireDate:         hireDate,
		EmploymentStatus: status,
		Salary:           er.Salary,
		SalaryCurrency:   "USD",
		IsActive:         true,
	})
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	result.Created++
	return nil
}

// ExportDepartments implements importexport.ImportExportService.
func (s *ImportExportServiceImpl) ExportDepartments(ctx context.Context, w io.Writer) error {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list departments: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", departmentSheet)
	f.SetSheetRow(departmentSheet, "A1", &departmentHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(departmentSheet, "A1", "C1", style)

	for i, d := range departments {
		row := []interface{}{d.Name, d.Description, strconv.FormatBool(d.IsActive)}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(departmentSheet, cell, &row)
	}

	return f.Write(w)
}

// ImportDepartments implements importexport.ImportExportService. Rows
// are matched by name.
func (s *ImportExportServiceImpl) ImportDepartments(ctx context.Context, r io.Reader) (importexport.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return importexport.ImportResult{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetList()[0])
	if err != nil {
		return importexport.ImportResult{}, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return importexport.ImportResult{}, fmt.Errorf("workbook has no header row")
	}

	var result importexport.ImportResult
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		for i, row := range rows[1:] {
			rowNum := i + 1
			col := func(j int) string {
				if j < len(row) {
					return strings.TrimSpace(row[j])
				}
				return ""
			}

			name := col(0)
			if name == "" {
				result.Skipped++
				result.Errors = append(result.Errors, importexport.RowError{Row: rowNum, Message: "name is required"})
				continue
			}
			description := col(1)
			isActive := true
			if raw := col(2); raw != "" {
				isActive, _ = strconv.ParseBool(raw)
			}

			err := withRowSavepoint(ctx, tx, func(rowCtx context.Context) error {
				return s.upsertDepartment(rowCtx, name, description, isActive, &result)
			})
			if err != nil {
				result.Skipped++
				result.Errors = append(result.Errors, importexport.RowError{Row: rowNum, Message: err.Error()})
			}
		}
		return nil
	})
	if err != nil {
		return importexport.ImportResult{}, err
	}

	return result, nil
}

func (s *ImportExportServiceImpl) upsertDepartment(ctx context.Context, name, description string, isActive bool, result *importexport.ImportResult) error {
	existing, err := s.departmentRepo.GetByName(ctx, name)
	if err == nil {
		existing.Description = description
		existing.IsActive = isActive
		if err := s.departmentRepo.Update(ctx, existing); err != nil {
			return err
		}
		result.Updated++
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	if _, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        name,
		Description: description,
		IsActive:    isActive,
	}); err != nil {
		return err
	}
	result.Created++
	return nil
}
