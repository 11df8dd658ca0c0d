package importexport

// EmployeeRow is the tabular shape of an employee for bulk transfer.
// Rows are matched to existing records by employee_id on import.
type EmployeeRow struct {
	EmployeeID       string
	FirstName        string
	LastName         string
	PersonalEmail    string
	PhoneNumber      string
	Department       string
	Position         string
	HireDate         string
	EmploymentStatus string
	Salary           *float64
}

// DepartmentRow is the tabular shape of a department. Rows are matched
// by name on import.
type DepartmentRow struct {
	Name        string
	Description string
	IsActive    bool
}

// RowError records why one row was skipped, keyed by its 1-based
// position in the sheet (header excluded).
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes one import run. Importing an unchanged
// export leaves Created at zero and counts every row as updated.
type ImportResult struct {
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Skipped int        `json:"skipped"`
	Errors  []RowError `json:"errors,omitempty"`
}
