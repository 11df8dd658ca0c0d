package importexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmployeeRow(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		row := []string{
			"EMP12AB34CD", "Alice", "Nguyen", "alice@example.com", "+1-555-0101",
			"Engineering", "Software Engineer", "2022-02-14", "ACTIVE", "92000.50",
		}
		er := parseEmployeeRow(row)
		assert.Equal(t, "EMP12AB34CD", er.EmployeeID)
		assert.Equal(t, "Alice", er.FirstName)
		assert.Equal(t, "Nguyen", er.LastName)
		assert.Equal(t, "Engineering", er.Department)
		assert.Equal(t, "Software Engineer", er.Position)
		assert.Equal(t, "2022-02-14", er.HireDate)
		assert.Equal(t, "ACTIVE", er.EmploymentStatus)
		require.NotNil(t, er.Salary)
		assert.InDelta(t, 92000.50, *er.Salary, 0.0001)
	})

	t.Run("short row", func(t *testing.T) {
		er := parseEmployeeRow([]string{"", "Bram", "Santoso"})
		assert.Empty(t, er.EmployeeID)
		assert.Equal(t, "Bram", er.FirstName)
		assert.Equal(t, "Santoso", er.LastName)
		assert.Empty(t, er.Department)
		assert.Nil(t, er.Salary)
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		er := parseEmployeeRow([]string{" EMP12AB34CD ", " Alice ", " Nguyen "})
		assert.Equal(t, "EMP12AB34CD", er.EmployeeID)
		assert.Equal(t, "Alice", er.FirstName)
	})

	t.Run("unparseable salary ignored", func(t *testing.T) {
		er := parseEmployeeRow([]string{"", "Alice", "Nguyen", "", "", "", "", "", "", "n/a"})
		assert.Nil(t, er.Salary)
	})
}
