package employee

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployeeID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewEmployeeID()
		assert.Len(t, id, 11)
		assert.True(t, strings.HasPrefix(id, "EMP"))
		assert.Equal(t, strings.ToUpper(id), id)
		assert.False(t, seen[id], "generated badge numbers should not repeat")
		seen[id] = true
	}
}

func TestFullName(t *testing.T) {
	e := Employee{FirstName: "Alice", LastName: "Nguyen"}
	assert.Equal(t, "Alice Nguyen", e.FullName())

	e.MiddleName = "Marie"
	assert.Equal(t, "Alice Marie Nguyen", e.FullName())
}

func TestAgeAt(t *testing.T) {
	today := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("no birth date", func(t *testing.T) {
		assert.Nil(t, Employee{}.AgeAt(today))
	})

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday already passed", time.Date(1990, time.March, 1, 0, 0, 0, 0, time.UTC), 36},
		{"birthday today", time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC), 36},
		{"birthday tomorrow", time.Date(1990, time.June, 16, 0, 0, 0, 0, time.UTC), 35},
		{"birthday later this year", time.Date(1990, time.December, 31, 0, 0, 0, 0, time.UTC), 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dob := tt.dob
			age := Employee{DateOfBirth: &dob}.AgeAt(today)
			require.NotNil(t, age)
			assert.Equal(t, tt.want, *age)
		})
	}
}

func TestYearsOfServiceAt(t *testing.T) {
	today := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Zero(t, Employee{}.YearsOfServiceAt(today))

	e := Employee{HireDate: time.Date(2020, time.June, 16, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 5, e.YearsOfServiceAt(today))

	e.HireDate = time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 6, e.YearsOfServiceAt(today))
}
