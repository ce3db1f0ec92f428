package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeStoreFile writes a record file fixture and returns its path.
func writeStoreFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadEmployees(t *testing.T) {
	path := writeStoreFile(t, "employees.txt",
		"emp@ana,dev,python,go\nemp@bob,qa,java\n")

	s, err := LoadEmployees(path)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	emp, err := s.FindByUsername("emp@ana")
	require.NoError(t, err)
	assert.Equal(t, "dev", emp.Role)
	assert.Equal(t, []string{"python", "go"}, emp.Skills)
}

func TestLoadEmployeesMissingFile(t *testing.T) {
	s, err := LoadEmployees(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
	// The store must still be usable, just empty.
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
	_, err = s.FindByUsername("emp@ana")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestLoadEmployeesBlankLine(t *testing.T) {
	path := writeStoreFile(t, "employees.txt", "emp@ana,dev,python\n\n")

	s, err := LoadEmployees(path)
	require.NoError(t, err)
	// Blank lines are loaded as empty records, not skipped.
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "", s.All()[1].Username)
}

func TestFindByUsernameCaseSensitive(t *testing.T) {
	path := writeStoreFile(t, "employees.txt", "emp@Ana,dev,python\n")

	s, err := LoadEmployees(path)
	require.NoError(t, err)

	_, err = s.FindByUsername("emp@ana")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestFindByUsernameFirstMatchWins(t *testing.T) {
	path := writeStoreFile(t, "employees.txt",
		"emp@ana,dev,python\nemp@ana,qa,java\n")

	s, err := LoadEmployees(path)
	require.NoError(t, err)

	emp, err := s.FindByUsername("emp@ana")
	require.NoError(t, err)
	assert.Equal(t, "dev", emp.Role)
}
