// Package store holds the three record stores backing traindesk: employees,
// trainings and the course-request ledger. Each is a flat text file read
// wholesale into memory at load time. Access is strictly single-threaded —
// one interactive session, one user — so the stores carry no locking, and the
// design gives no cross-process mutual exclusion either (two concurrent
// invocations can race; accepted limitation).
package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/AshishBinoy/traindesk/internal/record"
	"github.com/AshishBinoy/traindesk/pkg/types"
)

var (
	// ErrEmployeeNotFound is returned by FindByUsername on a miss.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrTrainingNotFound is returned by FindByLanguage on a miss.
	ErrTrainingNotFound = errors.New("training not found")
)

// readLines reads every line of path, blank lines included. It mirrors the
// load contract of all three stores: a missing or unreadable file yields an
// empty slice plus the error, and the caller decides whether that is fatal.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("read record store: %w", err)
	}
	return lines, nil
}

// EmployeeStore holds the employee records in file order. Read-only after
// load; the system never writes employee records back.
type EmployeeStore struct {
	employees []types.Employee
}

// LoadEmployees reads the employee record file. Nothing is skipped: a blank
// line becomes a record with empty fields, not an error. On an unreadable
// file the returned store is empty and usable; the error is informational.
func LoadEmployees(path string) (*EmployeeStore, error) {
	lines, err := readLines(path)
	s := &EmployeeStore{}
	for _, line := range lines {
		s.employees = append(s.employees, record.ParseEmployee(line))
	}
	return s, err
}

// FindByUsername returns the first employee with the given username.
// Lookup is linear and case-sensitive; duplicates are not rejected, the
// first match wins.
func (s *EmployeeStore) FindByUsername(name string) (types.Employee, error) {
	for _, emp := range s.employees {
		if emp.Username == name {
			return emp, nil
		}
	}
	return types.Employee{}, ErrEmployeeNotFound
}

// All returns the employees in load order.
func (s *EmployeeStore) All() []types.Employee {
	return s.employees
}

// Len returns the number of loaded employee records.
func (s *EmployeeStore) Len() int {
	return len(s.employees)
}
