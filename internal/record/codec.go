// Package record implements the flat text line format shared by all three
// record stores: one record per line, comma-delimited, no header, no quoting
// and no escaping.
//
// Parsing is deliberately lenient. Field contents are never validated and a
// malformed or blank line decodes to a record with empty-string fields rather
// than an error. Parsing reads field by field: a training line keeps only its
// first two fields, and a course-request line cuts the status at the next
// delimiter. A rejection reason that itself contains a comma therefore
// misaligns on re-parse; the format has no way to represent it. This is a
// known limitation of the flat encoding, kept for compatibility with the
// existing record files.
package record

import (
	"strings"

	"github.com/AshishBinoy/traindesk/pkg/types"
)

// Delimiter separates fields within a record line.
const Delimiter = ","

// field returns parts[i], or "" when the line had too few fields.
func field(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return parts[i]
}

// ParseEmployee decodes "username,role,skill1,skill2,..." with a variable
// trailing field count. Zero skills yields a nil slice.
func ParseEmployee(line string) types.Employee {
	parts := strings.Split(line, Delimiter)
	emp := types.Employee{
		Username: field(parts, 0),
		Role:     field(parts, 1),
	}
	if len(parts) > 2 {
		emp.Skills = parts[2:]
	}
	return emp
}

// EncodeEmployee is the exact inverse join of ParseEmployee.
func EncodeEmployee(emp types.Employee) string {
	fields := append([]string{emp.Username, emp.Role}, emp.Skills...)
	return strings.Join(fields, Delimiter)
}

// ParseTraining decodes "language,date". Content after the second delimiter
// is silently discarded.
func ParseTraining(line string) types.Training {
	parts := strings.Split(line, Delimiter)
	return types.Training{
		Language: field(parts, 0),
		Date:     field(parts, 1),
	}
}

// EncodeTraining encodes a training as "language,date".
func EncodeTraining(tr types.Training) string {
	return tr.Language + Delimiter + tr.Date
}

// ParseRequest decodes "employeeName,courseName,date,status". The status is
// read up to the next delimiter, so extra fields (including the tail of a
// comma-bearing rejection reason) are discarded.
func ParseRequest(line string) types.CourseRequest {
	parts := strings.Split(line, Delimiter)
	return types.CourseRequest{
		EmployeeName: field(parts, 0),
		CourseName:   field(parts, 1),
		Date:         field(parts, 2),
		Status:       types.RequestStatus(field(parts, 3)),
	}
}

// EncodeRequest encodes a request as "employeeName,courseName,date,status".
func EncodeRequest(req types.CourseRequest) string {
	fields := []string{req.EmployeeName, req.CourseName, req.Date, string(req.Status)}
	return strings.Join(fields, Delimiter)
}
