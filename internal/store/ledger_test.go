package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AshishBinoy/traindesk/pkg/types"
)

func TestLoadLedger(t *testing.T) {
	path := writeStoreFile(t, "course_requests.txt",
		"emp@ana,python,2024-05-01,pending\nemp@bob,java,2024-04-01,approved\n")

	l, err := LoadLedger(path)
	require.NoError(t, err)
	require.Equal(t, 2, l.Len())

	assert.Equal(t, types.StatusPending, l.All()[0].Status)
	assert.Equal(t, types.StatusApproved, l.All()[1].Status)
}

func TestLoadLedgerMissingFile(t *testing.T) {
	l, err := LoadLedger(filepath.Join(t.TempDir(), "nope.txt"))
	// Missing ledger is a warning, not a startup failure.
	assert.Error(t, err)
	require.NotNil(t, l)
	assert.Equal(t, 0, l.Len())
}

func TestAppend(t *testing.T) {
	path := writeStoreFile(t, "course_requests.txt",
		"emp@bob,java,2024-04-01,approved\n")

	l, err := LoadLedger(path)
	require.NoError(t, err)

	req := types.CourseRequest{
		EmployeeName: "emp@ana",
		CourseName:   "python",
		Date:         "2024-05-01",
		Status:       types.StatusPending,
	}
	require.NoError(t, l.Append(req))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"emp@bob,java,2024-04-01,approved\nemp@ana,python,2024-05-01,pending\n",
		string(data))

	// Append does not extend the loaded snapshot; sessions that need the new
	// request reload the file.
	assert.Equal(t, 1, l.Len())
}

func TestAppendCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course_requests.txt")
	l, _ := LoadLedger(path)

	req := types.CourseRequest{
		EmployeeName: "emp@ana",
		CourseName:   "go",
		Date:         "2024-07-01",
		Status:       types.StatusPending,
	}
	require.NoError(t, l.Append(req))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "emp@ana,go,2024-07-01,pending\n", string(data))
}

func TestRewriteAll(t *testing.T) {
	path := writeStoreFile(t, "course_requests.txt",
		"emp@ana,python,2024-05-01,pending\nemp@bob,java,2024-04-01,pending\nemp@cho,rust,2024-06-01,approved\n")

	l, err := LoadLedger(path)
	require.NoError(t, err)

	updated := l.All()
	updated[0].Status = types.StatusApproved
	updated[1].Status = types.Rejected("schedule conflict")
	require.NoError(t, l.RewriteAll(updated))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	// N records in, exactly N lines out, same order.
	require.Len(t, lines, 3)
	assert.Equal(t, "emp@ana,python,2024-05-01,approved", lines[0])
	assert.Equal(t, "emp@bob,java,2024-04-01,rejected: schedule conflict", lines[1])
	assert.Equal(t, "emp@cho,rust,2024-06-01,approved", lines[2])

	// Disk and memory match after a rewrite.
	assert.Equal(t, updated, l.All())
}

func TestRewriteAllEmpty(t *testing.T) {
	path := writeStoreFile(t, "course_requests.txt",
		"emp@ana,python,2024-05-01,pending\n")

	l, err := LoadLedger(path)
	require.NoError(t, err)
	require.NoError(t, l.RewriteAll(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "", string(data))
	assert.Equal(t, 0, l.Len())
}

func TestRewriteAllLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "course_requests.txt")
	require.NoError(t, os.WriteFile(path, []byte("emp@ana,python,2024-05-01,pending\n"), 0644))

	l, err := LoadLedger(path)
	require.NoError(t, err)
	require.NoError(t, l.RewriteAll(l.All()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "course_requests.txt", entries[0].Name())
}
