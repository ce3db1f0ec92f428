package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/AshishBinoy/traindesk/internal/record"
	"github.com/AshishBinoy/traindesk/pkg/types"
)

// Ledger is the append/rewrite-capable store of course requests. Requests
// carry no identifier, so file order is the closest thing to a stable
// identity they have; every operation preserves it.
//
// Append and the loaded snapshot are deliberately not unified: appending does
// not extend the sequence returned by All. Employee sessions (which append)
// and manager sessions (which rewrite) are assumed to be separate process
// invocations, each loading the file fresh.
type Ledger struct {
	path     string
	requests []types.CourseRequest
}

// LoadLedger reads the request ledger. A missing or unreadable file is not
// fatal: the returned ledger is empty but fully usable, and the error is
// reported so the caller can log a warning.
func LoadLedger(path string) (*Ledger, error) {
	lines, err := readLines(path)
	l := &Ledger{path: path}
	for _, line := range lines {
		l.requests = append(l.requests, record.ParseRequest(line))
	}
	return l, err
}

// All returns the loaded requests in file order.
func (l *Ledger) All() []types.CourseRequest {
	return l.requests
}

// Len returns the number of loaded requests.
func (l *Ledger) Len() int {
	return len(l.requests)
}

// Append opens the backing file in append mode and writes one encoded line,
// leaving all prior lines untouched.
func (l *Ledger) Append(req types.CourseRequest) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open ledger for append: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(record.EncodeRequest(req) + "\n"); err != nil {
		return fmt.Errorf("append course request: %w", err)
	}
	return nil
}

// RewriteAll replaces the entire ledger with the given sequence, in order.
// This is how status transitions are persisted: a full replace, never an
// in-place patch. The write goes through a temp file and an atomic rename so
// a failure mid-write cannot leave a truncated ledger behind; on success the
// in-memory sequence is updated to match the file.
func (l *Ledger) RewriteAll(reqs []types.CourseRequest) error {
	var sb strings.Builder
	for _, req := range reqs {
		sb.WriteString(record.EncodeRequest(req))
		sb.WriteByte('\n')
	}

	tmpPath := l.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write temp ledger: %w", err)
	}
	if err := os.Rename(tmpPath, l.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace ledger: %w", err)
	}

	l.requests = reqs
	return nil
}

// Path returns the backing file path.
func (l *Ledger) Path() string {
	return l.path
}
