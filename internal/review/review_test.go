package review

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AshishBinoy/traindesk/internal/store"
	"github.com/AshishBinoy/traindesk/pkg/types"
)

func loadTestLedger(t *testing.T, content string) (*store.Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course_requests.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	l, err := store.LoadLedger(path)
	require.NoError(t, err)
	return l, path
}

// approveAll approves every pending request.
var approveAll = DeciderFunc(func(types.CourseRequest) (Decision, string, error) {
	return Approve, "", nil
})

func denyAll(reason string) Decider {
	return DeciderFunc(func(types.CourseRequest) (Decision, string, error) {
		return Deny, reason, nil
	})
}

func TestRunApprovesPending(t *testing.T) {
	l, path := loadTestLedger(t, "emp@ana,python,2024-05-01,pending\n")

	updated, err := NewWorkflow(l).Run(approveAll)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, types.StatusApproved, updated[0].Status)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "emp@ana,python,2024-05-01,approved\n", string(data))
}

func TestRunDeniesWithReason(t *testing.T) {
	l, path := loadTestLedger(t, "emp@ana,python,2024-05-01,pending\n")

	updated, err := NewWorkflow(l).Run(denyAll("schedule conflict"))
	require.NoError(t, err)
	assert.Equal(t, types.Rejected("schedule conflict"), updated[0].Status)

	// The exact single-line rewrite from the denial scenario.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"emp@ana,python,2024-05-01,rejected: schedule conflict\n",
		string(data))
}

func TestRunPassesThroughTerminalStates(t *testing.T) {
	l, path := loadTestLedger(t,
		"emp@ana,python,2024-05-01,approved\n"+
			"emp@bob,java,2024-04-01,rejected: no budget\n"+
			"emp@cho,rust,2024-06-01,pending\n")

	var decided int
	counter := DeciderFunc(func(req types.CourseRequest) (Decision, string, error) {
		decided++
		return Approve, "", nil
	})

	updated, err := NewWorkflow(l).Run(counter)
	require.NoError(t, err)

	// Only the pending request was put to the decider.
	assert.Equal(t, 1, decided)

	// Terminal requests pass through unchanged but are still rewritten.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"emp@ana,python,2024-05-01,approved\n"+
			"emp@bob,java,2024-04-01,rejected: no budget\n"+
			"emp@cho,rust,2024-06-01,approved\n",
		string(data))
	require.Len(t, updated, 3)
}

func TestRunPreservesOrder(t *testing.T) {
	l, path := loadTestLedger(t,
		"emp@c,go,2024-07-01,pending\n"+
			"emp@a,python,2024-05-01,pending\n"+
			"emp@b,rust,2024-06-01,pending\n")

	_, err := NewWorkflow(l).Run(approveAll)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"emp@c,go,2024-07-01,approved\n"+
			"emp@a,python,2024-05-01,approved\n"+
			"emp@b,rust,2024-06-01,approved\n",
		string(data))
}

func TestRunEmptyLedger(t *testing.T) {
	l, path := loadTestLedger(t, "")

	updated, err := NewWorkflow(l).Run(approveAll)
	require.NoError(t, err)
	assert.Empty(t, updated)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "", string(data))
}

func TestRunDeciderErrorAbortsBeforeCommit(t *testing.T) {
	l, path := loadTestLedger(t,
		"emp@ana,python,2024-05-01,pending\n"+
			"emp@bob,java,2024-04-01,pending\n")

	boom := errors.New("input closed")
	failing := DeciderFunc(func(types.CourseRequest) (Decision, string, error) {
		return 0, "", boom
	})

	_, err := NewWorkflow(l).Run(failing)
	assert.ErrorIs(t, err, boom)

	// Nothing was committed; the ledger is untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"emp@ana,python,2024-05-01,pending\n"+
			"emp@bob,java,2024-04-01,pending\n",
		string(data))
}

func TestRunObserverCallbacks(t *testing.T) {
	l, _ := loadTestLedger(t,
		"emp@ana,python,2024-05-01,approved\n"+
			"emp@bob,java,2024-04-01,pending\n")

	var seen, decided []string
	w := NewWorkflow(l)
	w.SetObserver(Observer{
		OnRequest: func(req types.CourseRequest) {
			seen = append(seen, req.EmployeeName)
		},
		OnDecision: func(req types.CourseRequest) {
			decided = append(decided, string(req.Status))
		},
	})

	_, err := w.Run(denyAll("no budget"))
	require.NoError(t, err)

	// Every request is presented; only the pending one reaches a decision.
	assert.Equal(t, []string{"emp@ana", "emp@bob"}, seen)
	assert.Equal(t, []string{"rejected: no budget"}, decided)
}
