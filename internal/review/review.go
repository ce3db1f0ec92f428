// Package review drives the manager-side request review: every request in
// the ledger snapshot is walked in order, pending ones get a binary decision,
// and the whole updated sequence is committed in one full rewrite.
package review

import (
	"fmt"

	"github.com/AshishBinoy/traindesk/internal/store"
	"github.com/AshishBinoy/traindesk/pkg/types"
)

// Decision is a manager's verdict on one pending request.
type Decision int

const (
	// Approve moves the request to the approved terminal state.
	Approve Decision = iota
	// Deny moves the request to the rejected terminal state; the decider
	// supplies the free-form reason.
	Deny
)

// Decider supplies decisions for pending requests. The interactive console
// implements it; tests use scripted deciders.
type Decider interface {
	// Decide is called once per pending request. For Deny, the returned
	// string is the rejection reason. A non-nil error aborts the review pass
	// before anything is committed.
	Decide(req types.CourseRequest) (Decision, string, error)
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(req types.CourseRequest) (Decision, string, error)

func (f DeciderFunc) Decide(req types.CourseRequest) (Decision, string, error) {
	return f(req)
}

// Observer receives workflow events; the console uses it to print each
// request, and metrics hook in here too. Either callback may be nil.
type Observer struct {
	// OnRequest fires for every request in the snapshot before any decision.
	OnRequest func(req types.CourseRequest)
	// OnDecision fires after a pending request reached its terminal state.
	OnDecision func(req types.CourseRequest)
}

// Workflow reviews the request ledger.
type Workflow struct {
	ledger   *store.Ledger
	observer Observer
}

// NewWorkflow builds a review workflow over the given ledger.
func NewWorkflow(ledger *store.Ledger) *Workflow {
	return &Workflow{ledger: ledger}
}

// SetObserver installs workflow callbacks.
func (w *Workflow) SetObserver(obs Observer) {
	w.observer = obs
}

// Run processes the full ledger snapshot taken at workflow start:
//
//   - pending requests are put to the decider; approve yields "approved",
//     deny yields "rejected: <reason>";
//   - already-terminal requests pass through unchanged but are still
//     re-encoded and re-written;
//   - after every request is processed, the entire updated sequence is
//     committed via a single RewriteAll.
//
// There is no partial commit. A decider error or a failed rewrite loses all
// decisions made in the pass; nothing is durable until the final rewrite
// succeeds.
func (w *Workflow) Run(d Decider) ([]types.CourseRequest, error) {
	snapshot := w.ledger.All()
	updated := make([]types.CourseRequest, 0, len(snapshot))

	for _, req := range snapshot {
		if w.observer.OnRequest != nil {
			w.observer.OnRequest(req)
		}

		if req.Status.IsPending() {
			decision, reason, err := d.Decide(req)
			if err != nil {
				return nil, fmt.Errorf("review aborted: %w", err)
			}
			switch decision {
			case Approve:
				req.Status = types.StatusApproved
			case Deny:
				req.Status = types.Rejected(reason)
			}
			if w.observer.OnDecision != nil {
				w.observer.OnDecision(req)
			}
		}

		updated = append(updated, req)
	}

	if err := w.ledger.RewriteAll(updated); err != nil {
		return nil, fmt.Errorf("commit review pass: %w", err)
	}
	return updated, nil
}
