package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/AshishBinoy/traindesk/internal/auth"
	"github.com/AshishBinoy/traindesk/internal/config"
	"github.com/AshishBinoy/traindesk/internal/enroll"
	"github.com/AshishBinoy/traindesk/internal/metrics"
	"github.com/AshishBinoy/traindesk/internal/review"
	"github.com/AshishBinoy/traindesk/internal/store"
	"github.com/AshishBinoy/traindesk/pkg/types"
)

// ErrAuthFailed is returned by Session.Run when login fails; the process
// exits with status 1, no retry is offered within the run.
var ErrAuthFailed = errors.New("authentication failed")

// Session is one interactive console run: load the stores, log a user in,
// then either take one enrollment application (employee) or one full review
// pass (manager). Strictly sequential; the only suspension points are the
// console prompts.
type Session struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Collector

	in  *bufio.Reader
	out io.Writer
}

// NewSession builds a session over injected console streams. The metrics
// collector may be nil.
func NewSession(cfg *config.Config, logger *zap.Logger, collector *metrics.Collector, in io.Reader, out io.Writer) *Session {
	return &Session{
		cfg:     cfg,
		log:     logger,
		metrics: collector,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// readLine reads one trimmed input line from the console.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// prompt prints the prompt text and reads the answer.
func (s *Session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	return s.readLine()
}

// Run executes the whole session. Store-load failures are reported and
// degrade to empty stores; only authentication failures end the run early.
func (s *Session) Run() error {
	employees, err := store.LoadEmployees(s.cfg.EmployeesPath())
	if err != nil {
		fmt.Fprintln(s.out, "Error: unable to read employees' data from the file.")
		s.log.Warn("employee store unreadable", zap.Error(err))
		s.countLoadError()
	}
	trainings, err := store.LoadTrainings(s.cfg.TrainingsPath())
	if err != nil {
		fmt.Fprintln(s.out, "Error: unable to read trainings' data from the file.")
		s.log.Warn("training catalog unreadable", zap.Error(err))
		s.countLoadError()
	}
	ledger, err := store.LoadLedger(s.cfg.RequestsPath())
	if err != nil {
		fmt.Fprintln(s.out, "Error: unable to read course requests from the file.")
		s.log.Warn("request ledger unreadable", zap.Error(err))
		s.countLoadError()
	}
	s.updateLedgerStats(ledger)

	username, err := s.prompt("Enter your username: ")
	if err != nil {
		return fmt.Errorf("read username: %w", err)
	}
	password, err := s.prompt("Enter your password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	gate := auth.NewGate(s.cfg.Secret, employees)
	id, err := gate.Authenticate(username, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAuthenticationFailed):
			fmt.Fprintln(s.out, "Invalid username/password. Authentication failed.")
		default:
			fmt.Fprintln(s.out, "Invalid username/password. Please enter a valid username.")
		}
		s.log.Info("login rejected", zap.String("username", username), zap.Error(err))
		return ErrAuthFailed
	}

	s.log.Info("login accepted",
		zap.String("username", id.Username),
		zap.String("role", string(id.Role)))
	if s.metrics != nil {
		s.metrics.RecordSession(string(id.Role))
	}

	switch id.Role {
	case types.RoleEmployee:
		return s.runEmployee(id, trainings, ledger)
	case types.RoleManager:
		return s.runManager(ledger)
	default:
		return fmt.Errorf("unhandled identity role %q", id.Role)
	}
}

// runEmployee lists the trainings matching the employee's skills and takes
// one application.
func (s *Session) runEmployee(id types.Identity, trainings *store.TrainingCatalog, ledger *store.Ledger) error {
	svc := enroll.NewService(trainings, ledger)

	fmt.Fprintf(s.out, "Available Trainings for %s:\n", id.Username)
	for _, tr := range svc.EligibleTrainings(id) {
		fmt.Fprintf(s.out, "%s - %s\n", tr.Language, tr.Date)
	}

	choice, err := s.prompt("Enter the training you want to apply for: ")
	if err != nil {
		return fmt.Errorf("read training choice: %w", err)
	}

	req, err := svc.Apply(id, choice)
	switch {
	case errors.Is(err, enroll.ErrInvalidTrainingChoice):
		// Not fatal; the submission is simply skipped.
		fmt.Fprintln(s.out, "Invalid training choice. Please choose from the available trainings.")
		return nil
	case err != nil:
		fmt.Fprintln(s.out, "Error: unable to save course request.")
		s.log.Error("course request append failed", zap.Error(err))
		s.countWriteError()
		return err
	}

	fmt.Fprintf(s.out, "Application successful. You have applied for the training in %s on %s.\n",
		req.CourseName, req.Date)
	s.log.Info("course request submitted",
		zap.String("employee", req.EmployeeName),
		zap.String("course", req.CourseName))
	if s.metrics != nil {
		s.metrics.RecordSubmitted()
	}
	return nil
}

// runManager walks every course request, prompting for a decision on each
// pending one, then commits the full rewrite.
func (s *Session) runManager(ledger *store.Ledger) error {
	fmt.Fprintln(s.out, "Course Requests:")

	w := review.NewWorkflow(ledger)
	w.SetObserver(review.Observer{
		OnRequest: func(req types.CourseRequest) {
			fmt.Fprintf(s.out, "Employee: %s, Course: %s, Date: %s, Status: %s\n",
				req.EmployeeName, req.CourseName, req.Date, req.Status)
		},
		OnDecision: func(req types.CourseRequest) {
			if s.metrics == nil {
				return
			}
			if req.Status.IsRejected() {
				s.metrics.RecordRejected()
			} else {
				s.metrics.RecordApproved()
			}
		},
	})

	updated, err := w.Run(s.consoleDecider())
	if err != nil {
		fmt.Fprintln(s.out, "Error: unable to update course requests.")
		s.log.Error("review pass failed", zap.Error(err))
		s.countWriteError()
		return err
	}

	fmt.Fprintln(s.out, "Course requests updated successfully.")
	s.log.Info("review pass committed", zap.Int("requests", len(updated)))
	s.updateLedgerStats(ledger)
	return nil
}

// consoleDecider prompts approve/deny for one pending request, re-asking on
// anything that is not y or n, and collects the denial reason.
func (s *Session) consoleDecider() review.Decider {
	return review.DeciderFunc(func(req types.CourseRequest) (review.Decision, string, error) {
		for {
			answer, err := s.prompt("Approve (y/n): ")
			if err != nil {
				return 0, "", fmt.Errorf("read decision: %w", err)
			}
			switch strings.ToLower(answer) {
			case "y":
				return review.Approve, "", nil
			case "n":
				reason, err := s.prompt("Enter the reason for denial: ")
				if err != nil {
					return 0, "", fmt.Errorf("read denial reason: %w", err)
				}
				return review.Deny, reason, nil
			}
		}
	})
}

func (s *Session) countLoadError() {
	if s.metrics != nil {
		s.metrics.RecordStoreLoadError()
	}
}

func (s *Session) countWriteError() {
	if s.metrics != nil {
		s.metrics.RecordLedgerWriteError()
	}
}

func (s *Session) updateLedgerStats(ledger *store.Ledger) {
	if s.metrics == nil {
		return
	}
	pending := 0
	for _, req := range ledger.All() {
		if req.Status.IsPending() {
			pending++
		}
	}
	s.metrics.UpdateLedgerStats(ledger.Len(), pending)
}
