// Package enroll implements the employee side of the enrollment process:
// browsing the trainings that match a skill set and submitting an
// application to the request ledger.
package enroll

import (
	"errors"
	"fmt"

	"github.com/AshishBinoy/traindesk/internal/store"
	"github.com/AshishBinoy/traindesk/pkg/types"
)

// ErrInvalidTrainingChoice means the chosen language has no training in the
// catalog. Not fatal: the submission is simply skipped.
var ErrInvalidTrainingChoice = errors.New("invalid training choice")

// Service wires the training catalog and the request ledger for an employee
// session.
type Service struct {
	catalog *store.TrainingCatalog
	ledger  *store.Ledger
}

// NewService builds an enrollment service over explicitly constructed stores.
func NewService(catalog *store.TrainingCatalog, ledger *store.Ledger) *Service {
	return &Service{catalog: catalog, ledger: ledger}
}

// EligibleTrainings returns the trainings whose language appears in the
// employee's skill set, in catalog order.
func (s *Service) EligibleTrainings(id types.Identity) []types.Training {
	var eligible []types.Training
	for _, tr := range s.catalog.All() {
		for _, skill := range id.Skills {
			if tr.Language == skill {
				eligible = append(eligible, tr)
				break
			}
		}
	}
	return eligible
}

// Apply submits a pending course request for the given language. The choice
// is valid when the catalog carries a training for that exact language;
// whether it matches the employee's own skills is not re-checked here, the
// catalog is the only authority.
func (s *Service) Apply(id types.Identity, language string) (types.CourseRequest, error) {
	tr, err := s.catalog.FindByLanguage(language)
	if err != nil {
		return types.CourseRequest{}, ErrInvalidTrainingChoice
	}

	req := types.CourseRequest{
		EmployeeName: id.Username,
		CourseName:   tr.Language,
		Date:         tr.Date,
		Status:       types.StatusPending,
	}
	if err := s.ledger.Append(req); err != nil {
		return types.CourseRequest{}, fmt.Errorf("save course request: %w", err)
	}
	return req, nil
}
