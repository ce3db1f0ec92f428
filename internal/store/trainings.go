package store

import (
	"github.com/AshishBinoy/traindesk/internal/record"
	"github.com/AshishBinoy/traindesk/pkg/types"
)

// TrainingCatalog holds the training offerings in file order. Read-only
// after load.
type TrainingCatalog struct {
	trainings []types.Training
}

// LoadTrainings reads the training record file, mirroring LoadEmployees.
func LoadTrainings(path string) (*TrainingCatalog, error) {
	lines, err := readLines(path)
	c := &TrainingCatalog{}
	for _, line := range lines {
		c.trainings = append(c.trainings, record.ParseTraining(line))
	}
	return c, err
}

// FindByLanguage returns the first training for the given language.
// Linear scan, case-sensitive, first match wins.
func (c *TrainingCatalog) FindByLanguage(lang string) (types.Training, error) {
	for _, tr := range c.trainings {
		if tr.Language == lang {
			return tr, nil
		}
	}
	return types.Training{}, ErrTrainingNotFound
}

// All returns the trainings as loaded, insertion order = file order.
func (c *TrainingCatalog) All() []types.Training {
	return c.trainings
}

// Len returns the number of loaded training records.
func (c *TrainingCatalog) Len() int {
	return len(c.trainings)
}
