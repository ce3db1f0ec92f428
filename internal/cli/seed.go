package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AshishBinoy/traindesk/internal/config"
	"github.com/AshishBinoy/traindesk/internal/record"
	"github.com/AshishBinoy/traindesk/pkg/types"
)

// seedFixture is the YAML shape accepted by the seed command:
//
//	employees:
//	  - username: emp@ana
//	    role: dev
//	    skills: [python, go]
//	trainings:
//	  - language: python
//	    date: 2024-05-01
//	requests:
//	  - employee: emp@ana
//	    course: python
//	    date: 2024-05-01
//	    status: pending
type seedFixture struct {
	Employees []struct {
		Username string   `yaml:"username"`
		Role     string   `yaml:"role"`
		Skills   []string `yaml:"skills"`
	} `yaml:"employees"`
	Trainings []struct {
		Language string `yaml:"language"`
		Date     string `yaml:"date"`
	} `yaml:"trainings"`
	Requests []struct {
		Employee string `yaml:"employee"`
		Course   string `yaml:"course"`
		Date     string `yaml:"date"`
		Status   string `yaml:"status"`
	} `yaml:"requests"`
}

func buildSeedCommand() *cobra.Command {
	var fixtureFile string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the record stores from a YAML fixture",
		Long:  "Read employees, trainings and course requests from a YAML file and write the three record stores under FILE_PATH, replacing any existing content.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return seedStores(cmd, cfg, fixtureFile)
		},
	}

	cmd.Flags().StringVarP(&fixtureFile, "file", "f", "", "YAML file containing the seed records")
	cmd.MarkFlagRequired("file")

	return cmd
}

func seedStores(cmd *cobra.Command, cfg *config.Config, fixtureFile string) error {
	data, err := os.ReadFile(fixtureFile)
	if err != nil {
		return fmt.Errorf("read fixture file: %w", err)
	}

	var fixture seedFixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return fmt.Errorf("parse fixture file: %w", err)
	}

	if err := os.MkdirAll(cfg.BaseDir, 0755); err != nil {
		return fmt.Errorf("create base directory: %w", err)
	}

	var employees []string
	for _, e := range fixture.Employees {
		employees = append(employees, record.EncodeEmployee(types.Employee{
			Username: e.Username,
			Role:     e.Role,
			Skills:   e.Skills,
		}))
	}
	if err := writeRecordFile(cfg.EmployeesPath(), employees); err != nil {
		return err
	}

	var trainings []string
	for _, tr := range fixture.Trainings {
		trainings = append(trainings, record.EncodeTraining(types.Training{
			Language: tr.Language,
			Date:     tr.Date,
		}))
	}
	if err := writeRecordFile(cfg.TrainingsPath(), trainings); err != nil {
		return err
	}

	var requests []string
	for _, r := range fixture.Requests {
		status := r.Status
		if status == "" {
			status = string(types.StatusPending)
		}
		requests = append(requests, record.EncodeRequest(types.CourseRequest{
			EmployeeName: r.Employee,
			CourseName:   r.Course,
			Date:         r.Date,
			Status:       types.RequestStatus(status),
		}))
	}
	if err := writeRecordFile(cfg.RequestsPath(), requests); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d employees, %d trainings, %d requests into %s\n",
		len(fixture.Employees), len(fixture.Trainings), len(fixture.Requests), cfg.BaseDir)
	return nil
}

func writeRecordFile(path string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write record store %s: %w", path, err)
	}
	return nil
}
