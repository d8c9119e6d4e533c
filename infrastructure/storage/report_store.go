package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"streampark_e2e/domain/entities"
	"streampark_e2e/domain/interfaces"

	"github.com/spf13/afero"
)

const reportsDir = "reports"

type reportStore struct {
	fs  afero.Fs
	dir string
}

// NewReportStore - creates run report storage under stateDir
func NewReportStore(fs afero.Fs, stateDir string) (interfaces.ReportStore, error) {
	dir := filepath.Join(stateDir, reportsDir)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	return &reportStore{
		fs:  fs,
		dir: dir,
	}, nil
}

// SaveReport - writes one JSON file per run
func (s *reportStore) SaveReport(report entities.RunReport) error {
	if report.ID == "" {
		return fmt.Errorf("report has no id")
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s-%s.json", report.StartedAt.UTC().Format("20060102T150405.000000000"), report.ID)
	return afero.WriteFile(s.fs, filepath.Join(s.dir, name), data, 0644)
}

// LoadReports - reads every stored run, oldest first
func (s *reportStore) LoadReports() ([]entities.RunReport, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []entities.RunReport{}, nil
		}
		return nil, err
	}

	reports := make([]entities.RunReport, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".json") {
			continue
		}

		data, err := afero.ReadFile(s.fs, filepath.Join(s.dir, info.Name()))
		if err != nil {
			return nil, err
		}

		var report entities.RunReport
		if err := json.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", info.Name(), err)
		}
		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].StartedAt.Before(reports[j].StartedAt)
	})

	return reports, nil
}
