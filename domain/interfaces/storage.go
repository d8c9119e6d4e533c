package interfaces

import "streampark_e2e/domain/entities"

// ReportStore defines the persistence of scenario run reports
type ReportStore interface {
	// SaveReport stores a finished run
	SaveReport(report entities.RunReport) error

	// LoadReports returns stored runs, oldest first
	LoadReports() ([]entities.RunReport, error)
}
