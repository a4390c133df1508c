// internal/services/diagnostics_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/custom-creations-api/internal/config"
	"github.com/javajoker/custom-creations-api/internal/database"
)

const (
	BackendRunning = "Running"

	DatabaseNotAvailable = "Not Available"
	DatabaseAvailable    = "Available"
	DatabaseWorking      = "Connected & Working"

	ConnectionConnected    = "Connected"
	ConnectionNotConnected = "Not Connected"

	EnvSet    = "Set"
	EnvNotSet = "Not Set"

	maxReportedCollections = 10
	maxReportedErrorLength = 50
)

// DiagnosticsReport describes the backend and database state. Values are
// status strings; configuration values themselves are never included.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type DiagnosticsService struct {
	store database.Store
	cfg   config.DatabaseConfig
}

func NewDiagnosticsService(store database.Store, cfg config.DatabaseConfig) *DiagnosticsService {
	return &DiagnosticsService{store: store, cfg: cfg}
}

// Report never fails: problems are described in the report instead.
func (s *DiagnosticsService) Report(ctx context.Context) (report DiagnosticsReport) {
	report = DiagnosticsReport{
		Backend:          BackendRunning,
		Database:         DatabaseNotAvailable,
		DatabaseURL:      envStatus(s.cfg.URL),
		DatabaseName:     envStatus(s.cfg.Name),
		ConnectionStatus: ConnectionNotConnected,
		Collections:      []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Diagnostics check panicked")
			report.Database = "Error: " + truncate(fmt.Sprint(r), maxReportedErrorLength)
		}
	}()

	if !database.Available(s.store) {
		return report
	}
	report.Database = DatabaseAvailable

	if err := s.store.Ping(ctx); err != nil {
		report.Database = DatabaseNotAvailable + ": " + truncate(err.Error(), maxReportedErrorLength)
		return report
	}
	report.ConnectionStatus = ConnectionConnected

	names, err := s.store.Collections(ctx)
	if err != nil {
		report.Database = "Connected but Error: " + truncate(err.Error(), maxReportedErrorLength)
		return report
	}
	if names == nil {
		names = []string{}
	}
	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	report.Collections = names
	report.Database = DatabaseWorking
	return report
}

func envStatus(value string) string {
	if value != "" {
		return EnvSet
	}
	return EnvNotSet
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
