package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rhyrak/course-planner/internal/csvio"
	"github.com/rhyrak/course-planner/internal/exporter"
	"github.com/rhyrak/course-planner/internal/service"
	"github.com/rhyrak/course-planner/pkg/model"
)

// export writes schedules to path, picking the format from its extension.
// Calendars hold only the best schedule.
func export(path string, schedules []model.Schedule, pc service.PlannerConfig) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return csvio.ExportSchedules(schedules, path)
	case ".ics":
		if pc.Term.Start.IsZero() {
			return fmt.Errorf("calendar export needs --term-start or TERM_START")
		}
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		if err := exporter.GenerateICS(schedules[0], pc.Term, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}
		return nil
	case ".pdf":
		data, err := exporter.NewPDFExporter(pc.FontPath).Render(schedules, "Weekly schedule")
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		return os.WriteFile(path, data, 0o644)
	default:
		return fmt.Errorf("unsupported export format %q, use .csv, .ics or .pdf", ext)
	}
}
