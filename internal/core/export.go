package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
)

var ErrNothingToExport error = errors.New("no projects to export")

var exportHeader = []string{"Name", "Type", "StartDate", "EndDate", "Completed", "AttachedFilePath"}

// Exporter writes an owner's projects to a flat CSV file, overwriting any
// previous export at the same path.
type Exporter struct {
	logs  *zap.SugaredLogger
	store ProjectStore
}

func NewExporter(logger *zap.SugaredLogger, store ProjectStore) *Exporter {
	return &Exporter{
		logs:  logger,
		store: store,
	}
}

// ExportCSV writes a header row plus one row per project in listing order.
// With zero projects it returns ErrNothingToExport and touches no file.
func (e *Exporter) ExportCSV(ctx context.Context, ownerID uint, path string) error {
	projects, err := e.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("list projects for export: %w", err)
	}

	if len(projects) == 0 {
		return ErrNothingToExport
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	writer := csv.NewWriter(file)
	rows := make([][]string, 0, len(projects)+1)
	rows = append(rows, exportHeader)
	for _, project := range projects {
		rows = append(rows, []string{
			project.Name,
			project.Type,
			project.StartDate,
			project.EndDate,
			strconv.FormatBool(project.Completed),
			project.AttachedFilePath,
		})
	}

	err = writer.WriteAll(rows)
	if errClose := file.Close(); err == nil {
		err = errClose
	}
	if err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	e.logs.Infow("projects exported", "owner_id", ownerID, "path", path, "count", len(projects))
	return nil
}
