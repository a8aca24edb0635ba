package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hollomarton/naplo/internal/importer"
	"github.com/hollomarton/naplo/internal/repository"
)

type importService struct {
	entries repository.EntryRepo
	now     func() time.Time
}

// NewImportService creates the bulk spreadsheet loader. Import is an
// offline batch operation with no concurrent writers; label registration
// is left to a later backfill run.
func NewImportService(entries repository.EntryRepo) ImportService {
	return &importService{entries: entries, now: time.Now}
}

func (s *importService) ImportCSV(ctx context.Context, path string) (ImportResult, error) {
	var res ImportResult

	rows, err := importer.ReadFile(path)
	if err != nil {
		return res, err
	}

	for _, row := range rows {
		if row.Blank() {
			continue
		}

		e, err := importer.ConvertRow(row)
		if err != nil {
			res.Skipped++
			continue
		}

		e.ID = uuid.New().String()
		e.CreatedAt = s.now().UTC()
		// Recompute from the clock times, same as interactive entry;
		// the export's duration column only covers rows missing a time.
		e.NormalizeDuration()

		if err := s.entries.Create(ctx, e); err != nil {
			res.Skipped++
			continue
		}
		res.Created++
	}

	return res, nil
}
