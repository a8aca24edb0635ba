package service

import (
	"context"
	"errors"
	"time"

	"github.com/hollomarton/naplo/internal/domain"
	"github.com/hollomarton/naplo/internal/report"
	"github.com/hollomarton/naplo/internal/repository"
)

type reportService struct {
	entries repository.EntryRepo
	now     func() time.Time
}

// NewReportService creates the aggregation report service.
func NewReportService(entries repository.EntryRepo) ReportService {
	return &reportService{entries: entries, now: time.Now}
}

func (s *reportService) CategorySummary(ctx context.Context, from, to time.Time) ([]report.CategoryMinutes, error) {
	entries, err := s.entries.ListRange(ctx, &from, &to)
	if err != nil {
		return nil, err
	}
	return report.BuildRangeSummary(entries, report.SleepCategory), nil
}

func (s *reportService) CategoryEntries(ctx context.Context, from, to time.Time, category string) ([]report.EntryView, error) {
	entries, err := s.entries.ListRangeByCategory(ctx, from, to, category)
	if err != nil {
		return nil, err
	}
	views := make([]report.EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, report.NewEntryView(e))
	}
	return views, nil
}

func (s *reportService) DayOverview(ctx context.Context, date *time.Time) (*report.DayOverview, error) {
	var d time.Time
	switch {
	case date != nil:
		d = domain.DateOnly(*date)
	default:
		last, err := s.entries.LatestByDay(ctx)
		switch {
		case err == nil:
			d = last.Date
		case errors.Is(err, repository.ErrNotFound):
			d = domain.DateOnly(s.now().UTC())
		default:
			return nil, err
		}
	}

	entries, err := s.entries.ListByDate(ctx, d)
	if err != nil {
		return nil, err
	}
	return report.BuildDayOverview(d, entries), nil
}
