package service

import (
	"context"
	"strings"
	"time"

	"github.com/hollomarton/naplo/internal/domain"
	"github.com/hollomarton/naplo/internal/report"
	"github.com/hollomarton/naplo/internal/repository"
)

type searchService struct {
	entries repository.EntryRepo
}

// NewSearchService creates the dashboard search service.
func NewSearchService(entries repository.EntryRepo) SearchService {
	return &searchService{entries: entries}
}

func (s *searchService) Dashboard(ctx context.Context, q string, from, to *time.Time) (*report.SearchReport, error) {
	q = strings.TrimSpace(q)

	// No query means no search: a date range alone keeps the dashboard
	// empty until something is typed.
	if q == "" {
		return report.EmptySearchReport(q), nil
	}

	candidates, err := s.entries.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var matches []*domain.Entry
	for _, e := range candidates {
		if report.MatchEntry(e, q) {
			matches = append(matches, e)
		}
	}
	return report.BuildSearchReport(q, matches), nil
}
