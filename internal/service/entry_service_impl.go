package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hollomarton/naplo/internal/db"
	"github.com/hollomarton/naplo/internal/domain"
	"github.com/hollomarton/naplo/internal/repository"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 50

	// A fresh form proposes a half-hour block.
	defaultBlockLength = 30 * time.Minute
)

type entryService struct {
	entries repository.EntryRepo
	uow     db.UnitOfWork
	now     func() time.Time
}

// NewEntryService creates the entry workflow service.
func NewEntryService(entries repository.EntryRepo, uow db.UnitOfWork) EntryService {
	return &entryService{entries: entries, uow: uow, now: time.Now}
}

func (s *entryService) Create(ctx context.Context, e *domain.Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = s.now().UTC()
	e.NormalizeDuration()
	if err := e.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteEntryRepo(tx).Create(ctx, e); err != nil {
			return err
		}
		return registerLabels(ctx, repository.NewSQLiteParamRepo(tx), e)
	})
}

func (s *entryService) Update(ctx context.Context, e *domain.Entry) error {
	e.NormalizeDuration()
	if err := e.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteEntryRepo(tx).Update(ctx, e); err != nil {
			return err
		}
		return registerLabels(ctx, repository.NewSQLiteParamRepo(tx), e)
	})
}

// registerLabels records any new label value in the registry so it shows
// up in future choice lists.
func registerLabels(ctx context.Context, params repository.ParamRepo, e *domain.Entry) error {
	for _, typ := range domain.AllLabelTypes {
		v := strings.TrimSpace(e.LabelValue(typ))
		if v == "" {
			continue
		}
		if _, err := params.GetOrCreate(ctx, typ, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *entryService) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *entryService) ListRecent(ctx context.Context, limit int) ([]*domain.Entry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.entries.ListRecent(ctx, limit)
}

func (s *entryService) RecentByCategory(ctx context.Context, category string, limit int) ([]*domain.Entry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.entries.ListByCategory(ctx, category, limit)
}

func (s *entryService) FormDefaults(ctx context.Context, category string) (*FormDefaults, error) {
	d := &FormDefaults{}

	start := s.now().UTC().Truncate(time.Minute)
	if last, err := s.entries.Latest(ctx); err == nil {
		if end := last.EndDateTime(); !end.IsZero() {
			start = end
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	d.Date = domain.DateOnly(start)
	d.Start = start
	d.End = start.Add(defaultBlockLength)

	if category != "" {
		prev, err := s.entries.LatestByCategory(ctx, category)
		switch {
		case err == nil:
			d.Category = prev.Category
			d.RelatedTo = prev.RelatedTo
			d.Role = prev.Role
			d.Emotion = prev.Emotion
			d.Goal = prev.Goal
			d.Activity = prev.Activity
		case errors.Is(err, repository.ErrNotFound):
			d.Category = category
		default:
			return nil, err
		}
	}

	return d, nil
}
