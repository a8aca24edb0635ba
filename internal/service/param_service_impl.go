package service

import (
	"context"
	"strings"

	"github.com/hollomarton/naplo/internal/domain"
	"github.com/hollomarton/naplo/internal/repository"
)

type paramService struct {
	entries repository.EntryRepo
	params  repository.ParamRepo
}

// NewParamService creates the label registry service.
func NewParamService(entries repository.EntryRepo, params repository.ParamRepo) ParamService {
	return &paramService{entries: entries, params: params}
}

func (s *paramService) Backfill(ctx context.Context) (BackfillResult, error) {
	var res BackfillResult
	for _, typ := range domain.AllLabelTypes {
		values, err := s.entries.DistinctValues(ctx, typ)
		if err != nil {
			return res, err
		}
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			res.Seen++
			created, err := s.params.GetOrCreate(ctx, typ, v)
			if err != nil {
				return res, err
			}
			if created {
				res.Created++
			}
		}
	}
	return res, nil
}

func (s *paramService) Choices(ctx context.Context) (map[domain.LabelType][]string, error) {
	choices := make(map[domain.LabelType][]string, len(domain.AllLabelTypes))
	for _, typ := range domain.AllLabelTypes {
		names, err := s.params.ListNames(ctx, typ)
		if err != nil {
			return nil, err
		}
		choices[typ] = names
	}
	return choices, nil
}
