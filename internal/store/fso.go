package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	"github.com/fieldops/fieldforms/internal/kv"
)

const fsoKey = "fso_data"

type FSO interface {
	List(ctx context.Context) ([]api.FSOData, error)
	ByStatus(ctx context.Context, status api.FSOStatus) ([]api.FSOData, error)
	Create(ctx context.Context, fso api.FSOData) (*api.FSOData, error)
	Get(ctx context.Context, id string) (*api.FSOData, error)
	UpdateStatus(ctx context.Context, id string, status api.FSOStatus) (*api.FSOData, error)
}

type FSOStore struct {
	db  kv.KV
	log *zap.SugaredLogger
}

// Make sure we conform to FSO interface
var _ FSO = (*FSOStore)(nil)

func NewFSO(db kv.KV) FSO {
	return &FSOStore{db: db, log: zap.S().Named("fso_store")}
}

// List returns the feed newest-first. A feed that was never written is
// seeded with the demo fixtures and persisted, so every install starts
// with a populated list.
func (s *FSOStore) List(ctx context.Context) ([]api.FSOData, error) {
	return s.load(ctx)
}

func (s *FSOStore) ByStatus(ctx context.Context, status api.FSOStatus) ([]api.FSOData, error) {
	fsos, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return fsos, nil
	}
	return funk.Filter(fsos, func(fso api.FSOData) bool {
		return fso.Status == status
	}).([]api.FSOData), nil
}

// Create prepends, keeping the newest upload first.
func (s *FSOStore) Create(ctx context.Context, fso api.FSOData) (*api.FSOData, error) {
	fsos, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	fsos = append([]api.FSOData{fso}, fsos...)
	if err := s.save(ctx, fsos); err != nil {
		return nil, err
	}
	return &fso, nil
}

func (s *FSOStore) Get(ctx context.Context, id string) (*api.FSOData, error) {
	fsos, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range fsos {
		if fsos[i].ID == id {
			return &fsos[i], nil
		}
	}
	return nil, ErrRecordNotFound
}

// UpdateStatus changes one record's status. Moving to completed stamps
// ProcessedAt; every other transition leaves it as it was.
func (s *FSOStore) UpdateStatus(ctx context.Context, id string, status api.FSOStatus) (*api.FSOData, error) {
	fsos, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range fsos {
		if fsos[i].ID != id {
			continue
		}
		fsos[i].Status = status
		if status == api.FSOStatusCompleted {
			now := time.Now().UTC()
			fsos[i].ProcessedAt = &now
		}
		if err := s.save(ctx, fsos); err != nil {
			return nil, err
		}
		return &fsos[i], nil
	}
	return nil, ErrRecordNotFound
}

func (s *FSOStore) load(ctx context.Context) ([]api.FSOData, error) {
	raw, err := s.db.Get(ctx, fsoKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		fsos := SeedFSOData()
		if err := s.save(ctx, fsos); err != nil {
			return nil, err
		}
		return fsos, nil
	}
	if err != nil {
		return nil, err
	}

	var fsos []api.FSOData
	if err := json.Unmarshal(raw, &fsos); err != nil {
		// A corrupt feed is not re-seeded; the key exists, so the
		// install already had data.
		s.log.Errorw("discarding corrupt fso feed", "error", err)
		return []api.FSOData{}, nil
	}
	return fsos, nil
}

func (s *FSOStore) save(ctx context.Context, fsos []api.FSOData) error {
	raw, err := json.Marshal(fsos)
	if err != nil {
		return errors.Wrap(err, "encoding fso feed")
	}
	return s.db.Set(ctx, fsoKey, raw)
}
