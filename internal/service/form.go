package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	ev "github.com/fieldops/fieldforms/internal/events"
	"github.com/fieldops/fieldforms/internal/session"
	"github.com/fieldops/fieldforms/internal/store"
	"github.com/fieldops/fieldforms/pkg/metrics"
)

type FormService struct {
	store  store.Store
	events *ev.EventProducer
}

func NewFormService(store store.Store, events *ev.EventProducer) *FormService {
	return &FormService{store: store, events: events}
}

func (s *FormService) ListForms(ctx context.Context) ([]api.StoredForm, error) {
	return s.store.Form().List(ctx)
}

func (s *FormService) GetForm(ctx context.Context, id string) (*api.StoredForm, error) {
	form, err := s.store.Form().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrFormNotFound(id)
		}
		return nil, err
	}
	return form, nil
}

// SaveSubmitted persists one accepted wizard payload as a completed record.
func (s *FormService) SaveSubmitted(ctx context.Context, data api.FormData) (*api.StoredForm, error) {
	form, err := s.store.Form().Create(ctx, store.FormCreate{
		ID:       data.ID,
		FormData: data,
		Status:   api.FormStatusCompleted,
	})
	if err != nil {
		metrics.IncreaseFormsSubmittedTotalMetric("error")
		return nil, err
	}

	metrics.IncreaseFormsSubmittedTotalMetric("success")
	s.emitSubmitted(ctx, form)
	return form, nil
}

// SaveDraft persists a partially filled payload for later completion. The
// caller decides through the flexible gate when a draft is worth keeping.
func (s *FormService) SaveDraft(ctx context.Context, data api.FormData) (*api.StoredForm, error) {
	return s.store.Form().Create(ctx, store.FormCreate{
		ID:       data.ID,
		FormData: data,
		Status:   api.FormStatusDraft,
	})
}

// PersistHook adapts SaveSubmitted to the wizard's write-through hook.
func (s *FormService) PersistHook() session.PersistFunc {
	return func(ctx context.Context, data api.FormData, _ *api.SubmitResult) error {
		_, err := s.SaveSubmitted(ctx, data)
		return err
	}
}

func (s *FormService) UpdateForm(ctx context.Context, id string, update store.FormUpdate) (*api.StoredForm, error) {
	form, err := s.store.Form().Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrFormNotFound(id)
		}
		return nil, err
	}
	return form, nil
}

func (s *FormService) DeleteForm(ctx context.Context, id string) error {
	removed, err := s.store.Form().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return NewErrFormNotFound(id)
	}
	return nil
}

func (s *FormService) emitSubmitted(ctx context.Context, form *api.StoredForm) {
	if s.events == nil {
		return
	}
	payload, err := json.Marshal(ev.FormSubmittedEvent{
		FormID:      form.ID,
		OrderNumber: form.OrderNumber,
		Technician:  form.TechnicianName,
	})
	if err != nil {
		return
	}
	if err := s.events.Write(ctx, ev.FormSubmittedKind, bytes.NewReader(payload)); err != nil {
		zap.S().Named("form_service").Warnw("failed to emit event", "error", err)
	}
}
