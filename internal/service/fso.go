package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	ev "github.com/fieldops/fieldforms/internal/events"
	"github.com/fieldops/fieldforms/internal/store"
	"github.com/fieldops/fieldforms/pkg/metrics"
)

type FSOService struct {
	store  store.Store
	events *ev.EventProducer
}

func NewFSOService(store store.Store, events *ev.EventProducer) *FSOService {
	return &FSOService{store: store, events: events}
}

func (s *FSOService) ListFSOs(ctx context.Context) ([]api.FSOData, error) {
	return s.store.FSO().List(ctx)
}

func (s *FSOService) ListByStatus(ctx context.Context, status api.FSOStatus) ([]api.FSOData, error) {
	return s.store.FSO().ByStatus(ctx, status)
}

// SaveFSO records one processed upload at the top of the feed.
func (s *FSOService) SaveFSO(ctx context.Context, fso api.FSOData) (*api.FSOData, error) {
	created, err := s.store.FSO().Create(ctx, fso)
	if err != nil {
		metrics.IncreaseFSOUploadsTotalMetric("error")
		return nil, err
	}

	metrics.IncreaseFSOUploadsTotalMetric("success")
	s.emit(ctx, ev.FSOUploadedKind, ev.FSOUploadedEvent{
		FSOID:    created.ID,
		FileName: created.FileName,
		FileSize: created.FileSize,
	})
	return created, nil
}

// ProcessUpload records the outcome of one upload flow. A failed response
// is passed through untouched; a successful one lands in the feed.
func (s *FSOService) ProcessUpload(ctx context.Context, resp *api.ProcessedFSOResponse) (*api.FSOData, error) {
	if resp == nil || !resp.Success || resp.Data == nil {
		metrics.IncreaseFSOUploadsTotalMetric("error")
		return nil, fmt.Errorf("upload was not processed")
	}
	return s.SaveFSO(ctx, *resp.Data)
}

func (s *FSOService) UpdateStatus(ctx context.Context, id string, status api.FSOStatus) (*api.FSOData, error) {
	fso, err := s.store.FSO().UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrFSONotFound(id)
		}
		return nil, err
	}

	metrics.IncreaseFSOStatusTransitionsMetric(string(status))
	s.emit(ctx, ev.FSOStatusChangedKind, ev.FSOStatusChangedEvent{FSOID: id, Status: status})
	return fso, nil
}

// GetDetail returns the enriched view of one record. Unknown IDs get a
// fabricated placeholder so detail links stay navigable even when the
// local feed was cleared.
func (s *FSOService) GetDetail(ctx context.Context, id string) (*api.FSODetailData, error) {
	fso, err := s.store.FSO().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			placeholder := placeholderFSO(id)
			fso = &placeholder
		} else {
			return nil, err
		}
	}
	detail := Enrich(*fso)
	return &detail, nil
}

// placeholderFSO fabricates a deterministic record for an ID the feed does
// not hold.
func placeholderFSO(id string) api.FSOData {
	h := enrichHash(id)
	return api.FSOData{
		ID:          id,
		ClientName:  "Cliente de Ejemplo",
		OrderNumber: fmt.Sprintf("ORD-%05d", h%100000),
		Address:     "Dirección no disponible",
		ServiceType: "Fibra Óptica",
		Status:      api.FSOStatusPending,
		UploadedAt:  time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
		FileName:    fmt.Sprintf("FSO_%05d.pdf", h%100000),
		FileSize:    int64(1024 + h%(9*1024*1024)),
	}
}

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count the way the feed displays it, e.g.
// "2.34 MB".
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	i := int(math.Log(float64(bytes)) / math.Log(1024))
	if i >= len(fileSizeUnits) {
		i = len(fileSizeUnits) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))
	return strconv.FormatFloat(math.Round(value*100)/100, 'f', -1, 64) + " " + fileSizeUnits[i]
}

var spanishMonths = []string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// FormatDate renders a timestamp in the es-MX short style, e.g.
// "15 ago 2025, 10:30".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d, %02d:%02d", t.Day(), spanishMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

func (s *FSOService) emit(ctx context.Context, kind string, event any) {
	if s.events == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.events.Write(ctx, kind, bytes.NewReader(payload)); err != nil {
		zap.S().Named("fso_service").Warnw("failed to emit event", "error", err)
	}
}
