package upload

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
)

var _ Processor = (*MockProcessor)(nil)

// MockProcessor fabricates the backend response for one uploaded PDF,
// standing in for the real document pipeline.
type MockProcessor struct {
	now         func() time.Time
	orderNumber func() string
}

type ProcessorOption func(*MockProcessor)

func WithNow(fn func() time.Time) ProcessorOption {
	return func(p *MockProcessor) {
		p.now = fn
	}
}

func WithOrderNumberFunc(fn func() string) ProcessorOption {
	return func(p *MockProcessor) {
		p.orderNumber = fn
	}
}

func NewMockProcessor(opts ...ProcessorOption) *MockProcessor {
	p := &MockProcessor{
		now:         time.Now,
		orderNumber: func() string { return fmt.Sprintf("ORD-%d", rand.IntN(10000)) },
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *MockProcessor) Process(_ context.Context, file api.PDFFile) (*api.ProcessedFSOResponse, error) {
	now := p.now().UTC()
	processed := now
	return &api.ProcessedFSOResponse{
		Success: true,
		Message: "Archivo procesado exitosamente",
		Data: &api.FSOData{
			ID:          fmt.Sprintf("fso_%d", now.UnixMilli()),
			ClientName:  "Cliente de Ejemplo",
			OrderNumber: p.orderNumber(),
			Address:     "Dirección extraída del PDF",
			ServiceType: "Fibra Óptica",
			Status:      api.FSOStatusCompleted,
			UploadedAt:  now,
			ProcessedAt: &processed,
			FileName:    file.Name,
			FileSize:    file.Size,
		},
	}, nil
}
