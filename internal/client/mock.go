package client

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
)

const (
	msgMockSuccess = "Formulario enviado exitosamente (mock)"
	msgMockFailure = "Error simulado al enviar el formulario (mock)"
)

var _ Submitter = (*MockSubmitter)(nil)

// MockSubmitter simulates the backend with a fixed delay and a scripted
// outcome sequence, for development without connectivity.
type MockSubmitter struct {
	delay    time.Duration
	outcomes []bool
	next     int
	idFunc   func() string
}

type MockOption func(*MockSubmitter)

func WithDelay(d time.Duration) MockOption {
	return func(m *MockSubmitter) {
		m.delay = d
	}
}

// WithOutcomes scripts the results; the sequence cycles once exhausted.
func WithOutcomes(outcomes ...bool) MockOption {
	return func(m *MockSubmitter) {
		m.outcomes = outcomes
	}
}

func WithIDFunc(fn func() string) MockOption {
	return func(m *MockSubmitter) {
		m.idFunc = fn
	}
}

func NewMockSubmitter(opts ...MockOption) *MockSubmitter {
	m := &MockSubmitter{
		delay:    2 * time.Second,
		outcomes: []bool{true},
		idFunc:   func() string { return ulid.Make().String() },
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *MockSubmitter) Submit(ctx context.Context, _ api.FormData) (*api.SubmitResult, error) {
	select {
	case <-time.After(m.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	ok := m.outcomes[m.next%len(m.outcomes)]
	m.next++

	if !ok {
		return &api.SubmitResult{Success: false, Message: msgMockFailure}, nil
	}
	return &api.SubmitResult{
		Success: true,
		Message: msgMockSuccess,
		Data:    &api.SubmitReceipt{ID: m.idFunc()},
	}, nil
}
