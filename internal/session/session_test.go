package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	"github.com/fieldops/fieldforms/internal/session"
)

type fakeSubmitter struct {
	calls  int
	last   api.FormData
	result *api.SubmitResult
	err    error
	panics bool
}

func (f *fakeSubmitter) Submit(_ context.Context, data api.FormData) (*api.SubmitResult, error) {
	f.calls++
	f.last = data
	if f.panics {
		panic("boom")
	}
	return f.result, f.err
}

func okSubmitter() *fakeSubmitter {
	return &fakeSubmitter{result: &api.SubmitResult{
		Success: true,
		Message: "Formulario enviado exitosamente",
		Data:    &api.SubmitReceipt{ID: "srv-1"},
	}}
}

func fillComplete(t *testing.T, s *session.Session) {
	t.Helper()
	values := map[string]any{
		"email":              "tecnico@fibra.mx",
		"numeroOrden":        "ORD-1001",
		"tipoFSO":            "Instalación Nueva",
		"companiaInspeccion": "Inspecciones del Norte",
		"nombreTecnico":      "Pedro González",
		"metrosDrop":         "45",
		"potenciaCorrecta":   "-18.5 dBm",
		"puntuacionCliente":  "9",
		"telefonoCliente":    int64(5215551234567),
		"nombreCliente":      "Ana Martínez",
		"comentariosCaso":    "Sin novedades.",
	}
	for name, value := range values {
		require.NoError(t, s.UpdateField(name, value))
	}
}

func TestUpdateFieldClearsErrorAndResult(t *testing.T) {
	s := session.New(okSubmitter())

	assert.False(t, s.ValidateFormData())
	assert.Contains(t, s.Errors(), "numeroOrden")

	require.NoError(t, s.UpdateField("numeroOrden", "ORD-1"))
	assert.NotContains(t, s.Errors(), "numeroOrden")
	// Other errors stay until re-validated.
	assert.Contains(t, s.Errors(), "email")
}

func TestValidateSingleField(t *testing.T) {
	s := session.New(okSubmitter())

	require.NoError(t, s.UpdateField("email", "broken@"))
	assert.False(t, s.ValidateSingleField("email"))
	assert.Equal(t, "Formato de correo inválido", s.Errors()["email"])

	require.NoError(t, s.UpdateField("email", "a@b.co"))
	assert.True(t, s.ValidateSingleField("email"))
	assert.NotContains(t, s.Errors(), "email")
}

func TestStepNavigationBounds(t *testing.T) {
	s := session.New(okSubmitter())

	assert.Equal(t, 1, s.CurrentStep())
	s.PrevStep()
	assert.Equal(t, 1, s.CurrentStep())

	for i := 0; i < session.StepCount()+3; i++ {
		s.NextStep()
	}
	assert.Equal(t, session.StepCount(), s.CurrentStep())
}

func TestIsCurrentStepValid(t *testing.T) {
	s := session.New(okSubmitter())

	// Step 1 needs its four text fields.
	assert.False(t, s.IsCurrentStepValid())
	require.NoError(t, s.UpdateField("numeroOrden", "ORD-1"))
	require.NoError(t, s.UpdateField("tipoFSO", "Instalación Nueva"))
	require.NoError(t, s.UpdateField("companiaInspeccion", "Inspecciones"))
	require.NoError(t, s.UpdateField("nombreTecnico", "Pedro"))
	assert.True(t, s.IsCurrentStepValid())

	// Step 2 is all toggles, valid with no input at all.
	s.NextStep()
	assert.True(t, s.IsCurrentStepValid())

	// Step 3 requires the drop meters to parse as a number.
	s.NextStep()
	assert.False(t, s.IsCurrentStepValid())
	require.NoError(t, s.UpdateField("metrosDrop", "cuarenta"))
	assert.False(t, s.IsCurrentStepValid())
	require.NoError(t, s.UpdateField("metrosDrop", "45"))
	assert.True(t, s.IsCurrentStepValid())
}

func TestSubmitFormInvalidJumpsToFirstOffendingStep(t *testing.T) {
	sub := okSubmitter()
	s := session.New(sub)
	fillComplete(t, s)
	require.NoError(t, s.UpdateField("metrosDrop", ""))

	for s.CurrentStep() < session.StepCount() {
		s.NextStep()
	}

	assert.False(t, s.SubmitForm(context.Background()))
	assert.Equal(t, 0, sub.calls)
	// metrosDrop lives on step 3.
	assert.Equal(t, 3, s.CurrentStep())
	assert.Contains(t, s.Errors(), "metrosDrop")
	assert.Nil(t, s.SubmitResult())
}

func TestSubmitFormSuccessPersistsThenResets(t *testing.T) {
	sub := okSubmitter()
	var persisted *api.FormData
	s := session.New(sub, session.WithPersistFunc(
		func(_ context.Context, data api.FormData, result *api.SubmitResult) error {
			persisted = &data
			require.NotNil(t, result)
			return nil
		}))
	fillComplete(t, s)

	assert.True(t, s.SubmitForm(context.Background()))
	assert.Equal(t, 1, sub.calls)

	// The hook saw the payload before the reset wiped it.
	require.NotNil(t, persisted)
	assert.Equal(t, "ORD-1001", persisted.OrderNumber)

	assert.Equal(t, api.FormData{}, s.FormData())
	assert.Empty(t, s.Errors())
	assert.Equal(t, 1, s.CurrentStep())
	assert.False(t, s.IsSubmitting())
	require.NotNil(t, s.SubmitResult())
	assert.True(t, s.SubmitResult().Success)
}

func TestSubmitFormSubmitterError(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("wire broke")}
	s := session.New(sub)
	fillComplete(t, s)

	assert.False(t, s.SubmitForm(context.Background()))
	require.NotNil(t, s.SubmitResult())
	assert.False(t, s.SubmitResult().Success)
	assert.Equal(t, "Error inesperado. Intenta nuevamente.", s.SubmitResult().Message)
	// The draft survives a failed submit.
	assert.Equal(t, "ORD-1001", s.FormData().OrderNumber)
}

func TestSubmitFormFailureResultKeepsDraft(t *testing.T) {
	sub := &fakeSubmitter{result: &api.SubmitResult{Success: false, Message: "Error del servidor. Intenta nuevamente más tarde."}}
	s := session.New(sub)
	fillComplete(t, s)

	assert.False(t, s.SubmitForm(context.Background()))
	require.NotNil(t, s.SubmitResult())
	assert.False(t, s.SubmitResult().Success)
	assert.Equal(t, "ORD-1001", s.FormData().OrderNumber)
}

func TestSubmitFormPersistFailure(t *testing.T) {
	s := session.New(okSubmitter(), session.WithPersistFunc(
		func(context.Context, api.FormData, *api.SubmitResult) error {
			return errors.New("disk full")
		}))
	fillComplete(t, s)

	assert.False(t, s.SubmitForm(context.Background()))
	require.NotNil(t, s.SubmitResult())
	assert.Equal(t, "No se pudo guardar el formulario.", s.SubmitResult().Message)
	assert.Equal(t, "ORD-1001", s.FormData().OrderNumber)
}

func TestSubmitFormRecoversFromPanic(t *testing.T) {
	sub := okSubmitter()
	sub.panics = true
	s := session.New(sub)
	fillComplete(t, s)

	assert.False(t, s.SubmitForm(context.Background()))
	assert.False(t, s.IsSubmitting())
	require.NotNil(t, s.SubmitResult())
	assert.Equal(t, "Error inesperado. Intenta nuevamente.", s.SubmitResult().Message)
}

func TestResetAndClearSubmitResult(t *testing.T) {
	s := session.New(okSubmitter())
	fillComplete(t, s)
	s.NextStep()
	require.True(t, s.SubmitForm(context.Background()))
	require.NotNil(t, s.SubmitResult())

	s.ClearSubmitResult()
	assert.Nil(t, s.SubmitResult())

	fillComplete(t, s)
	s.NextStep()
	s.Reset()
	assert.Equal(t, api.FormData{}, s.FormData())
	assert.Equal(t, 1, s.CurrentStep())
}
