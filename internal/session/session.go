// Package session holds the in-memory state of one wizard run: the draft
// payload, per-field errors, the step pointer and the submit lifecycle.
// A Session is owned by a single UI flow and is not safe for concurrent use.
package session

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	"github.com/fieldops/fieldforms/internal/validation"
)

// Submitter is the external submit collaborator.
type Submitter interface {
	Submit(ctx context.Context, data api.FormData) (*api.SubmitResult, error)
}

// PersistFunc stores the submitted payload. It runs after a successful
// submit and before the draft is reset, so the payload is never lost to
// the reset.
type PersistFunc func(ctx context.Context, data api.FormData, result *api.SubmitResult) error

const (
	msgUnexpected  = "Error inesperado. Intenta nuevamente."
	msgPersistFail = "No se pudo guardar el formulario."
)

type Session struct {
	formData     api.FormData
	errors       api.FormErrors
	submitting   bool
	submitResult *api.SubmitResult
	currentStep  int

	submitter Submitter
	persist   PersistFunc
}

type Option func(*Session)

// WithPersistFunc installs the write-through hook invoked on successful
// submission.
func WithPersistFunc(fn PersistFunc) Option {
	return func(s *Session) {
		s.persist = fn
	}
}

func New(submitter Submitter, opts ...Option) *Session {
	s := &Session{
		errors:      api.FormErrors{},
		currentStep: 1,
		submitter:   submitter,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// FormData returns a copy of the current draft.
func (s *Session) FormData() api.FormData {
	return s.formData
}

// Errors returns a copy of the current per-field errors.
func (s *Session) Errors() api.FormErrors {
	out := make(api.FormErrors, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

func (s *Session) IsSubmitting() bool {
	return s.submitting
}

func (s *Session) SubmitResult() *api.SubmitResult {
	return s.submitResult
}

func (s *Session) CurrentStep() int {
	return s.currentStep
}

// UpdateField merges one field into the draft. It clears that field's
// error and any stale submit result; it does not re-validate.
func (s *Session) UpdateField(name string, value any) error {
	if err := validation.Set(&s.formData, name, value); err != nil {
		return err
	}
	delete(s.errors, name)
	s.submitResult = nil
	return nil
}

// ValidateFormData runs the strict policy over the whole draft, replacing
// the error map wholesale. It reports whether the draft is fully valid.
func (s *Session) ValidateFormData() bool {
	s.errors = validation.ValidateForm(s.formData)
	return len(s.errors) == 0
}

// ValidateSingleField re-validates one field and updates only its entry.
func (s *Session) ValidateSingleField(name string) bool {
	value, ok := validation.Get(&s.formData, name)
	if !ok {
		return true
	}
	msg := validation.ValidateField(name, value)
	if msg == "" {
		delete(s.errors, name)
		return true
	}
	s.errors[name] = msg
	return false
}

// IsFormValidToSubmit gates the terminal submit in the single-page variant.
func (s *Session) IsFormValidToSubmit() bool {
	return validation.IsFormValid(s.formData)
}

// CanSubmit gates submission in the wizard variant; deliberately more
// permissive than per-step validity.
func (s *Session) CanSubmit() bool {
	return validation.CanSubmitForm(s.formData)
}

func (s *Session) NextStep() {
	if s.currentStep < len(Steps) {
		s.currentStep++
	}
}

func (s *Session) PrevStep() {
	if s.currentStep > 1 {
		s.currentStep--
	}
}

// IsCurrentStepValid runs the lighter per-step check that gates the Next
// control: booleans are vacuously present, text must be non-blank and
// numeric text must parse. No error messages are produced.
func (s *Session) IsCurrentStepValid() bool {
	for _, name := range Steps[s.currentStep-1].Fields {
		field, ok := validation.FieldByName(name)
		if !ok {
			continue
		}
		value, _ := validation.Get(&s.formData, name)
		switch field.Kind {
		case validation.KindBool, validation.KindPhone:
			// A toggle or a number is always present.
		case validation.KindNumericText:
			str, _ := value.(string)
			if strings.TrimSpace(str) == "" {
				return false
			}
			if _, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err != nil {
				return false
			}
		default:
			str, _ := value.(string)
			if strings.TrimSpace(str) == "" {
				return false
			}
		}
	}
	return true
}

// SubmitForm validates the whole draft, invokes the submit collaborator
// and, on success, persists through the hook and resets the draft. A
// failed validation jumps the step pointer to the first offending step and
// returns false without side effects. Collaborator failures never
// propagate; they become a user-facing failure result.
func (s *Session) SubmitForm(ctx context.Context) (submitted bool) {
	if !s.ValidateFormData() {
		if step := s.firstInvalidStep(); step > 0 {
			s.currentStep = step
		}
		return false
	}

	s.submitting = true
	s.submitResult = nil
	defer func() {
		s.submitting = false
		if r := recover(); r != nil {
			zap.S().Named("session").Errorw("panic during submit", "panic", r)
			s.submitResult = &api.SubmitResult{Success: false, Message: msgUnexpected}
			submitted = false
		}
	}()

	result, err := s.submitter.Submit(ctx, s.formData)
	if err != nil {
		zap.S().Named("session").Warnw("submit failed", "error", err)
		s.submitResult = &api.SubmitResult{Success: false, Message: msgUnexpected}
		return false
	}
	s.submitResult = result
	if !result.Success {
		return false
	}

	if s.persist != nil {
		if err := s.persist(ctx, s.formData, result); err != nil {
			zap.S().Named("session").Errorw("persisting submitted form failed", "error", err)
			s.submitResult = &api.SubmitResult{Success: false, Message: msgPersistFail}
			return false
		}
	}

	s.formData = api.FormData{}
	s.errors = api.FormErrors{}
	s.currentStep = 1
	return true
}

// firstInvalidStep returns the lowest step containing an errored field, or
// 0 when no step-bound field is in error.
func (s *Session) firstInvalidStep() int {
	for i, step := range Steps {
		for _, name := range step.Fields {
			if _, bad := s.errors[name]; bad {
				return i + 1
			}
		}
	}
	return 0
}

// Reset discards the draft, errors, result and step pointer.
func (s *Session) Reset() {
	s.formData = api.FormData{}
	s.errors = api.FormErrors{}
	s.submitResult = nil
	s.currentStep = 1
}

func (s *Session) ClearSubmitResult() {
	s.submitResult = nil
}
