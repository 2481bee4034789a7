package upload

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
)

const (
	msgNotPDF       = "Por favor selecciona solo archivos PDF"
	msgTooLarge     = "El archivo es demasiado grande. Máximo 10MB permitido."
	msgNoSelection  = "No se seleccionó ningún archivo"
	msgCancelled    = "Selección cancelada"
	msgProcessError = "Error al procesar el archivo"
	msgProcessed    = "Archivo procesado exitosamente"
)

// Processor turns an accepted PDF into a processed order.
type Processor interface {
	Process(ctx context.Context, file api.PDFFile) (*api.ProcessedFSOResponse, error)
}

// Session is the state of one document-upload flow: the selected file and
// the simulated upload progress. It mirrors the session package: one flow,
// one owner, no internal locking beyond the progress gauge.
type Session struct {
	picker    DocumentPicker
	processor Processor

	maxFileSize  int64
	tickInterval time.Duration
	processDelay time.Duration

	mu        sync.Mutex
	uploading bool
	progress  int
	selected  *api.PDFFile

	log *zap.SugaredLogger
}

type Option func(*Session)

func WithMaxFileSize(n int64) Option {
	return func(s *Session) {
		s.maxFileSize = n
	}
}

func WithTickInterval(d time.Duration) Option {
	return func(s *Session) {
		s.tickInterval = d
	}
}

func WithProcessDelay(d time.Duration) Option {
	return func(s *Session) {
		s.processDelay = d
	}
}

func NewSession(picker DocumentPicker, processor Processor, opts ...Option) *Session {
	s := &Session{
		picker:       picker,
		processor:    processor,
		maxFileSize:  10 * 1024 * 1024,
		tickInterval: 200 * time.Millisecond,
		processDelay: 2 * time.Second,
		log:          zap.S().Named("upload"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Session) Uploading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploading
}

func (s *Session) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

func (s *Session) SelectedFile() *api.PDFFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// PickPDFDocument runs the picker and validates the candidate. All
// rejections come back as a failed result with a user-facing message.
func (s *Session) PickPDFDocument(ctx context.Context) api.FileUploadResult {
	file, err := s.picker.Pick(ctx)
	if err != nil {
		if err == ErrCancelled {
			return api.FileUploadResult{Success: false, Error: msgCancelled}
		}
		s.log.Warnw("picker failed", "error", err)
		return api.FileUploadResult{Success: false, Error: fmt.Sprintf("Error al seleccionar el archivo PDF: %s", err)}
	}
	if file == nil {
		return api.FileUploadResult{Success: false, Error: msgNoSelection}
	}

	if !isPDF(*file) {
		return api.FileUploadResult{Success: false, Error: msgNotPDF}
	}
	if file.Size > s.maxFileSize {
		return api.FileUploadResult{Success: false, Error: msgTooLarge}
	}
	if file.Name == "" {
		file.Name = fmt.Sprintf("FSO_%d.pdf", time.Now().UnixMilli())
	}
	if file.Type == "" {
		file.Type = "application/pdf"
	}

	s.mu.Lock()
	s.selected = file
	s.mu.Unlock()

	return api.FileUploadResult{Success: true, FileName: file.Name, FilePath: file.URI}
}

// RemoveFile drops the selection and resets the gauge.
func (s *Session) RemoveFile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.progress = 0
}

// UploadFile runs the simulated pipeline: the gauge climbs by ten per tick
// up to ninety while the processor works, then jumps to one hundred on
// completion. The tick uses a jittered interval so the gauge moves like a
// real transfer instead of a metronome.
func (s *Session) UploadFile(ctx context.Context, file api.PDFFile) (result *api.ProcessedFSOResponse) {
	s.mu.Lock()
	s.uploading = true
	s.progress = 0
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.uploading = false
		s.mu.Unlock()
		if r := recover(); r != nil {
			s.log.Errorw("panic while processing upload", "panic", r)
			s.mu.Lock()
			s.progress = 0
			s.mu.Unlock()
			result = &api.ProcessedFSOResponse{Success: false, Message: msgProcessError}
		}
	}()

	// The deferred stop covers the panic path; without it a panicking
	// processor would leave the ticker goroutine running forever.
	done := make(chan struct{})
	stopProgress := sync.OnceFunc(func() { close(done) })
	defer stopProgress()
	go s.driveProgress(done)

	select {
	case <-time.After(s.processDelay):
	case <-ctx.Done():
		stopProgress()
		s.mu.Lock()
		s.progress = 0
		s.mu.Unlock()
		return &api.ProcessedFSOResponse{Success: false, Message: msgProcessError}
	}

	resp, err := s.processor.Process(ctx, file)
	stopProgress()
	if err != nil {
		s.log.Errorw("processing failed", "error", err, "file", file.Name)
		s.mu.Lock()
		s.progress = 0
		s.mu.Unlock()
		return &api.ProcessedFSOResponse{Success: false, Message: msgProcessError}
	}

	s.mu.Lock()
	s.progress = 100
	s.mu.Unlock()
	if resp.Message == "" {
		resp.Message = msgProcessed
	}
	return resp
}

func (s *Session) driveProgress(done <-chan struct{}) {
	ticker := jitterbug.New(s.tickInterval, &jitterbug.Norm{Stdev: s.tickInterval / 20})
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.progress < 90 {
				s.progress += 10
			}
			s.mu.Unlock()
		}
	}
}

// ValidatePDFFile checks a candidate without selecting it.
func ValidatePDFFile(file api.PDFFile) (bool, string) {
	if !strings.HasSuffix(strings.ToLower(file.Name), ".pdf") {
		return false, "El archivo debe tener extensión .pdf"
	}
	if file.Type != "" && !strings.Contains(file.Type, "pdf") {
		return false, "El tipo de archivo no es PDF válido"
	}
	if file.Size < 1024 {
		return false, "El archivo PDF parece estar corrupto o vacío"
	}
	return true, ""
}

func isPDF(file api.PDFFile) bool {
	return strings.Contains(file.Type, "pdf") ||
		strings.HasSuffix(strings.ToLower(file.Name), ".pdf")
}
