// Package upload drives the FSO document flow: picking a PDF, validating
// it and running the simulated processing pipeline with progress feedback.
package upload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	pkgerrors "github.com/pkg/errors"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
)

// ErrCancelled means the user backed out of the picker. It is not a
// failure; the flow reports it as "Selección cancelada".
var ErrCancelled = errors.New("selection cancelled")

// DocumentPicker yields one candidate file, or ErrCancelled.
type DocumentPicker interface {
	Pick(ctx context.Context) (*api.PDFFile, error)
}

// FilesystemPicker picks a fixed path, standing in for the native picker.
type FilesystemPicker struct {
	Path string
}

var _ DocumentPicker = (*FilesystemPicker)(nil)

func (p *FilesystemPicker) Pick(_ context.Context) (*api.PDFFile, error) {
	if p.Path == "" {
		return nil, ErrCancelled
	}
	info, err := os.Stat(p.Path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "reading %s", p.Path)
	}
	return &api.PDFFile{
		URI:  p.Path,
		Name: filepath.Base(p.Path),
		Type: mimeForExt(p.Path),
		Size: info.Size(),
	}, nil
}

// FileInfo is the result of a stat on a candidate path.
type FileInfo struct {
	Size    int64
	IsFile  bool
	ModTime time.Time
	Path    string
}

// ReadFileInfo stats a path without selecting it.
func ReadFileInfo(path string) (*FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "reading %s", path)
	}
	return &FileInfo{
		Size:    info.Size(),
		IsFile:  info.Mode().IsRegular(),
		ModTime: info.ModTime(),
		Path:    path,
	}, nil
}

func mimeForExt(path string) string {
	if filepath.Ext(path) == ".pdf" {
		return "application/pdf"
	}
	return "application/octet-stream"
}
