package models

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"
)

// EncodedDocument is the Base64 rendition of one source file.
type EncodedDocument struct {
	SourcePath  string
	SourceName  string
	Size        int64
	MIMEType    string
	Extension   string
	Text        string
	ConvertedAt time.Time
}

// SizeKB returns the raw byte count in kibibytes.
func (d *EncodedDocument) SizeKB() float64 {
	return float64(d.Size) / 1024
}

// Summary is the status line text for a finished conversion.
func (d *EncodedDocument) Summary() string {
	summary := fmt.Sprintf("Converted: %.1f KB → %d characters", d.SizeKB(), len(d.Text))
	if d.MIMEType != "" {
		summary += fmt.Sprintf(" (%s)", d.MIMEType)
	}
	return summary
}

// DocumentRepository holds the selected path and at most one converted
// document. A conversion replaces the document wholesale.
type DocumentRepository struct {
	mu           sync.RWMutex
	selectedPath string
	document     *EncodedDocument
}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

// SelectPath records the file chosen for the next conversion.
func (r *DocumentRepository) SelectPath(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selectedPath = path
}

func (r *DocumentRepository) SelectedPath() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selectedPath
}

// SelectedName returns the basename of the selected path, or "".
func (r *DocumentRepository) SelectedName() string {
	path := r.SelectedPath()
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// SetDocument replaces the stored document.
func (r *DocumentRepository) SetDocument(doc *EncodedDocument) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.document = doc
}

// Document returns the stored document, or nil before the first conversion.
func (r *DocumentRepository) Document() *EncodedDocument {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.document
}

// Text returns the stored encoding, empty when nothing has been converted.
func (r *DocumentRepository) Text() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.document == nil {
		return ""
	}
	return r.document.Text
}

func (r *DocumentRepository) HasText() bool {
	return r.Text() != ""
}

// Clear drops the selection and the stored document.
func (r *DocumentRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selectedPath = ""
	r.document = nil
}

// Shutdown satisfies shutdown.Shutdownable.
func (r *DocumentRepository) Shutdown() {
	r.Clear()
}
