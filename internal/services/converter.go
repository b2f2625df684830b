package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"base64-converter/internal/logger"
	"base64-converter/internal/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

const component = "ConverterService"

var (
	ErrNoFileSelected = errors.New("no file selected")
	ErrNothingToSave  = errors.New("no converted text available")
	ErrIsDirectory    = errors.New("path is a directory")
	ErrFileTooLarge   = errors.New("file exceeds configured size limit")
)

// ConvertOptions bounds a single conversion. Zero values mean no limit.
type ConvertOptions struct {
	MaxSize int64
	Timeout time.Duration
}

// ConverterService reads source files, encodes them and writes the result.
type ConverterService struct {
	fs         afero.Fs
	repository *models.DocumentRepository
	logger     logger.Logger
	options    ConvertOptions
	now        func() time.Time
}

func NewConverterService(fs afero.Fs, repo *models.DocumentRepository, log logger.Logger, opts ConvertOptions) *ConverterService {
	return &ConverterService{
		fs:         fs,
		repository: repo,
		logger:     log,
		options:    opts,
		now:        time.Now,
	}
}

// Convert reads the selected file and stores its encoding in the repository.
// On failure the previously stored document is left untouched.
func (cs *ConverterService) Convert(ctx context.Context) (*models.EncodedDocument, error) {
	path := cs.repository.SelectedPath()
	if path == "" {
		return nil, ErrNoFileSelected
	}

	if cs.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cs.options.Timeout)
		defer cancel()
	}

	startTime := time.Now()
	data, err := cs.readSource(ctx, path)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	doc := &models.EncodedDocument{
		SourcePath:  path,
		SourceName:  filepath.Base(path),
		Size:        int64(len(data)),
		Text:        Encode(data),
		ConvertedAt: cs.now(),
	}
	if len(data) > 0 {
		mtype := mimetype.Detect(data)
		doc.MIMEType = mtype.String()
		doc.Extension = mtype.Extension()
	}

	cs.repository.SetDocument(doc)

	cs.logger.Info(component, "file converted", map[string]interface{}{
		"path":     path,
		"bytes":    doc.Size,
		"chars":    len(doc.Text),
		"mime":     doc.MIMEType,
		"duration": time.Since(startTime).String(),
	})

	return doc, nil
}

func (cs *ConverterService) readSource(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	info, err := cs.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	if cs.options.MaxSize > 0 && info.Size() > cs.options.MaxSize {
		return nil, fmt.Errorf("%s is %d bytes, limit %d: %w", path, info.Size(), cs.options.MaxSize, ErrFileTooLarge)
	}

	f, err := cs.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	buf.Grow(int(info.Size()))
	if _, err := io.Copy(&buf, &ctxReader{ctx: ctx, r: f}); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

// ctxReader stops a read at the next chunk once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}

// Save writes the stored text to w without a trailing newline.
func (cs *ConverterService) Save(ctx context.Context, w io.Writer) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	text := cs.repository.Text()
	if text == "" {
		return ErrNothingToSave
	}

	n, err := io.WriteString(w, text)
	if err != nil {
		return fmt.Errorf("write encoded text: %w", err)
	}

	cs.logger.Info(component, "encoded text saved", map[string]interface{}{
		"chars": n,
	})
	return nil
}

// DataURI renders the stored document as an RFC 2397 data URI.
func (cs *ConverterService) DataURI() (string, error) {
	doc := cs.repository.Document()
	if doc == nil || doc.Text == "" {
		return "", ErrNothingToSave
	}
	mediaType := doc.MIMEType
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	// Data URIs take the bare media type plus parameters without spaces.
	mediaType = strings.ReplaceAll(mediaType, " ", "")
	return "data:" + mediaType + ";base64," + doc.Text, nil
}

// SuggestedSaveName derives "<source basename><ext>" for the save dialog.
func (cs *ConverterService) SuggestedSaveName(ext string) string {
	doc := cs.repository.Document()
	if doc == nil || doc.SourceName == "" {
		return "encoded" + ext
	}
	return doc.SourceName + ext
}

// Encode is the standard padded Base64 alphabet of RFC 4648.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
