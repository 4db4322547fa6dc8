// Package pdftext turns uploaded documents into per-page plain text.
package pdftext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"quiz-maker/internal/domain"
)

// Extractor returns the plain text of each page of a document, in order.
type Extractor interface {
	ExtractPages(ctx context.Context, path string) ([]string, error)
}

// PDFExtractor reads PDF files. Pages without content yield "".
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		if f != nil {
			f.Close()
		}
		return nil, domain.NewInvalidInputError(fmt.Sprintf("cannot read PDF %s: %v", filepath.Base(path), err))
	}
	defer f.Close()

	n := r.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract page %d of %s: %w", i, filepath.Base(path), err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// PageSeparator splits pages in plain-text documents.
const PageSeparator = "\f"

// TextExtractor reads UTF-8 text files whose pages are separated by form feeds.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (e *TextExtractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	if strings.TrimSpace(content) == "" {
		return []string{}, nil
	}
	return strings.Split(content, PageSeparator), nil
}

// SupportedExtension reports whether ForFile can handle name.
func SupportedExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".txt":
		return true
	}
	return false
}

// ForFile picks an extractor by file extension.
func ForFile(path string) (Extractor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return NewPDFExtractor(), nil
	case ".txt":
		return NewTextExtractor(), nil
	default:
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unsupported file type %q: only .pdf and .txt are accepted", filepath.Ext(path)))
	}
}
