package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdfchat/pdfchat-be/types"
)

// PDFService extracts plain text from in-memory PDF files.
type PDFService struct{}

// NewPDFService creates a new PDF text extraction service
func NewPDFService() *PDFService {
	return &PDFService{}
}

// Extract turns one uploaded file into one text record. Pages are read
// in ascending order; the text items of each page are joined with
// single spaces and every page is followed by a blank line. The whole
// record is prefixed with a header line identifying the source file.
func (s *PDFService) Extract(ctx context.Context, file types.UploadedFile) (types.ExtractedDocument, error) {
	pages, err := s.readPages(ctx, file.Data)
	if err != nil {
		return types.ExtractedDocument{}, &types.ExtractionError{File: file.Name, Err: err}
	}
	return types.ExtractedDocument{
		SourceName: file.Name,
		Text:       FormatDocumentText(file.Name, pages),
	}, nil
}

// readPages returns the space-joined text of every page in order.
func (s *PDFService) readPages(ctx context.Context, data []byte) (pages []string, err error) {
	// ledongthuc/pdf panics on some malformed inputs instead of
	// returning an error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPages := reader.NumPage()
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page := reader.Page(pageNum)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content := page.Content()
		items := make([]string, 0, len(content.Text))
		for _, text := range content.Text {
			items = append(items, text.S)
		}
		pages = append(pages, strings.Join(items, " "))
	}

	return pages, nil
}

// FormatDocumentText assembles the final text record from the per-page
// texts of a single source file.
func FormatDocumentText(name string, pages []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Content of file: %s]\n", name)
	for _, pageText := range pages {
		b.WriteString(pageText)
		b.WriteString("\n\n")
	}
	return b.String()
}
