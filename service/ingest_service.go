package service

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/pdfchat/pdfchat-be/types"
)

// TextExtractor turns one uploaded file into one text record.
type TextExtractor interface {
	Extract(ctx context.Context, file types.UploadedFile) (types.ExtractedDocument, error)
}

// IngestService runs text extraction over a batch of files. The batch
// is all-or-nothing: one unreadable file fails the whole run and no
// partial corpus is ever returned.
type IngestService struct {
	extractor TextExtractor
}

func NewIngestService(extractor TextExtractor) *IngestService {
	return &IngestService{
		extractor: extractor,
	}
}

// Ingest extracts every file concurrently and joins the results into a
// corpus whose order matches the input order regardless of completion
// order.
func (s *IngestService) Ingest(ctx context.Context, files []types.UploadedFile) ([]string, error) {
	if len(files) == 0 {
		return nil, types.NewValidationError("no files selected")
	}

	texts := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			doc, err := s.extractor.Extract(ctx, file)
			if err != nil {
				return err
			}
			texts[i] = doc.Text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("Ingestion failed: %v", err)
		return nil, &types.IngestionError{Err: err}
	}

	return texts, nil
}
