package types

// PDFContentType is the only media type accepted into a file set.
const PDFContentType = "application/pdf"

// UploadedFile is a single file selected by the user. Name is the
// identity used for deduplication inside a file set.
type UploadedFile struct {
	Name        string
	Data        []byte
	ContentType string
}

// ExtractedDocument is the text record produced from one uploaded file.
// Text starts with a header line identifying the source file, followed
// by the per-page text with a blank line after each page.
type ExtractedDocument struct {
	SourceName string `json:"source_name"`
	Text       string `json:"text"`
}

// IngestionState gates question submission on successful ingestion.
type IngestionState string

const (
	IngestionStateEmpty      IngestionState = "empty"
	IngestionStateProcessing IngestionState = "processing"
	IngestionStateReady      IngestionState = "ready"
	IngestionStateFailed     IngestionState = "failed"
)

// FileInfo is the client-facing view of an uploaded file.
type FileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}
