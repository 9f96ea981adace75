package service

import (
	"github.com/pdfchat/pdfchat-be/types"
)

// FileSetManager maintains the ordered set of files waiting to be
// processed. Entries are unique by name; the first file with a given
// name wins.
type FileSetManager struct {
	files []types.UploadedFile
}

func NewFileSetManager() *FileSetManager {
	return &FileSetManager{}
}

// Add filters the candidates and appends the survivors in input order.
// A candidate is dropped when its content type is not application/pdf
// or its name is already present. The returned flag reports whether
// the set changed.
func (m *FileSetManager) Add(candidates []types.UploadedFile) ([]types.UploadedFile, bool) {
	changed := false
	for _, candidate := range candidates {
		if candidate.ContentType != types.PDFContentType {
			continue
		}
		if m.contains(candidate.Name) {
			continue
		}
		m.files = append(m.files, candidate)
		changed = true
	}
	return m.Files(), changed
}

// Remove deletes the file with the exact name. Removing an absent name
// is a no-op, not an error.
func (m *FileSetManager) Remove(name string) ([]types.UploadedFile, bool) {
	for i, file := range m.files {
		if file.Name == name {
			m.files = append(m.files[:i], m.files[i+1:]...)
			return m.Files(), true
		}
	}
	return m.Files(), false
}

// Replace discards the current set and applies the same filter and
// dedupe rules to the new selection.
func (m *FileSetManager) Replace(candidates []types.UploadedFile) []types.UploadedFile {
	m.files = nil
	files, _ := m.Add(candidates)
	return files
}

// Files returns a copy of the current set in insertion order.
func (m *FileSetManager) Files() []types.UploadedFile {
	files := make([]types.UploadedFile, len(m.files))
	copy(files, m.files)
	return files
}

// Len returns the number of files in the set.
func (m *FileSetManager) Len() int {
	return len(m.files)
}

func (m *FileSetManager) contains(name string) bool {
	for _, file := range m.files {
		if file.Name == name {
			return true
		}
	}
	return false
}
