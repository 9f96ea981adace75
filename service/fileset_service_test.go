package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdfchat/pdfchat-be/types"
)

func pdfFile(name string) types.UploadedFile {
	return types.UploadedFile{
		Name:        name,
		Data:        []byte("%PDF-1.4 stub"),
		ContentType: types.PDFContentType,
	}
}

func TestFileSetAddFiltersNonPDF(t *testing.T) {
	m := NewFileSetManager()

	files, changed := m.Add([]types.UploadedFile{
		pdfFile("a.pdf"),
		{Name: "notes.txt", Data: []byte("hello"), ContentType: "text/plain"},
		pdfFile("b.pdf"),
	})

	assert.True(t, changed)
	assert.Len(t, files, 2)
	assert.Equal(t, "a.pdf", files[0].Name)
	assert.Equal(t, "b.pdf", files[1].Name)
}

func TestFileSetAddDedupesByNameFirstWins(t *testing.T) {
	m := NewFileSetManager()

	first := pdfFile("a.pdf")
	first.Data = []byte("first")
	m.Add([]types.UploadedFile{first})

	second := pdfFile("a.pdf")
	second.Data = []byte("second")
	files, changed := m.Add([]types.UploadedFile{second})

	assert.False(t, changed)
	assert.Len(t, files, 1)
	assert.Equal(t, []byte("first"), files[0].Data)
}

func TestFileSetAddDuplicateNamesInOneCall(t *testing.T) {
	m := NewFileSetManager()

	files, _ := m.Add([]types.UploadedFile{pdfFile("a.pdf"), pdfFile("a.pdf")})

	assert.Len(t, files, 1)
}

func TestFileSetRemove(t *testing.T) {
	m := NewFileSetManager()
	m.Add([]types.UploadedFile{pdfFile("a.pdf"), pdfFile("b.pdf"), pdfFile("c.pdf")})

	files, changed := m.Remove("b.pdf")

	assert.True(t, changed)
	assert.Len(t, files, 2)
	assert.Equal(t, "a.pdf", files[0].Name)
	assert.Equal(t, "c.pdf", files[1].Name)
}

func TestFileSetRemoveAbsentIsNoOp(t *testing.T) {
	m := NewFileSetManager()
	m.Add([]types.UploadedFile{pdfFile("a.pdf")})

	files, changed := m.Remove("missing.pdf")

	assert.False(t, changed)
	assert.Len(t, files, 1)
}

func TestFileSetReplace(t *testing.T) {
	m := NewFileSetManager()
	m.Add([]types.UploadedFile{pdfFile("a.pdf")})

	files := m.Replace([]types.UploadedFile{
		pdfFile("x.pdf"),
		{Name: "y.docx", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		pdfFile("x.pdf"),
	})

	assert.Len(t, files, 1)
	assert.Equal(t, "x.pdf", files[0].Name)
}

func TestFileSetFilesReturnsCopy(t *testing.T) {
	m := NewFileSetManager()
	m.Add([]types.UploadedFile{pdfFile("a.pdf"), pdfFile("b.pdf")})

	files := m.Files()
	files[0].Name = "mutated.pdf"

	again := m.Files()
	assert.Equal(t, "a.pdf", again[0].Name)
	assert.Equal(t, 2, m.Len())
}
