package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelens/resume-screener/internal/models"
)

func TestExtractTXT(t *testing.T) {
	extractor := NewExtractorService(&fakeGemini{})

	text, err := extractor.Extract(context.Background(), models.UploadedFile{
		Name: "resume.txt",
		Data: []byte("Jane Doe\nGo developer"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer", text)
}

func TestExtractTXTRejectsInvalidUTF8(t *testing.T) {
	extractor := NewExtractorService(&fakeGemini{})

	_, err := extractor.Extract(context.Background(), models.UploadedFile{
		Name: "resume.txt",
		Data: []byte{0xff, 0xfe, 0xfd},
	})

	var extractionErr *models.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "resume.txt", extractionErr.Filename)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	gemini := &fakeGemini{}
	extractor := NewExtractorService(gemini)

	_, err := extractor.Extract(context.Background(), models.UploadedFile{
		Name: "candidates.csv",
		Data: []byte("name,email"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnsupportedFileType)

	var extractionErr *models.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "candidates.csv", extractionErr.Filename)
	assert.Empty(t, gemini.ocrMIMETypes)
}

func TestExtractDispatchIsCaseInsensitive(t *testing.T) {
	extractor := NewExtractorService(&fakeGemini{})

	text, err := extractor.Extract(context.Background(), models.UploadedFile{
		Name: "RESUME.TXT",
		Data: []byte("upper case extension"),
	})

	require.NoError(t, err)
	assert.Equal(t, "upper case extension", text)
}

func TestExtractImageDelegatesToOCR(t *testing.T) {
	gemini := &fakeGemini{ocrText: "John Smith\njohn@example.com"}
	extractor := NewExtractorService(gemini)

	text, err := extractor.Extract(context.Background(), models.UploadedFile{
		Name:     "scan.png",
		MIMEType: "image/png",
		Data:     []byte{0x89, 0x50, 0x4e, 0x47},
	})

	require.NoError(t, err)
	assert.Equal(t, "John Smith\njohn@example.com", text)
	assert.Equal(t, []string{"image/png"}, gemini.ocrMIMETypes)
}

func TestExtractImageOCRFailure(t *testing.T) {
	gemini := &fakeGemini{ocrErr: errors.New("service unavailable")}
	extractor := NewExtractorService(gemini)

	_, err := extractor.Extract(context.Background(), models.UploadedFile{
		Name:     "scan.jpeg",
		MIMEType: "image/jpeg",
		Data:     []byte{0xff, 0xd8},
	})

	var extractionErr *models.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "scan.jpeg", extractionErr.Filename)
	assert.ErrorIs(t, err, gemini.ocrErr)
}

func TestExtractCorruptPDF(t *testing.T) {
	extractor := NewExtractorService(&fakeGemini{})

	_, err := extractor.Extract(context.Background(), models.UploadedFile{
		Name: "broken.pdf",
		Data: []byte("not a pdf at all"),
	})

	var extractionErr *models.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "broken.pdf", extractionErr.Filename)
}

// pdfWithUnreadablePage assembles a two-page PDF whose cross-reference table
// is valid but whose second page declares a FlateDecode content stream holding
// garbage, so opening succeeds and only page-level extraction fails.
func pdfWithUnreadablePage() []byte {
	var buf bytes.Buffer
	var offsets []int

	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")
	addObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	addObj("2 0 obj\n<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >>\nendobj\n")
	addObj("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 7 0 R >> >> /Contents 5 0 R >>\nendobj\n")
	addObj("4 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 7 0 R >> >> /Contents 6 0 R >>\nendobj\n")

	readable := "BT /F1 12 Tf (Hello world) Tj ET"
	addObj(fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(readable), readable))

	garbage := "this is not a flate stream"
	addObj(fmt.Sprintf("6 0 obj\n<< /Length %d /Filter /FlateDecode >>\nstream\n%s\nendstream\nendobj\n", len(garbage), garbage))

	addObj("7 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xrefOffset := buf.Len()
	buf.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)+1))
	buf.WriteString("0000000000 65535 f \n")
	for _, offset := range offsets {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", offset))
	}
	buf.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefOffset))

	return buf.Bytes()
}

func TestExtractPDFUnreadablePageFailsWholeFile(t *testing.T) {
	extractor := NewExtractorService(&fakeGemini{})

	text, err := extractor.Extract(context.Background(), models.UploadedFile{
		Name: "two-pages.pdf",
		Data: pdfWithUnreadablePage(),
	})

	// No partial text from the readable page may survive the failure.
	assert.Empty(t, text)

	var extractionErr *models.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "two-pages.pdf", extractionErr.Filename)
	assert.Contains(t, err.Error(), "PDF page")
}

func TestExtractCorruptDOCX(t *testing.T) {
	extractor := NewExtractorService(&fakeGemini{})

	_, err := extractor.Extract(context.Background(), models.UploadedFile{
		Name: "broken.docx",
		Data: []byte("not a zip archive"),
	})

	var extractionErr *models.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "broken.docx", extractionErr.Filename)
}

func TestFlattenParagraphs(t *testing.T) {
	content := `<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		`<w:p><w:r><w:t>Fish &amp; Chips</w:t></w:r></w:p>`

	text := flattenParagraphs(content)

	assert.Equal(t, "First paragraph\nSecond paragraph\nFish & Chips", text)
}
