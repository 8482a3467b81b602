package services

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"hirelens/resume-screener/internal/models"
)

// ExtractorService turns one uploaded resume into plain text. Dispatch is by
// file extension; image types are delegated to the OCR call. Failures are
// all-or-nothing per file, there is no partial text.
type ExtractorService interface {
	Extract(ctx context.Context, file models.UploadedFile) (string, error)
}

type extractFunc func(ctx context.Context, file models.UploadedFile) (string, error)

type extractorService struct {
	strategies map[string]extractFunc
}

func NewExtractorService(gemini GeminiService) ExtractorService {
	s := &extractorService{}

	imageStrategy := func(ctx context.Context, file models.UploadedFile) (string, error) {
		return gemini.ExtractImageText(ctx, file.MIMEType, file.Data)
	}

	s.strategies = map[string]extractFunc{
		"pdf":  s.extractPDF,
		"docx": s.extractDOCX,
		"txt":  s.extractTXT,
		"png":  imageStrategy,
		"jpg":  imageStrategy,
		"jpeg": imageStrategy,
	}

	return s
}

// Extract implements ExtractorService. Any failure comes back as an
// ExtractionError carrying the originating filename.
func (s *extractorService) Extract(ctx context.Context, file models.UploadedFile) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Name)), ".")

	strategy, ok := s.strategies[ext]
	if !ok {
		return "", &models.ExtractionError{Filename: file.Name, Cause: models.ErrUnsupportedFileType}
	}

	text, err := strategy(ctx, file)
	if err != nil {
		return "", &models.ExtractionError{Filename: file.Name, Cause: err}
	}

	return text, nil
}

func (s *extractorService) extractPDF(_ context.Context, file models.UploadedFile) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		// A single unreadable page fails the whole file; partial text must
		// never reach the scorer.
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from PDF page %d: %w", pageIndex, err)
		}

		textBuilder.WriteString(text)
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

var docXMLTag = regexp.MustCompile(`<[^>]*>`)

func (s *extractorService) extractDOCX(_ context.Context, file models.UploadedFile) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(file.Data), int64(len(file.Data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}
	defer doc.Close()

	text := flattenParagraphs(doc.Editable().GetContent())
	if text == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}

	return text, nil
}

// flattenParagraphs reduces the raw document.xml body to plain text, one line
// per paragraph in document order.
func flattenParagraphs(content string) string {
	var lines []string
	for _, paragraph := range strings.Split(content, "</w:p>") {
		text := docXMLTag.ReplaceAllString(paragraph, "")
		text = strings.TrimSpace(html.UnescapeString(text))
		if text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

func (s *extractorService) extractTXT(_ context.Context, file models.UploadedFile) (string, error) {
	if !utf8.Valid(file.Data) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	return string(file.Data), nil
}
