package service

import (
	"fmt"
	"strings"

	"github.com/nurpe/factory-records/internal/model"
)

type ExcelGenerator interface {
	Generate(card model.RecordCard) ([]byte, error)
}

type PDFGenerator interface {
	Generate(card model.RecordCard) ([]byte, error)
}

const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportService renders a single record as a downloadable card.
type ExportService struct {
	excel ExcelGenerator
	pdf   PDFGenerator
}

func NewExportService(excel ExcelGenerator, pdf PDFGenerator) *ExportService {
	return &ExportService{excel: excel, pdf: pdf}
}

func (s *ExportService) Export(record model.Record, format string) (*ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatXLSX
	}

	card := model.CardOf(record)
	var (
		content     []byte
		contentType string
		err         error
	)
	switch format {
	case FormatXLSX:
		content, err = s.excel.Generate(card)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		content, err = s.pdf.Generate(card)
		contentType = "application/pdf"
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, format)
	}
	if err != nil {
		return nil, fmt.Errorf("export %s %d: %w", card.Kind, card.ID, err)
	}

	return &ExportResult{
		FileName:    buildFileName(card, format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

func buildFileName(card model.RecordCard, ext string) string {
	return fmt.Sprintf("%s-%d.%s", sanitizeFileName(strings.ToLower(card.Kind)), card.ID, ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
