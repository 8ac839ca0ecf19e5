package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kbartosik/exam-session-api/internal/models"
	"github.com/kbartosik/exam-session-api/pkg/export"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
)

// ExportFormat selects the rendered file type.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult carries a rendered term board ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders the exam term board as CSV or PDF.
type ExportService struct {
	terms  *TermService
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(terms *TermService, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{terms: terms, csv: csv, pdf: pdf, logger: logger}
}

var termBoardHeaders = []string{"przedmiot", "kierunek", "typ_studiow", "rok", "prowadzacy", "data", "godzina", "sala", "status"}

// ExportTerms renders the filtered term board in the requested format.
func (s *ExportService) ExportTerms(ctx context.Context, filter models.ExamTermFilter, format ExportFormat) (*ExportResult, error) {
	terms, err := s.terms.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: termBoardHeaders, Rows: make([]map[string]string, 0, len(terms))}
	for _, term := range terms {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"przedmiot":   term.SubjectNazwa,
			"kierunek":    term.SubjectKierunek,
			"typ_studiow": string(term.SubjectTypStudiow),
			"rok":         strconv.Itoa(term.SubjectRok),
			"prowadzacy":  term.ProwadzacyName,
			"data":        term.Data,
			"godzina":     term.Godzina,
			"sala":        term.Sala,
			"status":      string(term.Status),
		})
	}

	switch format {
	case ExportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{Filename: "terminy-egzaminow.csv", ContentType: "text/csv", Content: content}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Render(dataset, "Terminy egzaminów")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{Filename: "terminy-egzaminow.pdf", ContentType: "application/pdf", Content: content}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", strings.TrimSpace(string(format))))
	}
}
