package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/monitoring"
	"github.com/jaksoftwares/ReceiptPro/internal/pdf"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ExportService orchestrates the PDF pipeline for stored documents. At most
// one export per document runs at a time; a second request while the first is
// still rendering gets ErrExportInFlight.
type ExportService interface {
	Export(ctx context.Context, docType model.DocType, id uuid.UUID) (*pdf.ExportResult, error)
	// ExportToFile additionally persists the PDF under the storage dir and
	// returns its path, for the email worker to attach.
	ExportToFile(ctx context.Context, docType model.DocType, id uuid.UUID) (string, *pdf.ExportResult, error)
}

type exportService struct {
	receipts    ReceiptService
	invoices    InvoiceService
	exporter    *pdf.Exporter
	storagePath string

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewExportService(receipts ReceiptService, invoices InvoiceService, exporter *pdf.Exporter, storagePath string) ExportService {
	return &exportService{
		receipts:    receipts,
		invoices:    invoices,
		exporter:    exporter,
		storagePath: storagePath,
		inFlight:    make(map[string]struct{}),
	}
}

func (s *exportService) Export(ctx context.Context, docType model.DocType, id uuid.UUID) (*pdf.ExportResult, error) {
	key := string(docType) + ":" + id.String()
	if !s.acquire(key) {
		return nil, ErrExportInFlight
	}
	defer s.release(key)

	doc, err := s.lookup(ctx, docType, id)
	if err != nil {
		return nil, err
	}

	result, err := s.exporter.Export(*doc)
	if err != nil {
		return nil, err
	}

	path := "primary"
	if result.UsedFallback {
		path = "fallback"
	}
	monitoring.PDFExports.WithLabelValues(path).Inc()
	monitoring.PDFExportPages.Observe(float64(result.Pages))
	log.Info().Str("number", doc.Number).Str("file", result.Filename).
		Int("pages", result.Pages).Bool("fallback", result.UsedFallback).
		Msg("document exported")
	return result, nil
}

func (s *exportService) ExportToFile(ctx context.Context, docType model.DocType, id uuid.UUID) (string, *pdf.ExportResult, error) {
	result, err := s.Export(ctx, docType, id)
	if err != nil {
		return "", nil, err
	}
	if err := os.MkdirAll(s.storagePath, 0o755); err != nil {
		return "", nil, err
	}
	path := filepath.Join(s.storagePath, result.Filename)
	if err := os.WriteFile(path, result.Data, 0o644); err != nil {
		return "", nil, err
	}
	return path, result, nil
}

func (s *exportService) lookup(ctx context.Context, docType model.DocType, id uuid.UUID) (*model.Document, error) {
	switch docType {
	case model.DocTypeReceipt:
		rec, err := s.receipts.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		doc := rec.Document()
		return &doc, nil
	default:
		inv, err := s.invoices.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		doc := inv.Document()
		return &doc, nil
	}
}

func (s *exportService) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *exportService) release(key string) {
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}
