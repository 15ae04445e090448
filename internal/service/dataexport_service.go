package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"
	"github.com/jaksoftwares/ReceiptPro/internal/repository"
)

// BundleVersion identifies the backup layout.
const BundleVersion = "1.0"

// DataExportService assembles the full-database JSON backup.
type DataExportService interface {
	Bundle(ctx context.Context) (*dto.DataBundle, string, error)
}

type dataExportService struct {
	profiles repository.ProfileRepository
	receipts repository.ReceiptRepository
	invoices repository.InvoiceRepository
	settings repository.SettingsRepository
	now      func() time.Time
}

func NewDataExportService(
	profiles repository.ProfileRepository,
	receipts repository.ReceiptRepository,
	invoices repository.InvoiceRepository,
	settings repository.SettingsRepository,
) DataExportService {
	return &dataExportService{
		profiles: profiles,
		receipts: receipts,
		invoices: invoices,
		settings: settings,
		now:      time.Now,
	}
}

// Bundle returns the backup and its suggested download filename.
func (s *dataExportService) Bundle(ctx context.Context) (*dto.DataBundle, string, error) {
	profiles, err := s.profiles.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}
	receipts, err := s.receipts.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}
	invoices, err := s.invoices.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	now := s.now().UTC()
	bundle := &dto.DataBundle{
		Version:          BundleVersion,
		ExportDate:       now.Format(time.RFC3339),
		BusinessProfiles: profiles,
		Receipts:         receipts,
		Invoices:         invoices,
		Settings:         settings,
	}
	if current, err := s.profiles.GetCurrent(ctx); err == nil && current != nil {
		bundle.CurrentProfileID = current.ID.String()
	}

	filename := fmt.Sprintf("receiptpro-data-%s.json", now.Format("2006-01-02"))
	return bundle, filename, nil
}
