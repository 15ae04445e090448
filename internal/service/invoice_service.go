package service

import (
	"context"
	"errors"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"
	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/monitoring"
	"github.com/jaksoftwares/ReceiptPro/internal/repository"
	"github.com/jaksoftwares/ReceiptPro/internal/totals"

	"github.com/google/uuid"
)

// InvoiceService mirrors ReceiptService for the invoice lifecycle.
type InvoiceService interface {
	Create(ctx context.Context, draft dto.InvoiceDraft) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	Update(ctx context.Context, id uuid.UUID, draft dto.InvoiceDraft) (*model.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	invoices repository.InvoiceRepository
	profiles repository.ProfileRepository
	settings repository.SettingsRepository
	now      func() time.Time
}

func NewInvoiceService(
	invoices repository.InvoiceRepository,
	profiles repository.ProfileRepository,
	settings repository.SettingsRepository,
) InvoiceService {
	return &invoiceService{invoices: invoices, profiles: profiles, settings: settings, now: time.Now}
}

func (s *invoiceService) Create(ctx context.Context, draft dto.InvoiceDraft) (*model.Invoice, error) {
	inv := &model.Invoice{ID: uuid.New(), CreatedAt: s.now().UTC()}

	profile, err := resolveProfile(ctx, s.profiles, draft.ProfileID)
	if err != nil {
		return nil, err
	}
	inv.BusinessProfile = *profile

	if err := s.applyDraft(ctx, inv, draft); err != nil {
		return nil, err
	}

	existing, err := s.invoices.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(existing))
	for _, i := range existing {
		numbers = append(numbers, i.InvoiceNumber)
	}
	inv.InvoiceNumber = nextNumber("INV", numbers, s.now().UTC())

	if err := s.invoices.Upsert(ctx, inv); err != nil {
		return nil, err
	}
	monitoring.DocumentsSaved.WithLabelValues("invoice").Inc()
	return inv, nil
}

func (s *invoiceService) List(ctx context.Context) ([]model.Invoice, error) {
	return s.invoices.GetAll(ctx)
}

func (s *invoiceService) Get(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return inv, err
}

func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, draft dto.InvoiceDraft) (*model.Invoice, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if draft.ProfileID != nil {
		profile, err := resolveProfile(ctx, s.profiles, draft.ProfileID)
		if err != nil {
			return nil, err
		}
		inv.BusinessProfile = *profile
	}
	if err := s.applyDraft(ctx, inv, draft); err != nil {
		return nil, err
	}

	if err := s.invoices.Upsert(ctx, inv); err != nil {
		return nil, err
	}
	monitoring.DocumentsSaved.WithLabelValues("invoice").Inc()
	return inv, nil
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.invoices.Delete(ctx, id); err != nil {
		return err
	}
	monitoring.DocumentsDeleted.WithLabelValues("invoice").Inc()
	return nil
}

func (s *invoiceService) applyDraft(ctx context.Context, inv *model.Invoice, draft dto.InvoiceDraft) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}

	issueDate, err := time.Parse("2006-01-02", draft.IssueDate)
	if err != nil {
		return err
	}
	dueDate, err := time.Parse("2006-01-02", draft.DueDate)
	if err != nil {
		return err
	}

	inv.ClientName = draft.ClientName
	inv.ClientEmail = draft.ClientEmail
	inv.ClientPhone = draft.ClientPhone
	inv.ClientAddress = draft.ClientAddress
	inv.ClientCity = draft.ClientCity
	inv.ClientState = draft.ClientState
	inv.ClientZipCode = draft.ClientZipCode
	inv.ClientCountry = draft.ClientCountry
	inv.Items = buildItems(draft.Items)
	inv.Notes = draft.Notes
	inv.IssueDate = issueDate
	inv.DueDate = dueDate
	inv.Status = model.InvoiceStatus(defaulted(draft.Status, string(model.InvoiceDraft)))
	inv.Template = model.TemplateID(defaulted(draft.Template, string(model.TemplateModern)))
	inv.Currency = defaulted(draft.Currency, settings.Currency)
	inv.UpdatedAt = s.now().UTC()

	result := totals.Calculate(inv.Items, draft.TaxRate, draft.DiscountRate)
	inv.Subtotal = result.Subtotal
	inv.TaxRate = draft.TaxRate
	inv.TaxAmount = result.TaxAmount
	inv.DiscountRate = draft.DiscountRate
	inv.DiscountAmount = result.DiscountAmount
	inv.Total = result.Total
	return nil
}
