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

// ReceiptService owns the receipt lifecycle: a validated draft is finalized
// into a self-contained record — profile snapshot taken, number assigned,
// totals recomputed server-side regardless of what the client sent.
type ReceiptService interface {
	Create(ctx context.Context, draft dto.ReceiptDraft) (*model.Receipt, error)
	List(ctx context.Context) ([]model.Receipt, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Receipt, error)
	Update(ctx context.Context, id uuid.UUID, draft dto.ReceiptDraft) (*model.Receipt, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type receiptService struct {
	receipts repository.ReceiptRepository
	profiles repository.ProfileRepository
	settings repository.SettingsRepository
	now      func() time.Time
}

func NewReceiptService(
	receipts repository.ReceiptRepository,
	profiles repository.ProfileRepository,
	settings repository.SettingsRepository,
) ReceiptService {
	return &receiptService{receipts: receipts, profiles: profiles, settings: settings, now: time.Now}
}

func (s *receiptService) Create(ctx context.Context, draft dto.ReceiptDraft) (*model.Receipt, error) {
	rec := &model.Receipt{ID: uuid.New(), CreatedAt: s.now().UTC()}

	profile, err := resolveProfile(ctx, s.profiles, draft.ProfileID)
	if err != nil {
		return nil, err
	}
	rec.BusinessProfile = *profile

	if err := s.applyDraft(ctx, rec, draft); err != nil {
		return nil, err
	}

	existing, err := s.receipts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(existing))
	for _, r := range existing {
		numbers = append(numbers, r.ReceiptNumber)
	}
	rec.ReceiptNumber = nextNumber("RCP", numbers, s.now().UTC())

	if err := s.receipts.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	monitoring.DocumentsSaved.WithLabelValues("receipt").Inc()
	return rec, nil
}

func (s *receiptService) List(ctx context.Context) ([]model.Receipt, error) {
	return s.receipts.GetAll(ctx)
}

func (s *receiptService) Get(ctx context.Context, id uuid.UUID) (*model.Receipt, error) {
	rec, err := s.receipts.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return rec, err
}

// Update is a full overwrite: every draft field replaces the stored one.
// The id, number, creation time and profile snapshot survive — unless the
// draft names a different profile, which re-snapshots.
func (s *receiptService) Update(ctx context.Context, id uuid.UUID, draft dto.ReceiptDraft) (*model.Receipt, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if draft.ProfileID != nil {
		profile, err := resolveProfile(ctx, s.profiles, draft.ProfileID)
		if err != nil {
			return nil, err
		}
		rec.BusinessProfile = *profile
	}
	if err := s.applyDraft(ctx, rec, draft); err != nil {
		return nil, err
	}

	if err := s.receipts.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	monitoring.DocumentsSaved.WithLabelValues("receipt").Inc()
	return rec, nil
}

func (s *receiptService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.receipts.Delete(ctx, id); err != nil {
		return err
	}
	monitoring.DocumentsDeleted.WithLabelValues("receipt").Inc()
	return nil
}

// applyDraft writes all editable fields onto rec and recomputes the totals.
func (s *receiptService) applyDraft(ctx context.Context, rec *model.Receipt, draft dto.ReceiptDraft) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}

	txDate, err := time.Parse("2006-01-02", draft.TransactionDate)
	if err != nil {
		return err
	}

	rec.CustomerName = draft.CustomerName
	rec.CustomerEmail = draft.CustomerEmail
	rec.CustomerPhone = draft.CustomerPhone
	rec.CustomerAddress = draft.CustomerAddress
	rec.Items = buildItems(draft.Items)
	rec.Notes = draft.Notes
	rec.PaymentMethod = model.PaymentMethod(draft.PaymentMethod)
	rec.TransactionDate = txDate
	rec.Status = model.ReceiptStatus(defaulted(draft.Status, string(model.ReceiptCompleted)))
	rec.Template = model.TemplateID(defaulted(draft.Template, string(model.TemplateModern)))
	rec.Currency = defaulted(draft.Currency, settings.Currency)
	rec.UpdatedAt = s.now().UTC()

	result := totals.Calculate(rec.Items, draft.TaxRate, draft.DiscountRate)
	rec.Subtotal = result.Subtotal
	rec.TaxRate = draft.TaxRate
	rec.TaxAmount = result.TaxAmount
	rec.DiscountRate = draft.DiscountRate
	rec.DiscountAmount = result.DiscountAmount
	rec.Total = result.Total
	return nil
}

// ── Shared helpers ────────────────────────────────────────────────────────────

func resolveProfile(ctx context.Context, profiles repository.ProfileRepository, profileID *string) (*model.BusinessProfile, error) {
	if profileID != nil {
		id, err := uuid.Parse(*profileID)
		if err != nil {
			return nil, err
		}
		p, err := profiles.GetByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoProfile
		}
		return p, err
	}
	p, err := profiles.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	return p, nil
}

func buildItems(drafts []dto.ItemDraft) []model.LineItem {
	items := make([]model.LineItem, 0, len(drafts))
	for _, d := range drafts {
		items = append(items, model.NewLineItem(d.Description, d.Quantity, d.UnitPrice))
	}
	return items
}

func defaulted(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
