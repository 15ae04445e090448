package service

import (
	"context"
	"testing"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"
	"github.com/jaksoftwares/ReceiptPro/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClock() time.Time {
	return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
}

func seededProfiles() *memProfiles {
	p := model.BusinessProfile{
		ID: uuid.New(), Name: "Acme Traders", Email: "hello@acme.test",
		Phone: "555-0101", Address: "1 Main St", City: "Springfield", Country: "USA",
	}
	return &memProfiles{items: []model.BusinessProfile{p}, current: &p}
}

func newTestReceiptService(profiles *memProfiles) (*receiptService, *memReceipts) {
	receipts := &memReceipts{}
	svc := NewReceiptService(receipts, profiles, &memSettings{}).(*receiptService)
	svc.now = testClock
	return svc, receipts
}

func receiptDraft() dto.ReceiptDraft {
	return dto.ReceiptDraft{
		CustomerName:  "Jordan Diaz",
		CustomerEmail: "jordan@example.com",
		Items: []dto.ItemDraft{
			{Description: "Widget", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.RequireFromString("25.00")},
		},
		TaxRate:         decimal.NewFromInt(20),
		DiscountRate:    decimal.NewFromInt(10),
		PaymentMethod:   "cash",
		TransactionDate: "2024-01-15",
	}
}

func TestCreateReceiptAssignsSequentialNumbers(t *testing.T) {
	svc, _ := newTestReceiptService(seededProfiles())

	first, err := svc.Create(context.Background(), receiptDraft())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), receiptDraft())
	require.NoError(t, err)

	assert.Equal(t, "RCP-20240115-001", first.ReceiptNumber)
	assert.Equal(t, "RCP-20240115-002", second.ReceiptNumber)
}

func TestCreateReceiptComputesTotalsServerSide(t *testing.T) {
	svc, _ := newTestReceiptService(seededProfiles())

	// 4 × 25.00 = 100.00; 10% discount = 10.00; 20% tax on 90.00 = 18.00.
	rec, err := svc.Create(context.Background(), receiptDraft())
	require.NoError(t, err)

	assert.True(t, rec.Subtotal.Equal(decimal.RequireFromString("100.00")), "subtotal %s", rec.Subtotal)
	assert.True(t, rec.DiscountAmount.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, rec.TaxAmount.Equal(decimal.RequireFromString("18.00")))
	assert.True(t, rec.Total.Equal(decimal.RequireFromString("108.00")))
	assert.True(t, rec.Total.Equal(rec.Subtotal.Sub(rec.DiscountAmount).Add(rec.TaxAmount)))
}

func TestCreateReceiptDefaults(t *testing.T) {
	svc, _ := newTestReceiptService(seededProfiles())

	rec, err := svc.Create(context.Background(), receiptDraft())
	require.NoError(t, err)

	assert.Equal(t, model.ReceiptCompleted, rec.Status)
	assert.Equal(t, model.TemplateModern, rec.Template)
	assert.Equal(t, "USD", rec.Currency, "currency falls back to settings")
}

func TestCreateReceiptWithoutProfile(t *testing.T) {
	svc, _ := newTestReceiptService(&memProfiles{})

	_, err := svc.Create(context.Background(), receiptDraft())
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestReceiptSnapshotSurvivesProfileEdit(t *testing.T) {
	profiles := seededProfiles()
	svc, _ := newTestReceiptService(profiles)

	rec, err := svc.Create(context.Background(), receiptDraft())
	require.NoError(t, err)
	require.Equal(t, "Acme Traders", rec.BusinessProfile.Name)

	edited := profiles.items[0]
	edited.Name = "Acme Rebranded"
	require.NoError(t, profiles.Upsert(context.Background(), &edited))

	stored, err := svc.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", stored.BusinessProfile.Name)
}

func TestUpdateReceiptIsFullOverwrite(t *testing.T) {
	svc, _ := newTestReceiptService(seededProfiles())

	rec, err := svc.Create(context.Background(), receiptDraft())
	require.NoError(t, err)

	draft := receiptDraft()
	draft.CustomerName = "Sam Oduya"
	draft.Notes = "replacement order"
	draft.Items = []dto.ItemDraft{
		{Description: "Gadget", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("5.50")},
	}
	draft.TaxRate = decimal.Zero
	draft.DiscountRate = decimal.Zero

	updated, err := svc.Update(context.Background(), rec.ID, draft)
	require.NoError(t, err)

	assert.Equal(t, rec.ID, updated.ID)
	assert.Equal(t, rec.ReceiptNumber, updated.ReceiptNumber, "number survives edits")
	assert.Equal(t, rec.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Sam Oduya", updated.CustomerName)
	assert.True(t, updated.Total.Equal(decimal.RequireFromString("5.50")))
}

func TestUpdateReceiptNotFound(t *testing.T) {
	svc, _ := newTestReceiptService(seededProfiles())

	_, err := svc.Update(context.Background(), uuid.New(), receiptDraft())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReceipt(t *testing.T) {
	svc, store := newTestReceiptService(seededProfiles())

	rec, err := svc.Create(context.Background(), receiptDraft())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), rec.ID))
	assert.Empty(t, store.items)

	assert.ErrorIs(t, svc.Delete(context.Background(), rec.ID), ErrNotFound)
}

func TestNextNumberSkipsOtherDays(t *testing.T) {
	existing := []string{
		"RCP-20240114-007",
		"RCP-20240115-002",
		"RCP-20240115-005",
		"INV-20240115-009",
	}
	got := nextNumber("RCP", existing, testClock())
	assert.Equal(t, "RCP-20240115-006", got, "continues from the day's max, ignoring other days and kinds")

	assert.Equal(t, "RCP-20240116-001", nextNumber("RCP", existing, testClock().AddDate(0, 0, 1)))
}
