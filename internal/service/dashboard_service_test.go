package service

import (
	"context"
	"testing"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedReceipt(total string, day time.Time) model.Receipt {
	return model.Receipt{
		ID:              uuid.New(),
		ReceiptNumber:   "RCP-" + day.Format("20060102") + "-001",
		CustomerName:    "Jordan Diaz",
		Total:           decimal.RequireFromString(total),
		Status:          model.ReceiptCompleted,
		PaymentMethod:   model.PaymentCash,
		TransactionDate: day,
		CreatedAt:       day,
	}
}

func storedInvoice(total string, status model.InvoiceStatus, day time.Time) model.Invoice {
	return model.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-" + day.Format("20060102") + "-001",
		ClientName:    "Globex LLC",
		Total:         decimal.RequireFromString(total),
		Status:        status,
		IssueDate:     day,
		CreatedAt:     day,
	}
}

func TestDashboardStats(t *testing.T) {
	now := testClock()
	receipts := &memReceipts{items: []model.Receipt{
		storedReceipt("100.00", now),
		storedReceipt("50.00", now.AddDate(0, -1, 0)),
	}}
	invoices := &memInvoices{items: []model.Invoice{
		storedInvoice("200.00", model.InvoicePaid, now),
		storedInvoice("75.00", model.InvoiceSent, now),
		storedInvoice("25.00", model.InvoiceOverdue, now),
		storedInvoice("999.00", model.InvoiceDraft, now),
	}}

	svc := NewDashboardService(receipts, invoices).(*dashboardService)
	svc.now = testClock

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalReceipts)
	assert.Equal(t, 4, stats.TotalInvoices)
	assert.Equal(t, 1, stats.PaidInvoices)
	assert.Equal(t, 1, stats.OverdueInvoices)
	assert.Equal(t, map[string]int{"cash": 2}, stats.PaymentMethods)

	// Revenue: all receipts + paid invoices. Outstanding: sent + overdue.
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("350.00")), "revenue %s", stats.TotalRevenue)
	assert.True(t, stats.OutstandingAmount.Equal(decimal.RequireFromString("100.00")))
}

func TestDashboardRevenueByMonth(t *testing.T) {
	now := testClock()
	receipts := &memReceipts{items: []model.Receipt{
		storedReceipt("100.00", now),
		storedReceipt("40.00", now.AddDate(0, -2, 0)),
	}}
	svc := NewDashboardService(receipts, &memInvoices{}).(*dashboardService)
	svc.now = testClock

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.RevenueByMonth, revenueMonths)
	last := stats.RevenueByMonth[revenueMonths-1]
	assert.Equal(t, "2024-01", last.Month)
	assert.True(t, last.Revenue.Equal(decimal.RequireFromString("100.00")))

	// Months without revenue appear as zero rows, oldest first.
	assert.Equal(t, "2023-08", stats.RevenueByMonth[0].Month)
	assert.True(t, stats.RevenueByMonth[0].Revenue.IsZero())
	assert.True(t, stats.RevenueByMonth[3].Revenue.Equal(decimal.RequireFromString("40.00")))
}

func TestDashboardRevenueByMonthAtMonthEnd(t *testing.T) {
	// Mar 31: naive month arithmetic would duplicate December and skip
	// November and February in the trailing series.
	monthEnd := time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)
	receipts := &memReceipts{items: []model.Receipt{storedReceipt("100.00", monthEnd)}}
	svc := NewDashboardService(receipts, &memInvoices{}).(*dashboardService)
	svc.now = func() time.Time { return monthEnd }

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	months := make([]string, 0, revenueMonths)
	for _, row := range stats.RevenueByMonth {
		months = append(months, row.Month)
	}
	assert.Equal(t, []string{"2023-10", "2023-11", "2023-12", "2024-01", "2024-02", "2024-03"}, months)
	assert.True(t, stats.RevenueByMonth[revenueMonths-1].Revenue.Equal(decimal.RequireFromString("100.00")))
}

func TestDashboardRecentDocumentsCapped(t *testing.T) {
	now := testClock()
	receipts := &memReceipts{}
	for i := 0; i < 8; i++ {
		receipts.items = append(receipts.items, storedReceipt("10.00", now.AddDate(0, 0, -i)))
	}
	svc := NewDashboardService(receipts, &memInvoices{}).(*dashboardService)
	svc.now = testClock

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.RecentReceipts, recentDocLimit)
	assert.Equal(t, now.Format("2006-01-02"), stats.RecentReceipts[0].Date, "newest first")
}
