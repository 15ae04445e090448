package service

import (
	"context"
	"sort"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"
	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	recentDocLimit = 5
	revenueMonths  = 6
)

// DashboardService aggregates the stored documents into the stats panel.
// Revenue counts every receipt plus paid invoices; outstanding counts sent
// and overdue invoices.
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	receipts repository.ReceiptRepository
	invoices repository.InvoiceRepository
	now      func() time.Time
}

func NewDashboardService(receipts repository.ReceiptRepository, invoices repository.InvoiceRepository) DashboardService {
	return &dashboardService{receipts: receipts, invoices: invoices, now: time.Now}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	receipts, err := s.receipts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{
		TotalReceipts:     len(receipts),
		TotalInvoices:     len(invoices),
		TotalRevenue:      decimal.Zero,
		OutstandingAmount: decimal.Zero,
		PaymentMethods:    make(map[string]int),
	}

	monthly := make(map[string]decimal.Decimal)
	for _, r := range receipts {
		stats.TotalRevenue = stats.TotalRevenue.Add(r.Total)
		stats.PaymentMethods[string(r.PaymentMethod)]++
		month := r.TransactionDate.Format("2006-01")
		monthly[month] = monthly[month].Add(r.Total)
	}
	for _, inv := range invoices {
		switch inv.Status {
		case model.InvoicePaid:
			stats.PaidInvoices++
			stats.TotalRevenue = stats.TotalRevenue.Add(inv.Total)
			month := inv.IssueDate.Format("2006-01")
			monthly[month] = monthly[month].Add(inv.Total)
		case model.InvoiceOverdue:
			stats.OverdueInvoices++
			stats.OutstandingAmount = stats.OutstandingAmount.Add(inv.Total)
		case model.InvoiceSent:
			stats.OutstandingAmount = stats.OutstandingAmount.Add(inv.Total)
		}
	}

	stats.RecentReceipts = recentReceipts(receipts)
	stats.RecentInvoices = recentInvoices(invoices)
	stats.RevenueByMonth = trailingMonths(monthly, s.now().UTC())
	return stats, nil
}

func recentReceipts(receipts []model.Receipt) []dto.RecentDoc {
	sort.Slice(receipts, func(i, j int) bool {
		return receipts[i].CreatedAt.After(receipts[j].CreatedAt)
	})
	out := make([]dto.RecentDoc, 0, recentDocLimit)
	for _, r := range receipts {
		if len(out) == recentDocLimit {
			break
		}
		out = append(out, dto.RecentDoc{
			ID:        r.ID.String(),
			Number:    r.ReceiptNumber,
			PartyName: r.CustomerName,
			Total:     r.Total,
			Status:    string(r.Status),
			Date:      r.TransactionDate.Format("2006-01-02"),
		})
	}
	return out
}

func recentInvoices(invoices []model.Invoice) []dto.RecentDoc {
	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	out := make([]dto.RecentDoc, 0, recentDocLimit)
	for _, inv := range invoices {
		if len(out) == recentDocLimit {
			break
		}
		out = append(out, dto.RecentDoc{
			ID:        inv.ID.String(),
			Number:    inv.InvoiceNumber,
			PartyName: inv.ClientName,
			Total:     inv.Total,
			Status:    string(inv.Status),
			Date:      inv.IssueDate.Format("2006-01-02"),
		})
	}
	return out
}

// trailingMonths returns the last revenueMonths buckets oldest-first, with a
// zero row for months that had no revenue. Stepping back from the first of
// the month keeps AddDate from normalizing month-end dates (Mar 31 − 1 month
// would land in March again).
func trailingMonths(monthly map[string]decimal.Decimal, now time.Time) []dto.MonthRevenue {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]dto.MonthRevenue, 0, revenueMonths)
	for i := revenueMonths - 1; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0).Format("2006-01")
		revenue, ok := monthly[month]
		if !ok {
			revenue = decimal.Zero
		}
		out = append(out, dto.MonthRevenue{Month: month, Revenue: revenue})
	}
	return out
}
