package dto

import "github.com/shopspring/decimal"

// ─── Response DTOs ───────────────────────────────────────────────────────────

// DashboardStats aggregates the stored documents for GET /v1/dashboard/stats.
// Revenue sums receipt totals plus paid invoice totals; outstanding sums
// sent and overdue invoices.
type DashboardStats struct {
	TotalReceipts     int             `json:"total_receipts"`
	TotalInvoices     int             `json:"total_invoices"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	PaidInvoices      int             `json:"paid_invoices"`
	OverdueInvoices   int             `json:"overdue_invoices"`
	PaymentMethods    map[string]int  `json:"payment_methods"`
	RecentReceipts    []RecentDoc     `json:"recent_receipts"`
	RecentInvoices    []RecentDoc     `json:"recent_invoices"`
	RevenueByMonth    []MonthRevenue  `json:"revenue_by_month"`
}

// RecentDoc is a list row for the dashboard's latest-documents panels.
type RecentDoc struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"`
	PartyName string          `json:"party_name"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	Date      string          `json:"date"`
}

// MonthRevenue is one bar of the trailing revenue chart.
type MonthRevenue struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
}
