package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jaksoftwares/ReceiptPro/internal/model"

	"github.com/google/uuid"
)

type InvoiceRepository interface {
	GetAll(ctx context.Context) ([]model.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	Upsert(ctx context.Context, inv *model.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceRepo struct{ kv KV }

func NewInvoiceRepository(kv KV) InvoiceRepository { return &invoiceRepo{kv: kv} }

func (r *invoiceRepo) GetAll(ctx context.Context) ([]model.Invoice, error) {
	raw, ok, err := r.kv.Get(ctx, KeyInvoices)
	if err != nil {
		return nil, fmt.Errorf("invoices: load: %w", err)
	}
	if !ok {
		return []model.Invoice{}, nil
	}
	var invoices []model.Invoice
	if err := json.Unmarshal(raw, &invoices); err != nil {
		return nil, fmt.Errorf("invoices: decode: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	invoices, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			return &invoices[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *invoiceRepo) Upsert(ctx context.Context, inv *model.Invoice) error {
	invoices, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range invoices {
		if invoices[i].ID == inv.ID {
			invoices[i] = *inv
			replaced = true
			break
		}
	}
	if !replaced {
		invoices = append(invoices, *inv)
	}
	return r.storeAll(ctx, invoices)
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	invoices, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := invoices[:0]
	for _, inv := range invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	return r.storeAll(ctx, kept)
}

func (r *invoiceRepo) storeAll(ctx context.Context, invoices []model.Invoice) error {
	data, err := json.Marshal(invoices)
	if err != nil {
		return fmt.Errorf("invoices: encode: %w", err)
	}
	if err := r.kv.Set(ctx, KeyInvoices, data); err != nil {
		return fmt.Errorf("invoices: store: %w", err)
	}
	return nil
}
