package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jaksoftwares/ReceiptPro/internal/model"

	"github.com/google/uuid"
)

type ReceiptRepository interface {
	GetAll(ctx context.Context) ([]model.Receipt, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Receipt, error)
	Upsert(ctx context.Context, rec *model.Receipt) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type receiptRepo struct{ kv KV }

func NewReceiptRepository(kv KV) ReceiptRepository { return &receiptRepo{kv: kv} }

func (r *receiptRepo) GetAll(ctx context.Context) ([]model.Receipt, error) {
	raw, ok, err := r.kv.Get(ctx, KeyReceipts)
	if err != nil {
		return nil, fmt.Errorf("receipts: load: %w", err)
	}
	if !ok {
		return []model.Receipt{}, nil
	}
	var receipts []model.Receipt
	if err := json.Unmarshal(raw, &receipts); err != nil {
		return nil, fmt.Errorf("receipts: decode: %w", err)
	}
	return receipts, nil
}

func (r *receiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Receipt, error) {
	receipts, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range receipts {
		if receipts[i].ID == id {
			return &receipts[i], nil
		}
	}
	return nil, ErrNotFound
}

// Upsert replaces the stored record wholesale when the id already exists —
// the edit flow is a full overwrite, never a partial update.
func (r *receiptRepo) Upsert(ctx context.Context, rec *model.Receipt) error {
	receipts, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range receipts {
		if receipts[i].ID == rec.ID {
			receipts[i] = *rec
			replaced = true
			break
		}
	}
	if !replaced {
		receipts = append(receipts, *rec)
	}
	return r.storeAll(ctx, receipts)
}

func (r *receiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	receipts, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := receipts[:0]
	for _, rec := range receipts {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return r.storeAll(ctx, kept)
}

func (r *receiptRepo) storeAll(ctx context.Context, receipts []model.Receipt) error {
	data, err := json.Marshal(receipts)
	if err != nil {
		return fmt.Errorf("receipts: encode: %w", err)
	}
	if err := r.kv.Set(ctx, KeyReceipts, data); err != nil {
		return fmt.Errorf("receipts: store: %w", err)
	}
	return nil
}
