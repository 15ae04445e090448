package service

import (
	"context"

	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/repository"

	"github.com/google/uuid"
)

// In-memory repository stubs. They reproduce the store contract (value
// snapshots, ErrNotFound) without touching Redis.

type memReceipts struct{ items []model.Receipt }

var _ repository.ReceiptRepository = (*memReceipts)(nil)

func (m *memReceipts) GetAll(context.Context) ([]model.Receipt, error) {
	return append([]model.Receipt(nil), m.items...), nil
}

func (m *memReceipts) GetByID(_ context.Context, id uuid.UUID) (*model.Receipt, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			rec := m.items[i]
			return &rec, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memReceipts) Upsert(_ context.Context, rec *model.Receipt) error {
	for i := range m.items {
		if m.items[i].ID == rec.ID {
			m.items[i] = *rec
			return nil
		}
	}
	m.items = append(m.items, *rec)
	return nil
}

func (m *memReceipts) Delete(_ context.Context, id uuid.UUID) error {
	kept := m.items[:0]
	for _, rec := range m.items {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	m.items = kept
	return nil
}

type memInvoices struct{ items []model.Invoice }

var _ repository.InvoiceRepository = (*memInvoices)(nil)

func (m *memInvoices) GetAll(context.Context) ([]model.Invoice, error) {
	return append([]model.Invoice(nil), m.items...), nil
}

func (m *memInvoices) GetByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			inv := m.items[i]
			return &inv, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memInvoices) Upsert(_ context.Context, inv *model.Invoice) error {
	for i := range m.items {
		if m.items[i].ID == inv.ID {
			m.items[i] = *inv
			return nil
		}
	}
	m.items = append(m.items, *inv)
	return nil
}

func (m *memInvoices) Delete(_ context.Context, id uuid.UUID) error {
	kept := m.items[:0]
	for _, inv := range m.items {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	m.items = kept
	return nil
}

type memProfiles struct {
	items   []model.BusinessProfile
	current *model.BusinessProfile
}

var _ repository.ProfileRepository = (*memProfiles)(nil)

func (m *memProfiles) GetAll(context.Context) ([]model.BusinessProfile, error) {
	return append([]model.BusinessProfile(nil), m.items...), nil
}

func (m *memProfiles) GetByID(_ context.Context, id uuid.UUID) (*model.BusinessProfile, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			p := m.items[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memProfiles) Upsert(_ context.Context, p *model.BusinessProfile) error {
	for i := range m.items {
		if m.items[i].ID == p.ID {
			m.items[i] = *p
			if m.current != nil && m.current.ID == p.ID {
				cp := *p
				m.current = &cp
			}
			return nil
		}
	}
	m.items = append(m.items, *p)
	return nil
}

func (m *memProfiles) Delete(_ context.Context, id uuid.UUID) error {
	kept := m.items[:0]
	for _, p := range m.items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.items = kept
	if m.current != nil && m.current.ID == id {
		m.current = nil
	}
	return nil
}

func (m *memProfiles) GetCurrent(context.Context) (*model.BusinessProfile, error) {
	if m.current == nil {
		return nil, nil
	}
	p := *m.current
	return &p, nil
}

func (m *memProfiles) SetCurrent(_ context.Context, p *model.BusinessProfile) error {
	cp := *p
	m.current = &cp
	return nil
}

func (m *memProfiles) ClearCurrent(context.Context) error {
	m.current = nil
	return nil
}

type memSettings struct {
	saved *model.Settings
}

var _ repository.SettingsRepository = (*memSettings)(nil)

func (m *memSettings) Get(context.Context) (model.Settings, error) {
	if m.saved == nil {
		return model.DefaultSettings(), nil
	}
	return *m.saved, nil
}

func (m *memSettings) Save(_ context.Context, s model.Settings) error {
	m.saved = &s
	return nil
}
