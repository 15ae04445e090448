package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jaksoftwares/ReceiptPro/internal/model"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	GetAll(ctx context.Context) ([]model.BusinessProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.BusinessProfile, error)
	Upsert(ctx context.Context, p *model.BusinessProfile) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Current-profile pointer (singleton selection).
	GetCurrent(ctx context.Context) (*model.BusinessProfile, error)
	SetCurrent(ctx context.Context, p *model.BusinessProfile) error
	ClearCurrent(ctx context.Context) error
}

type profileRepo struct{ kv KV }

func NewProfileRepository(kv KV) ProfileRepository { return &profileRepo{kv: kv} }

func (r *profileRepo) GetAll(ctx context.Context) ([]model.BusinessProfile, error) {
	raw, ok, err := r.kv.Get(ctx, KeyBusinessProfiles)
	if err != nil {
		return nil, fmt.Errorf("profiles: load: %w", err)
	}
	if !ok {
		return []model.BusinessProfile{}, nil
	}
	var profiles []model.BusinessProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("profiles: decode: %w", err)
	}
	return profiles, nil
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.BusinessProfile, error) {
	profiles, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *profileRepo) Upsert(ctx context.Context, p *model.BusinessProfile) error {
	profiles, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range profiles {
		if profiles[i].ID == p.ID {
			profiles[i] = *p
			replaced = true
			break
		}
	}
	if !replaced {
		profiles = append(profiles, *p)
	}
	if err := r.storeAll(ctx, profiles); err != nil {
		return err
	}
	// Keep the current-profile snapshot in sync when the selected profile
	// itself is edited. Stored documents keep their own copies untouched.
	current, err := r.GetCurrent(ctx)
	if err == nil && current != nil && current.ID == p.ID {
		return r.SetCurrent(ctx, p)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	profiles, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := profiles[:0]
	for _, p := range profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := r.storeAll(ctx, kept); err != nil {
		return err
	}
	// Deleting the selected profile must not leave a dangling pointer.
	current, err := r.GetCurrent(ctx)
	if err == nil && current != nil && current.ID == id {
		return r.ClearCurrent(ctx)
	}
	return nil
}

func (r *profileRepo) GetCurrent(ctx context.Context) (*model.BusinessProfile, error) {
	raw, ok, err := r.kv.Get(ctx, KeyCurrentProfile)
	if err != nil {
		return nil, fmt.Errorf("current profile: load: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var p model.BusinessProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("current profile: decode: %w", err)
	}
	return &p, nil
}

func (r *profileRepo) SetCurrent(ctx context.Context, p *model.BusinessProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("current profile: encode: %w", err)
	}
	if err := r.kv.Set(ctx, KeyCurrentProfile, data); err != nil {
		return fmt.Errorf("current profile: store: %w", err)
	}
	return nil
}

func (r *profileRepo) ClearCurrent(ctx context.Context) error {
	if err := r.kv.Del(ctx, KeyCurrentProfile); err != nil {
		return fmt.Errorf("current profile: clear: %w", err)
	}
	return nil
}

func (r *profileRepo) storeAll(ctx context.Context, profiles []model.BusinessProfile) error {
	data, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("profiles: encode: %w", err)
	}
	if err := r.kv.Set(ctx, KeyBusinessProfiles, data); err != nil {
		return fmt.Errorf("profiles: store: %w", err)
	}
	return nil
}
