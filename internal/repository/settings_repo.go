package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jaksoftwares/ReceiptPro/internal/model"
)

type SettingsRepository interface {
	// Get returns stored settings, or the defaults when nothing was saved yet.
	Get(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, s model.Settings) error
}

type settingsRepo struct{ kv KV }

func NewSettingsRepository(kv KV) SettingsRepository { return &settingsRepo{kv: kv} }

func (r *settingsRepo) Get(ctx context.Context) (model.Settings, error) {
	raw, ok, err := r.kv.Get(ctx, KeySettings)
	if err != nil {
		return model.Settings{}, fmt.Errorf("settings: load: %w", err)
	}
	if !ok {
		return model.DefaultSettings(), nil
	}
	var s model.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.Settings{}, fmt.Errorf("settings: decode: %w", err)
	}
	return s, nil
}

func (r *settingsRepo) Save(ctx context.Context, s model.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := r.kv.Set(ctx, KeySettings, data); err != nil {
		return fmt.Errorf("settings: store: %w", err)
	}
	return nil
}
