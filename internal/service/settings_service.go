package service

import (
	"context"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"
	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/repository"
)

// SettingsService reads and replaces the app-wide preferences.
type SettingsService interface {
	Get(ctx context.Context) (model.Settings, error)
	Update(ctx context.Context, req dto.SettingsRequest) (model.Settings, error)
}

type settingsService struct {
	settings repository.SettingsRepository
}

func NewSettingsService(settings repository.SettingsRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (model.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, req dto.SettingsRequest) (model.Settings, error) {
	next := model.Settings{
		Currency:       req.Currency,
		DefaultTaxRate: req.DefaultTaxRate,
		DateFormat:     req.DateFormat,
		Email: model.EmailSettings{
			SMTPHost:     req.Email.SMTPHost,
			SMTPPort:     req.Email.SMTPPort,
			SMTPUsername: req.Email.SMTPUsername,
			SMTPPassword: req.Email.SMTPPassword,
			FromAddress:  req.Email.FromAddress,
		},
	}
	if err := s.settings.Save(ctx, next); err != nil {
		return model.Settings{}, err
	}
	return next, nil
}
