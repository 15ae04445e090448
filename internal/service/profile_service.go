package service

import (
	"context"
	"errors"
	"time"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"
	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/repository"

	"github.com/google/uuid"
)

// ProfileService manages business profiles and the current-profile selection.
// The first profile ever created becomes current automatically.
type ProfileService interface {
	Create(ctx context.Context, req dto.ProfileRequest) (*model.BusinessProfile, error)
	List(ctx context.Context) ([]model.BusinessProfile, error)
	Get(ctx context.Context, id uuid.UUID) (*model.BusinessProfile, error)
	Update(ctx context.Context, id uuid.UUID, req dto.ProfileRequest) (*model.BusinessProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetCurrent(ctx context.Context) (*model.BusinessProfile, error)
	SetCurrent(ctx context.Context, id uuid.UUID) (*model.BusinessProfile, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	now      func() time.Time
}

func NewProfileService(profiles repository.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles, now: time.Now}
}

func (s *profileService) Create(ctx context.Context, req dto.ProfileRequest) (*model.BusinessProfile, error) {
	p := &model.BusinessProfile{ID: uuid.New(), CreatedAt: s.now().UTC()}
	applyProfile(p, req, s.now().UTC())

	existing, err := s.profiles.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		if err := s.profiles.SetCurrent(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *profileService) List(ctx context.Context) ([]model.BusinessProfile, error) {
	return s.profiles.GetAll(ctx)
}

func (s *profileService) Get(ctx context.Context, id uuid.UUID) (*model.BusinessProfile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *profileService) Update(ctx context.Context, id uuid.UUID, req dto.ProfileRequest) (*model.BusinessProfile, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProfile(p, req, s.now().UTC())
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.profiles.Delete(ctx, id)
}

func (s *profileService) GetCurrent(ctx context.Context) (*model.BusinessProfile, error) {
	p, err := s.profiles.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	return p, nil
}

func (s *profileService) SetCurrent(ctx context.Context, id uuid.UUID) (*model.BusinessProfile, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.SetCurrent(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func applyProfile(p *model.BusinessProfile, req dto.ProfileRequest, now time.Time) {
	p.Name = req.Name
	p.Email = req.Email
	p.Phone = req.Phone
	p.Address = req.Address
	p.City = req.City
	p.State = req.State
	p.ZipCode = req.ZipCode
	p.Country = req.Country
	p.Website = req.Website
	p.Logo = req.Logo
	p.TaxNumber = req.TaxNumber
	p.UpdatedAt = now
}
