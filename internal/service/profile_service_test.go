package service

import (
	"context"
	"testing"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileRequest(name string) dto.ProfileRequest {
	return dto.ProfileRequest{
		Name:    name,
		Email:   "hello@acme.test",
		Phone:   "555-0101",
		Address: "1 Main St",
		City:    "Springfield",
		Country: "USA",
	}
}

func TestFirstProfileBecomesCurrent(t *testing.T) {
	store := &memProfiles{}
	svc := NewProfileService(store)

	first, err := svc.Create(context.Background(), profileRequest("Acme Traders"))
	require.NoError(t, err)

	current, err := svc.GetCurrent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)

	// A second profile does not steal the selection.
	_, err = svc.Create(context.Background(), profileRequest("Side Hustle Ltd"))
	require.NoError(t, err)
	current, err = svc.GetCurrent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)
}

func TestSetCurrentUnknownProfile(t *testing.T) {
	svc := NewProfileService(&memProfiles{})

	_, err := svc.SetCurrent(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCurrentWithoutSelection(t *testing.T) {
	svc := NewProfileService(&memProfiles{})

	_, err := svc.GetCurrent(context.Background())
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestUpdateCurrentProfileRefreshesSelection(t *testing.T) {
	store := &memProfiles{}
	svc := NewProfileService(store)

	p, err := svc.Create(context.Background(), profileRequest("Acme Traders"))
	require.NoError(t, err)

	req := profileRequest("Acme Rebranded")
	_, err = svc.Update(context.Background(), p.ID, req)
	require.NoError(t, err)

	current, err := svc.GetCurrent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Acme Rebranded", current.Name)
}

func TestDeleteCurrentProfileClearsSelection(t *testing.T) {
	store := &memProfiles{}
	svc := NewProfileService(store)

	p, err := svc.Create(context.Background(), profileRequest("Acme Traders"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), p.ID))

	_, err = svc.GetCurrent(context.Background())
	assert.ErrorIs(t, err, ErrNoProfile)
}
