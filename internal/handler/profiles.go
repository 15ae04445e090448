package handler

import (
	"net/http"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"
	"github.com/jaksoftwares/ReceiptPro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfilesHandler struct{ svc service.ProfileService }

func NewProfilesHandler(svc service.ProfileService) *ProfilesHandler {
	return &ProfilesHandler{svc: svc}
}

// Create godoc
// @Summary      Create a business profile
// @Description  The first profile created becomes the current one automatically.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body body dto.ProfileRequest true "Profile fields"
// @Success      201  {object} model.BusinessProfile
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/profiles [post]
func (h *ProfilesHandler) Create(c *gin.Context) {
	var req dto.ProfileRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// List godoc
// @Summary      List business profiles
// @Tags         profiles
// @Produce      json
// @Success      200 {array} model.BusinessProfile
// @Router       /v1/profiles [get]
func (h *ProfilesHandler) List(c *gin.Context) {
	profiles, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// Get godoc
// @Summary      Get one business profile
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Profile UUID"
// @Success      200 {object} model.BusinessProfile
// @Failure      404 {object} apierror.APIError
// @Router       /v1/profiles/{id} [get]
func (h *ProfilesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update godoc
// @Summary      Replace a business profile
// @Description  Editing the current profile refreshes its snapshot; stored documents keep their own copies.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id   path string             true "Profile UUID"
// @Param        body body dto.ProfileRequest true "Profile fields"
// @Success      200  {object} model.BusinessProfile
// @Failure      404  {object} apierror.APIError
// @Router       /v1/profiles/{id} [put]
func (h *ProfilesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ProfileRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete godoc
// @Summary      Delete a business profile
// @Description  Deleting the current profile clears the current selection.
// @Tags         profiles
// @Param        id path string true "Profile UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/profiles/{id} [delete]
func (h *ProfilesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCurrent godoc
// @Summary      Get the current profile
// @Tags         profiles
// @Produce      json
// @Success      200 {object} model.BusinessProfile
// @Failure      409 {object} apierror.APIError
// @Router       /v1/profiles/current [get]
func (h *ProfilesHandler) GetCurrent(c *gin.Context) {
	p, err := h.svc.GetCurrent(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetCurrent godoc
// @Summary      Select the current profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body body dto.SetCurrentProfileRequest true "Profile selection"
// @Success      200  {object} model.BusinessProfile
// @Failure      404  {object} apierror.APIError
// @Router       /v1/profiles/current [put]
func (h *ProfilesHandler) SetCurrent(c *gin.Context) {
	var req dto.SetCurrentProfileRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, _ := uuid.Parse(req.ProfileID) // validated by the uuid tag
	p, err := h.svc.SetCurrent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
