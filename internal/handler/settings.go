package handler

import (
	"net/http"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"
	"github.com/jaksoftwares/ReceiptPro/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct{ svc service.SettingsService }

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get godoc
// @Summary      Get settings
// @Description  Returns defaults (USD, 0% tax, MM/dd/yyyy) when nothing has been saved yet.
// @Tags         settings
// @Produce      json
// @Success      200 {object} model.Settings
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary      Replace settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body body dto.SettingsRequest true "Settings"
// @Success      200  {object} model.Settings
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	settings, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
