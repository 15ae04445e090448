package handler

import (
	"fmt"
	"net/http"

	"github.com/jaksoftwares/ReceiptPro/internal/service"

	"github.com/gin-gonic/gin"
)

type DataExportHandler struct{ svc service.DataExportService }

func NewDataExportHandler(svc service.DataExportService) *DataExportHandler {
	return &DataExportHandler{svc: svc}
}

// Bundle godoc
// @Summary      Export all data
// @Description  Returns the whole database (profiles, receipts, invoices, settings) as one downloadable JSON bundle.
// @Tags         export
// @Produce      json
// @Success      200 {object} dto.DataBundle
// @Router       /v1/export [get]
func (h *DataExportHandler) Bundle(c *gin.Context) {
	bundle, filename, err := h.svc.Bundle(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, bundle)
}
