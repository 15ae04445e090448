package handler

import (
	"fmt"
	"net/http"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"
	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/service"

	"github.com/gin-gonic/gin"
)

type ReceiptsHandler struct {
	svc     service.ReceiptService
	exports service.ExportService
	emails  service.EmailService
}

func NewReceiptsHandler(svc service.ReceiptService, exports service.ExportService, emails service.EmailService) *ReceiptsHandler {
	return &ReceiptsHandler{svc: svc, exports: exports, emails: emails}
}

// Create godoc
// @Summary      Create a receipt
// @Description  Finalizes a draft: snapshots the business profile, assigns the number and recomputes totals server-side.
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        body body dto.ReceiptDraft true "Receipt draft"
// @Success      201  {object} model.Receipt
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/receipts [post]
func (h *ReceiptsHandler) Create(c *gin.Context) {
	var draft dto.ReceiptDraft
	if !bindAndValidate(c, &draft) {
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// List godoc
// @Summary      List receipts
// @Tags         receipts
// @Produce      json
// @Success      200 {array} model.Receipt
// @Router       /v1/receipts [get]
func (h *ReceiptsHandler) List(c *gin.Context) {
	receipts, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipts)
}

// Get godoc
// @Summary      Get one receipt
// @Tags         receipts
// @Produce      json
// @Param        id path string true "Receipt UUID"
// @Success      200 {object} model.Receipt
// @Failure      404 {object} apierror.APIError
// @Router       /v1/receipts/{id} [get]
func (h *ReceiptsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Update godoc
// @Summary      Replace a receipt
// @Description  Full overwrite — every editable field is taken from the draft and totals are recomputed.
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        id   path string           true "Receipt UUID"
// @Param        body body dto.ReceiptDraft true "Receipt draft"
// @Success      200  {object} model.Receipt
// @Failure      404  {object} apierror.APIError
// @Router       /v1/receipts/{id} [put]
func (h *ReceiptsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var draft dto.ReceiptDraft
	if !bindAndValidate(c, &draft) {
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), id, draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete godoc
// @Summary      Delete a receipt
// @Tags         receipts
// @Param        id path string true "Receipt UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/receipts/{id} [delete]
func (h *ReceiptsHandler) Delete(c *gin.Context) {
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

// Export godoc
// @Summary      Export a receipt as PDF
// @Description  Runs the pagination pipeline and streams the PDF. A concurrent export of the same receipt gets 409.
// @Tags         receipts
// @Produce      application/pdf
// @Param        id path string true "Receipt UUID"
// @Success      200 {file} binary
// @Failure      409 {object} apierror.APIError
// @Router       /v1/receipts/{id}/export [post]
func (h *ReceiptsHandler) Export(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.exports.Export(c.Request.Context(), model.DocTypeReceipt, id)
	if err != nil {
		respondError(c, err)
		return
	}
	writePDF(c, result.Filename, result.Data, result.Pages, result.UsedFallback)
}

// Email godoc
// @Summary      Email a receipt
// @Description  Exports the PDF and queues delivery to the customer via the worker pool.
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        id   path string               true "Receipt UUID"
// @Param        body body dto.SendEmailRequest true "Recipient override and custom message"
// @Success      202  {object} dto.SendEmailResponse
// @Failure      422  {object} apierror.APIError
// @Router       /v1/receipts/{id}/email [post]
func (h *ReceiptsHandler) Email(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.SendEmailRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.emails.Send(c.Request.Context(), model.DocTypeReceipt, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

// writePDF streams an export result as a download.
func writePDF(c *gin.Context, filename string, data []byte, pages int, fallback bool) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Export-Pages", fmt.Sprintf("%d", pages))
	if fallback {
		c.Header("X-Export-Fallback", "true")
	}
	c.Data(http.StatusOK, "application/pdf", data)
}
