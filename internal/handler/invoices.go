package handler

import (
	"net/http"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"
	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/service"

	"github.com/gin-gonic/gin"
)

type InvoicesHandler struct {
	svc     service.InvoiceService
	exports service.ExportService
	emails  service.EmailService
}

func NewInvoicesHandler(svc service.InvoiceService, exports service.ExportService, emails service.EmailService) *InvoicesHandler {
	return &InvoicesHandler{svc: svc, exports: exports, emails: emails}
}

// Create godoc
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body body dto.InvoiceDraft true "Invoice draft"
// @Success      201  {object} model.Invoice
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/invoices [post]
func (h *InvoicesHandler) Create(c *gin.Context) {
	var draft dto.InvoiceDraft
	if !bindAndValidate(c, &draft) {
		return
	}
	inv, err := h.svc.Create(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// List godoc
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Success      200 {array} model.Invoice
// @Router       /v1/invoices [get]
func (h *InvoicesHandler) List(c *gin.Context) {
	invoices, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// Get godoc
// @Summary      Get one invoice
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} model.Invoice
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id} [get]
func (h *InvoicesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	inv, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// Update godoc
// @Summary      Replace an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id   path string           true "Invoice UUID"
// @Param        body body dto.InvoiceDraft true "Invoice draft"
// @Success      200  {object} model.Invoice
// @Failure      404  {object} apierror.APIError
// @Router       /v1/invoices/{id} [put]
func (h *InvoicesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var draft dto.InvoiceDraft
	if !bindAndValidate(c, &draft) {
		return
	}
	inv, err := h.svc.Update(c.Request.Context(), id, draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// Delete godoc
// @Summary      Delete an invoice
// @Tags         invoices
// @Param        id path string true "Invoice UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id} [delete]
func (h *InvoicesHandler) Delete(c *gin.Context) {
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
// @Summary      Export an invoice as PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id path string true "Invoice UUID"
// @Success      200 {file} binary
// @Failure      409 {object} apierror.APIError
// @Router       /v1/invoices/{id}/export [post]
func (h *InvoicesHandler) Export(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.exports.Export(c.Request.Context(), model.DocTypeInvoice, id)
	if err != nil {
		respondError(c, err)
		return
	}
	writePDF(c, result.Filename, result.Data, result.Pages, result.UsedFallback)
}

// Email godoc
// @Summary      Email an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id   path string               true "Invoice UUID"
// @Param        body body dto.SendEmailRequest true "Recipient override and custom message"
// @Success      202  {object} dto.SendEmailResponse
// @Failure      422  {object} apierror.APIError
// @Router       /v1/invoices/{id}/email [post]
func (h *InvoicesHandler) Email(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.SendEmailRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.emails.Send(c.Request.Context(), model.DocTypeInvoice, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}
