package handler

import (
	"net/http"

	"github.com/jaksoftwares/ReceiptPro/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats godoc
// @Summary      Dashboard statistics
// @Description  Document counts, revenue, outstanding invoice amounts, recent documents and the trailing revenue-by-month series.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dto.DashboardStats
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
