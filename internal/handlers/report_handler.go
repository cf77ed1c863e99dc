package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

func (h *ReportHandler) GetSummary(c *gin.Context) {
	_, role := getUserAndRole(c)

	summary, err := h.Service.GetSummary(role)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CommissionStatement streams the ledger as a PDF download.
func (h *ReportHandler) CommissionStatement(c *gin.Context) {
	_, role := getUserAndRole(c)

	out, err := h.Service.CommissionStatement(role)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="commission-statement.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
