// Package report exposes the PDF export endpoint.
package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"incidentdesk/internal/application/report/usecases"
	"incidentdesk/internal/shared/logger"
	"incidentdesk/internal/shared/utils"
)

const (
	actionGenerateSingle = "generate_single_report"
	actionGenerateAll    = "generate_all_report"
)

type GenerateRequest struct {
	Action   string `json:"action" validate:"required"`
	TicketID uint   `json:"ticket_id"`
}

type Handler struct {
	singleUC *usecases.SingleReportUseCase
	batchUC  *usecases.BatchReportUseCase
	logger   logger.Interface
}

func NewHandler(
	singleUC *usecases.SingleReportUseCase,
	batchUC *usecases.BatchReportUseCase,
) *Handler {
	return &Handler{
		singleUC: singleUC,
		batchUC:  batchUC,
		logger:   logger.NewLogger(),
	}
}

// Generate handles POST /reports (admin): renders the requested report and
// streams it back as a PDF download.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for report generation", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var result *usecases.ReportResult
	var err error

	switch req.Action {
	case actionGenerateSingle:
		if req.TicketID == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "ticket_id is required")
			return
		}
		result, err = h.singleUC.Execute(c.Request.Context(), usecases.SingleReportCommand{TicketID: req.TicketID})

	case actionGenerateAll:
		result, err = h.batchUC.Execute(c.Request.Context())

	default:
		utils.ErrorResponse(c, http.StatusBadRequest, "unknown action")
		return
	}

	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
