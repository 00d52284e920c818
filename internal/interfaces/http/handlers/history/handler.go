// Package history exposes the audit log and trash view endpoints.
package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	historyusecases "incidentdesk/internal/application/history/usecases"
	ticketusecases "incidentdesk/internal/application/ticket/usecases"
	"incidentdesk/internal/shared/constants"
	"incidentdesk/internal/shared/logger"
	"incidentdesk/internal/shared/utils"
)

// Dispatch actions accepted by POST /historique, kept for compatibility
// with the original action-based endpoint.
const (
	actionGetDeletedTickets = "get_deleted_tickets"
	actionRestoreTicket     = "restore_ticket"
)

type DispatchRequest struct {
	Action   string `json:"action" validate:"required"`
	TicketID uint   `json:"ticket_id"`
}

type Handler struct {
	listUC        *historyusecases.ListHistoriqueUseCase
	listDeletedUC *historyusecases.ListDeletedTicketsUseCase
	restoreUC     *ticketusecases.RestoreTicketUseCase
	logger        logger.Interface
}

func NewHandler(
	listUC *historyusecases.ListHistoriqueUseCase,
	listDeletedUC *historyusecases.ListDeletedTicketsUseCase,
	restoreUC *ticketusecases.RestoreTicketUseCase,
) *Handler {
	return &Handler{
		listUC:        listUC,
		listDeletedUC: listDeletedUC,
		restoreUC:     restoreUC,
		logger:        logger.NewLogger(),
	}
}

// List handles GET /historique (admin).
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "1000"))

	result, err := h.listUC.Execute(c.Request.Context(), historyusecases.ListHistoriqueCommand{Limit: limit})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CountedResponse(c, result.Entries, result.Count)
}

// Dispatch handles POST /historique (admin): the legacy action envelope
// routing to either the trash view or a restore.
func (h *Handler) Dispatch(c *gin.Context) {
	var req DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for historique dispatch", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	switch req.Action {
	case actionGetDeletedTickets:
		result, err := h.listDeletedUC.Execute(c.Request.Context())
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.CountedResponse(c, result.Tickets, result.Count)

	case actionRestoreTicket:
		if req.TicketID == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "ticket_id is required")
			return
		}
		cmd := ticketusecases.RestoreTicketCommand{
			TicketID: req.TicketID,
			ActorID:  currentUserID(c),
		}
		result, err := h.restoreUC.Execute(c.Request.Context(), cmd)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Ticket restauré", result)

	default:
		utils.ErrorResponse(c, http.StatusBadRequest, "unknown action")
	}
}

func currentUserID(c *gin.Context) uint {
	value, _ := c.Get(constants.ContextKeyUserID)
	if id, ok := value.(uint); ok {
		return id
	}
	return 0
}
