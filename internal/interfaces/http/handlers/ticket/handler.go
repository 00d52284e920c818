// Package ticket exposes the ticket lifecycle endpoints.
package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"incidentdesk/internal/application/ticket/usecases"
	"incidentdesk/internal/shared/authorization"
	"incidentdesk/internal/shared/constants"
	"incidentdesk/internal/shared/logger"
	"incidentdesk/internal/shared/utils"
)

type Handler struct {
	createUC *usecases.CreateTicketUseCase
	updateUC *usecases.UpdateStatusUseCase
	deleteUC *usecases.SoftDeleteTicketUseCase
	listUC   *usecases.ListTicketsUseCase
	getUC    *usecases.GetTicketUseCase
	statsUC  *usecases.TicketStatsUseCase
	logger   logger.Interface
}

func NewHandler(
	createUC *usecases.CreateTicketUseCase,
	updateUC *usecases.UpdateStatusUseCase,
	deleteUC *usecases.SoftDeleteTicketUseCase,
	listUC *usecases.ListTicketsUseCase,
	getUC *usecases.GetTicketUseCase,
	statsUC *usecases.TicketStatsUseCase,
) *Handler {
	return &Handler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		getUC:    getUC,
		statsUC:  statsUC,
		logger:   logger.NewLogger(),
	}
}

// Create handles POST /tickets (multipart form).
func (h *Handler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.logger.Warnw("invalid multipart form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	uploads, uploadErr := readUploads(form.File[screenshotsFormField])
	if uploadErr != nil {
		utils.ErrorResponseWithError(c, uploadErr)
		return
	}

	cmd := usecases.CreateTicketCommand{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Priority:    c.PostForm("priority"),
		ProblemType: c.PostForm("problem_type"),
		UserID:      currentUserID(c),
		Attachments: uploads,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket créé avec succès")
}

// List handles GET /tickets.
func (h *Handler) List(c *gin.Context) {
	req := parseListTicketsRequest(c)

	cmd := usecases.ListTicketsCommand{
		Status:    req.Status,
		Priority:  req.Priority,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if !currentIsAdmin(c) {
		cmd.OwnerID = currentUserID(c)
	}

	result, err := h.listUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CountedResponse(c, result.Tickets, int(result.Total))
}

// Get handles GET /tickets/:id.
func (h *Handler) Get(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.GetTicketCommand{
		TicketID:    ticketID,
		RequesterID: currentUserID(c),
		IsAdmin:     currentIsAdmin(c),
	}

	result, execErr := h.getUC.Execute(c.Request.Context(), cmd)
	if execErr != nil {
		utils.ErrorResponseWithError(c, execErr)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles PATCH /tickets/:id/status (admin).
func (h *Handler) UpdateStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
		ActorID:  currentUserID(c),
	}

	result, execErr := h.updateUC.Execute(c.Request.Context(), cmd)
	if execErr != nil {
		utils.ErrorResponseWithError(c, execErr)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Statut mis à jour", result)
}

// Delete handles DELETE /tickets/:id (admin, soft delete).
func (h *Handler) Delete(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SoftDeleteTicketCommand{
		TicketID: ticketID,
		ActorID:  currentUserID(c),
	}

	if _, err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket supprimé", nil)
}

// Stats handles GET /tickets/stats (admin dashboard counters).
func (h *Handler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func currentUserID(c *gin.Context) uint {
	value, _ := c.Get(constants.ContextKeyUserID)
	if id, ok := value.(uint); ok {
		return id
	}
	return 0
}

func currentIsAdmin(c *gin.Context) bool {
	value, _ := c.Get(constants.ContextKeyUserRole)
	role, ok := value.(string)
	return ok && authorization.UserRole(role).IsAdmin()
}
