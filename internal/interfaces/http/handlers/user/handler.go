// Package user exposes authentication and account management endpoints.
package user

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"incidentdesk/internal/application/user/usecases"
	"incidentdesk/internal/shared/config"
	"incidentdesk/internal/shared/constants"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
	"incidentdesk/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type Handler struct {
	loginUC      *usecases.LoginUseCase
	logoutUC     *usecases.LogoutUseCase
	createUC     *usecases.CreateUserUseCase
	listUC       *usecases.ListUsersUseCase
	deleteUC     *usecases.DeleteUserUseCase
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewHandler(
	loginUC *usecases.LoginUseCase,
	logoutUC *usecases.LogoutUseCase,
	createUC *usecases.CreateUserUseCase,
	listUC *usecases.ListUsersUseCase,
	deleteUC *usecases.DeleteUserUseCase,
	cookieConfig config.CookieConfig,
) *Handler {
	return &Handler{
		loginUC:      loginUC,
		logoutUC:     logoutUC,
		createUC:     createUC,
		listUC:       listUC,
		deleteUC:     deleteUC,
		cookieConfig: cookieConfig,
		logger:       logger.NewLogger(),
	}
}

// Login handles POST /auth/login. On success the access token lands in an
// HttpOnly cookie and a fresh CSRF cookie is issued; the token itself is
// never in the response body.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetAccessTokenCookie(c, h.cookieConfig, result.AccessToken, maxAge)
	if _, err := utils.SetCSRFCookie(c, h.cookieConfig, maxAge); err != nil {
		h.logger.Errorw("failed to issue csrf cookie", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to issue csrf token"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Connexion réussie", gin.H{
		"user_id": result.UserID,
		"email":   result.Email,
		"role":    result.Role,
	})
}

// Logout handles POST /auth/logout.
func (h *Handler) Logout(c *gin.Context) {
	sessionID := ""
	if value, exists := c.Get(constants.ContextKeySessionID); exists {
		sessionID, _ = value.(string)
	}

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: sessionID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Déconnexion réussie", nil)
}

// List handles GET /users (admin).
func (h *Handler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CountedResponse(c, result.Users, result.Count)
}

// Create handles POST /users (admin). The role is always user.
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Utilisateur créé avec succès")
}

// Delete handles DELETE /users/:id (admin).
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{UserID: uint(id)}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Utilisateur supprimé", nil)
}
