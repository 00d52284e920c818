// Package screenshot exposes the ad-hoc capture upload endpoint.
package screenshot

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"incidentdesk/internal/application/screenshot/usecases"
	"incidentdesk/internal/shared/constants"
	"incidentdesk/internal/shared/logger"
	"incidentdesk/internal/shared/utils"
)

type Handler struct {
	saveUC *usecases.SaveScreenshotUseCase
	logger logger.Interface
}

func NewHandler(saveUC *usecases.SaveScreenshotUseCase) *Handler {
	return &Handler{
		saveUC: saveUC,
		logger: logger.NewLogger(),
	}
}

// Save handles POST /screenshots (multipart: screenshot, description).
func (h *Handler) Save(c *gin.Context) {
	fileHeader, err := c.FormFile("screenshot")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "screenshot file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	content, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	cmd := usecases.SaveScreenshotCommand{
		UserID:       currentUserID(c),
		OriginalName: fileHeader.Filename,
		Content:      content,
		Description:  c.PostForm("description"),
	}

	result, execErr := h.saveUC.Execute(c.Request.Context(), cmd)
	if execErr != nil {
		utils.ErrorResponseWithError(c, execErr)
		return
	}

	utils.CreatedResponse(c, result, "Capture enregistrée")
}

func currentUserID(c *gin.Context) uint {
	value, _ := c.Get(constants.ContextKeyUserID)
	if id, ok := value.(uint); ok {
		return id
	}
	return 0
}
