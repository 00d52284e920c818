package ticket

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"incidentdesk/internal/application/ticket/usecases"
	"incidentdesk/internal/shared/errors"
)

// screenshotsFormField is the multipart field carrying ticket attachments.
const screenshotsFormField = "screenshots"

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ListTicketsRequest struct {
	Status    string
	Priority  string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func parseListTicketsRequest(c *gin.Context) ListTicketsRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	return ListTicketsRequest{
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid ticket ID")
	}
	return uint(id), nil
}

// readUploads loads the multipart screenshot files into memory for
// validation. Files beyond the configured size cap are rejected later by
// the use case; reading is bounded by gin's multipart memory settings.
func readUploads(files []*multipart.FileHeader) ([]usecases.AttachmentUpload, error) {
	uploads := make([]usecases.AttachmentUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, errors.NewBadRequestError("failed to read uploaded file", err.Error())
		}

		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, errors.NewBadRequestError("failed to read uploaded file", err.Error())
		}

		uploads = append(uploads, usecases.AttachmentUpload{
			OriginalName: fh.Filename,
			Size:         fh.Size,
			Content:      content,
		})
	}
	return uploads, nil
}
