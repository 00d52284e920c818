package usecases

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	// Raster decoders for the content check in validateAttachment.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"

	"incidentdesk/internal/shared/errors"
)

// AttachmentUpload is one uploaded screenshot as received by the handler.
type AttachmentUpload struct {
	OriginalName string
	Size         int64
	Content      []byte
}

var allowedAttachmentMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

var allowedAttachmentExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

// sniffMimeType resolves the stored MIME type from content, never from
// the client-declared header.
func sniffMimeType(content []byte) string {
	return mimetype.Detect(content).String()
}

// validateAttachment rejects uploads that are too large, carry a
// disallowed extension, or whose bytes are not actually an allowed image.
// The declared client MIME type is ignored; only sniffed content counts.
func validateAttachment(upload AttachmentUpload, maxSize int64) error {
	if upload.Size <= 0 || len(upload.Content) == 0 {
		return errors.NewValidationError(
			fmt.Sprintf("file %s is empty", upload.OriginalName))
	}
	if upload.Size > maxSize {
		return errors.NewValidationError(
			fmt.Sprintf("file %s exceeds the maximum size of %d bytes", upload.OriginalName, maxSize))
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(upload.OriginalName), "."))
	if !allowedAttachmentExtensions[ext] {
		return errors.NewValidationError(
			fmt.Sprintf("file %s has an unsupported extension", upload.OriginalName))
	}

	detected := mimetype.Detect(upload.Content)
	if !allowedAttachmentMimeTypes[detected.String()] {
		return errors.NewValidationError(
			fmt.Sprintf("file %s is not an allowed image type", upload.OriginalName))
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(upload.Content)); err != nil {
		return errors.NewValidationError(
			fmt.Sprintf("file %s is not a valid image", upload.OriginalName))
	}

	return nil
}
