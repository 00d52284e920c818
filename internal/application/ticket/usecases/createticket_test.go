package usecases

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incidentdesk/internal/domain/ticket"
	"incidentdesk/internal/shared/errors"
)

const testMaxFileSize = 5 * 1024 * 1024

// pngUpload builds an upload whose bytes are a real encoded PNG, so it
// passes both the sniffing and the decode check.
func pngUpload(t *testing.T, name string) AttachmentUpload {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(&buf, img))

	return AttachmentUpload{
		OriginalName: name,
		Size:         int64(buf.Len()),
		Content:      buf.Bytes(),
	}
}

func newCreateTicketDeps() (*mockTicketRepo, *mockFileStore) {
	nextTicketID := uint(0)
	nextAttachmentID := uint(0)
	repo := &mockTicketRepo{
		saveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			nextTicketID++
			return tk.SetID(nextTicketID)
		},
		saveAttachmentFunc: func(ctx context.Context, a *ticket.Attachment) error {
			nextAttachmentID++
			return a.SetID(nextAttachmentID)
		},
	}
	return repo, &mockFileStore{}
}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	repo, store := newCreateTicketDeps()
	uc := NewCreateTicketUseCase(repo, mockTxManager{}, store, testMaxFileSize, nopLogger{})

	cmd := CreateTicketCommand{
		Title:       "Printer down",
		Description: "Nothing comes out of the tray",
		Priority:    "high",
		ProblemType: "hardware",
		UserID:      7,
		Attachments: []AttachmentUpload{pngUpload(t, "screen.png")},
	}

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, uint(1), result.TicketID)
	assert.Equal(t, "open", result.Status)
	assert.Equal(t, 1, result.AttachmentCount)
	assert.Empty(t, store.removed)
}

func TestCreateTicketUseCase_Execute_NoAttachments(t *testing.T) {
	repo, store := newCreateTicketDeps()
	uc := NewCreateTicketUseCase(repo, mockTxManager{}, store, testMaxFileSize, nopLogger{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Login broken",
		Description: "Password reset mail never arrives",
		UserID:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.AttachmentCount)
}

func TestCreateTicketUseCase_Execute_SanitizesInput(t *testing.T) {
	var saved *ticket.Ticket
	repo, store := newCreateTicketDeps()
	inner := repo.saveFunc
	repo.saveFunc = func(ctx context.Context, tk *ticket.Ticket) error {
		saved = tk
		return inner(ctx, tk)
	}
	uc := NewCreateTicketUseCase(repo, mockTxManager{}, store, testMaxFileSize, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Alert <script>alert(1)</script>",
		Description: "Plain description",
		UserID:      2,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotContains(t, saved.Title(), "<script>")
}

func TestCreateTicketUseCase_Execute_AttachmentRejections(t *testing.T) {
	valid := pngUpload(t, "screen.png")

	oversize := valid
	oversize.Size = testMaxFileSize + 1

	wrongExt := valid
	wrongExt.OriginalName = "screen.txt"

	fakeImage := AttachmentUpload{
		OriginalName: "notes.png",
		Size:         11,
		Content:      []byte("hello world"),
	}

	empty := AttachmentUpload{OriginalName: "empty.png"}

	tests := []struct {
		name   string
		upload AttachmentUpload
	}{
		{"oversize file", oversize},
		{"disallowed extension", wrongExt},
		{"text bytes behind png extension", fakeImage},
		{"empty file", empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, store := newCreateTicketDeps()
			saveCalled := false
			inner := repo.saveFunc
			repo.saveFunc = func(ctx context.Context, tk *ticket.Ticket) error {
				saveCalled = true
				return inner(ctx, tk)
			}
			uc := NewCreateTicketUseCase(repo, mockTxManager{}, store, testMaxFileSize, nopLogger{})

			result, err := uc.Execute(context.Background(), CreateTicketCommand{
				Title:       "Title",
				Description: "Description",
				UserID:      1,
				Attachments: []AttachmentUpload{tt.upload},
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.False(t, saveCalled, "nothing may be written when validation fails")
		})
	}
}

func TestCreateTicketUseCase_Execute_RollbackRemovesStoredFiles(t *testing.T) {
	repo, store := newCreateTicketDeps()
	repo.saveAttachmentFunc = func(ctx context.Context, a *ticket.Attachment) error {
		return fmt.Errorf("insert failed")
	}
	uc := NewCreateTicketUseCase(repo, mockTxManager{}, store, testMaxFileSize, nopLogger{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Title",
		Description: "Description",
		UserID:      1,
		Attachments: []AttachmentUpload{pngUpload(t, "screen.png")},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, []string{"stored_screen.png"}, store.removed,
		"files written before the rollback must be cleaned up")
}

func TestCreateTicketUseCase_Execute_InvalidEntity(t *testing.T) {
	repo, store := newCreateTicketDeps()
	uc := NewCreateTicketUseCase(repo, mockTxManager{}, store, testMaxFileSize, nopLogger{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "",
		Description: "Description",
		UserID:      1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
