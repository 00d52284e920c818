package ticket

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "incidentdesk/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	t.Run("create ticket with valid fields", func(t *testing.T) {
		tk, err := NewTicket("Printer down", "The office printer refuses all jobs", "high", "hardware", 7)
		require.NoError(t, err)

		assert.Equal(t, uint(0), tk.ID())
		assert.Equal(t, uint(7), tk.UserID())
		assert.Equal(t, "Printer down", tk.Title())
		assert.Equal(t, vo.PriorityHigh, tk.Priority())
		assert.Equal(t, vo.ProblemHardware, tk.ProblemType())
		assert.Equal(t, vo.StatusOpen, tk.Status())
		assert.Nil(t, tk.DeletedAt())
		assert.False(t, tk.IsDeleted())
	})

	t.Run("empty priority defaults to medium", func(t *testing.T) {
		tk, err := NewTicket("Title", "Description", "", "software", 1)
		require.NoError(t, err)
		assert.Equal(t, vo.PriorityMedium, tk.Priority())
	})

	t.Run("unknown priority is kept verbatim", func(t *testing.T) {
		tk, err := NewTicket("Title", "Description", "urgent", "software", 1)
		require.NoError(t, err)
		assert.Equal(t, "urgent", tk.Priority().String())
		assert.False(t, tk.Priority().IsValid())
	})

	t.Run("unknown problem type falls back to software", func(t *testing.T) {
		tk, err := NewTicket("Title", "Description", "low", "plumbing", 1)
		require.NoError(t, err)
		assert.Equal(t, vo.ProblemSoftware, tk.ProblemType())
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name        string
			title       string
			description string
			userID      uint
			wantErr     string
		}{
			{"empty title", "", "desc", 1, "title is required"},
			{"title too long", strings.Repeat("a", 201), "desc", 1, "title exceeds maximum length"},
			{"empty description", "Title", "", 1, "description is required"},
			{"description too long", "Title", strings.Repeat("a", 5001), 1, "description exceeds maximum length"},
			{"zero user id", "Title", "desc", 0, "user ID is required"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tk, err := NewTicket(tt.title, tt.description, "low", "software", tt.userID)
				assert.Nil(t, tk)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})
}

func TestTicket_SetID(t *testing.T) {
	tk, err := NewTicket("Title", "Description", "low", "software", 1)
	require.NoError(t, err)

	require.NoError(t, tk.SetID(42))
	assert.Equal(t, uint(42), tk.ID())

	assert.Error(t, tk.SetID(43), "ID must not be reassignable")
	assert.Equal(t, uint(42), tk.ID())
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk, err := NewTicket("Title", "Description", "low", "software", 1)
	require.NoError(t, err)

	t.Run("any valid status is reachable", func(t *testing.T) {
		for _, status := range []vo.TicketStatus{
			vo.StatusInProgress, vo.StatusResolved, vo.StatusClosed, vo.StatusNoResolu, vo.StatusOpen,
		} {
			require.NoError(t, tk.ChangeStatus(status))
			assert.Equal(t, status, tk.Status())
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		err := tk.ChangeStatus(vo.TicketStatus("bogus"))
		assert.Error(t, err)
	})
}

func TestTicket_MarkDeletedAndRestore(t *testing.T) {
	tk, err := NewTicket("Title", "Description", "low", "software", 1)
	require.NoError(t, err)

	require.NoError(t, tk.MarkDeleted())
	assert.True(t, tk.IsDeleted())
	assert.NotNil(t, tk.DeletedAt())

	assert.Error(t, tk.MarkDeleted(), "double delete must fail")

	require.NoError(t, tk.Restore())
	assert.False(t, tk.IsDeleted())
	assert.Nil(t, tk.DeletedAt())

	assert.Error(t, tk.Restore(), "restoring a live ticket must fail")
}

func TestTicket_Snapshot(t *testing.T) {
	tk, err := NewTicket("Broken screen", "Cracked on the left side", "high", "hardware", 3)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(12))

	raw, err := json.Marshal(tk.Snapshot())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(12), decoded["id"])
	assert.Equal(t, "Broken screen", decoded["title"])
	assert.Equal(t, "high", decoded["priority"])
	assert.Equal(t, "open", decoded["status"])
	assert.Nil(t, decoded["deleted_at"])
}

func TestReconstructTicket(t *testing.T) {
	now := time.Now()

	t.Run("rebuild from persisted state", func(t *testing.T) {
		deletedAt := now.Add(-time.Hour)
		tk, err := ReconstructTicket(5, 2, "Title", "Description",
			vo.PriorityLow, vo.ProblemSoftware, vo.StatusClosed, now, now, &deletedAt)
		require.NoError(t, err)
		assert.Equal(t, uint(5), tk.ID())
		assert.True(t, tk.IsDeleted())
	})

	t.Run("zero id rejected", func(t *testing.T) {
		_, err := ReconstructTicket(0, 2, "Title", "Description",
			vo.PriorityLow, vo.ProblemSoftware, vo.StatusOpen, now, now, nil)
		assert.Error(t, err)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := ReconstructTicket(5, 2, "Title", "Description",
			vo.PriorityLow, vo.ProblemSoftware, vo.TicketStatus("bogus"), now, now, nil)
		assert.Error(t, err)
	})
}

func TestTicket_AddAttachment(t *testing.T) {
	tk, err := NewTicket("Title", "Description", "low", "software", 1)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(1))

	a, err := NewAttachment(tk.ID(), "1_abc.png", "screen.png", 1024, "image/png")
	require.NoError(t, err)

	require.NoError(t, tk.AddAttachment(a))
	assert.Len(t, tk.Attachments(), 1)

	assert.Error(t, tk.AddAttachment(nil))
}
