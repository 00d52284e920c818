package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incidentdesk/internal/domain/ticket"
	vo "incidentdesk/internal/domain/ticket/valueobjects"
	"incidentdesk/internal/shared/config"
)

func newTestGenerator() *PDFGenerator {
	return NewPDFGenerator(&config.ReportConfig{
		Organization: "Support Technique",
		FooterNote:   "Document confidentiel - Usage interne uniquement",
	})
}

func unresolvedRow(t *testing.T, id uint, title, priority, email string) *ticket.ReportRow {
	t.Helper()

	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, 1, title, "Une description détaillée du problème",
		vo.Priority(priority), vo.ProblemSoftware, vo.StatusNoResolu, now, now, nil)
	require.NoError(t, err)

	return &ticket.ReportRow{Ticket: tk, UserEmail: email}
}

func TestPDFGenerator_GenerateSingle(t *testing.T) {
	g := newTestGenerator()

	t.Run("renders a pdf document", func(t *testing.T) {
		row := unresolvedRow(t, 7, "Écran cassé", "high", "user@example.com")

		attachment, err := ticket.ReconstructAttachment(1, 7, "7_abc.png", "capture.png", 2048, "image/png", time.Now())
		require.NoError(t, err)

		content, err := g.GenerateSingle(row, []*ticket.Attachment{attachment})
		require.NoError(t, err)
		require.NotEmpty(t, content)
		assert.Equal(t, "%PDF", string(content[:4]))
	})

	t.Run("renders without attachments", func(t *testing.T) {
		content, err := g.GenerateSingle(unresolvedRow(t, 8, "Sans captures", "low", "a@b.com"), nil)
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	})

	t.Run("tolerates an out-of-set priority", func(t *testing.T) {
		content, err := g.GenerateSingle(unresolvedRow(t, 9, "Priorité inconnue", "urgent", "a@b.com"), nil)
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	})

	t.Run("nil row is rejected", func(t *testing.T) {
		_, err := g.GenerateSingle(nil, nil)
		assert.Error(t, err)
	})
}

func TestPDFGenerator_GenerateBatch(t *testing.T) {
	g := newTestGenerator()

	t.Run("renders the summary table", func(t *testing.T) {
		rows := []*ticket.ReportRow{
			unresolvedRow(t, 1, "Un titre volontairement beaucoup trop long pour la colonne", "high", "one@example.com"),
			unresolvedRow(t, 2, "Court", "medium", "two@example.com"),
			unresolvedRow(t, 3, "Moyen", "low", "three@example.com"),
		}

		content, err := g.GenerateBatch(rows)
		require.NoError(t, err)
		require.NotEmpty(t, content)
		assert.Equal(t, "%PDF", string(content[:4]))
	})

	t.Run("renders with no rows", func(t *testing.T) {
		content, err := g.GenerateBatch(nil)
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	})
}

func TestPDFGenerator_Filename(t *testing.T) {
	g := newTestGenerator()

	stamp := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "transfert_rapport_2026-03-14_09-26-53.pdf", g.Filename(stamp))
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short", truncateTitle("short"))
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaaa...", truncateTitle("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	assert.Len(t, truncateTitle("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), 28)
}
