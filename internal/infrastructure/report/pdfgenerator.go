// Package report renders PDF exports of unresolved tickets.
package report

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"incidentdesk/internal/domain/ticket"
	vo "incidentdesk/internal/domain/ticket/valueobjects"
	"incidentdesk/internal/shared/config"
)

// PDFGenerator produces the single-ticket and batch reports. Layout uses
// helvetica on A4 portrait with the core-font cp1252 translator for the
// French labels.
type PDFGenerator struct {
	organization string
	footerNote   string
}

func NewPDFGenerator(cfg *config.ReportConfig) *PDFGenerator {
	return &PDFGenerator{
		organization: cfg.Organization,
		footerNote:   cfg.FooterNote,
	}
}

func (g *PDFGenerator) newDocument() (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Transfert Rapport - Ticket Non Résolu"), false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetFont("Helvetica", "", 10)
	return pdf, tr
}

// GenerateSingle renders the detailed report for one unresolved ticket.
func (g *PDFGenerator) GenerateSingle(row *ticket.ReportRow, attachments []*ticket.Attachment) ([]byte, error) {
	if row == nil || row.Ticket == nil {
		return nil, fmt.Errorf("report row is required")
	}

	pdf, tr := g.newDocument()
	pdf.AddPage()
	t := row.Ticket

	g.title(pdf, tr, "RAPPORT DE TICKET NON RÉSOLU")

	g.sectionHeader(pdf, tr, "INFORMATIONS DU TICKET")

	g.detailRow(pdf, tr, "ID Ticket:", fmt.Sprintf("#%d", t.ID()), nil)
	g.detailRow(pdf, tr, "Titre:", t.Title(), nil)

	label, rgb := priorityStyle(t.Priority())
	g.detailRow(pdf, tr, "Priorité:", label, rgb)
	g.detailRow(pdf, tr, "Statut:", "Non Résolu", &[3]int{239, 68, 68})
	g.detailRow(pdf, tr, "Créé par:", row.UserEmail, nil)
	g.detailRow(pdf, tr, "Date création:", t.CreatedAt().Format("02/01/2006 15:04"), nil)
	g.detailRow(pdf, tr, "Date mise à jour:", t.UpdatedAt().Format("02/01/2006 15:04"), nil)

	pdf.Ln(10)

	g.sectionHeader(pdf, tr, "DESCRIPTION DU PROBLÈME")
	pdf.MultiCell(0, 8, tr(t.Description()), "1", "L", false)

	pdf.Ln(10)

	if len(attachments) > 0 {
		g.sectionHeader(pdf, tr, "CAPTURES D'ÉCRAN JOINTES")
		for _, a := range attachments {
			pdf.CellFormat(0, 8, tr("• "+filepath.Base(a.FilePath())), "1", 1, "L", false, 0, "")
		}
		pdf.Ln(10)
	}

	g.footer(pdf, tr)

	return g.output(pdf)
}

// GenerateBatch renders the summary report over all unresolved tickets.
func (g *PDFGenerator) GenerateBatch(rows []*ticket.ReportRow) ([]byte, error) {
	pdf, tr := g.newDocument()
	pdf.AddPage()

	g.title(pdf, tr, "RAPPORT DES TICKETS NON RÉSOLUS")

	g.sectionHeader(pdf, tr, "RÉSUMÉ EXÉCUTIF")

	stats := map[vo.Priority]int{}
	for _, row := range rows {
		stats[row.Ticket.Priority()]++
	}

	summary := []string{
		fmt.Sprintf("Nombre total de tickets non résolus: %d", len(rows)),
		fmt.Sprintf("Tickets de priorité élevée: %d", stats[vo.PriorityHigh]),
		fmt.Sprintf("Tickets de priorité moyenne: %d", stats[vo.PriorityMedium]),
		fmt.Sprintf("Tickets de priorité faible: %d", stats[vo.PriorityLow]),
	}
	for _, line := range summary {
		pdf.CellFormat(0, 8, tr(line), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(10)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(20, 10, "ID", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 10, tr("Titre"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 10, tr("Priorité"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 10, tr("Utilisateur"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 10, "Date", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	fill := false
	for _, row := range rows {
		t := row.Ticket

		pdf.CellFormat(20, 8, fmt.Sprintf("#%d", t.ID()), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(60, 8, tr(truncateTitle(t.Title())), "1", 0, "L", fill, 0, "")

		label, rgb := priorityStyle(t.Priority())
		if rgb != nil {
			pdf.SetTextColor(rgb[0], rgb[1], rgb[2])
		}
		pdf.CellFormat(30, 8, tr(label), "1", 0, "C", fill, 0, "")
		pdf.SetTextColor(0, 0, 0)

		pdf.CellFormat(50, 8, tr(row.UserEmail), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(30, 8, t.CreatedAt().Format("02/01/2006"), "1", 1, "C", fill, 0, "")

		fill = !fill
	}

	pdf.Ln(15)

	g.footer(pdf, tr)

	return g.output(pdf)
}

// Filename builds the download name stamped with the generation time.
func (g *PDFGenerator) Filename(now time.Time) string {
	return "transfert_rapport_" + now.Format("2006-01-02_15-04-05") + ".pdf"
}

func (g *PDFGenerator) title(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 15, tr(text), "", 1, "C", false, 0, "")
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(10)
}

func (g *PDFGenerator) sectionHeader(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(text), "1", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func (g *PDFGenerator) detailRow(pdf *fpdf.Fpdf, tr func(string) string, label, value string, rgb *[3]int) {
	pdf.CellFormat(50, 8, tr(label), "1", 0, "L", false, 0, "")
	if rgb != nil {
		pdf.SetTextColor(rgb[0], rgb[1], rgb[2])
	}
	pdf.CellFormat(0, 8, tr(value), "1", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (g *PDFGenerator) footer(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(10, pdf.GetY(), 190, 20, "F")

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, tr("Rapport généré automatiquement le "+time.Now().Format("02/01/2006 à 15:04")), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(g.organization+" - Système de Gestion des Incidents"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(g.footerNote), "", 1, "C", false, 0, "")
}

func (g *PDFGenerator) output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// priorityStyle resolves the display label and color for a priority. Rows
// created with an out-of-set priority keep the raw value in black.
func priorityStyle(p vo.Priority) (string, *[3]int) {
	label, err := p.Label()
	if err != nil {
		return p.String(), nil
	}
	r, gr, b, err := p.RGB()
	if err != nil {
		return label, nil
	}
	return label, &[3]int{r, gr, b}
}

func truncateTitle(title string) string {
	if len(title) > 25 {
		return title[:25] + "..."
	}
	return title
}
