// Package report renders interview session reports as PDF documents.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
)

// Data aggregates everything the renderer needs for one report
type Data struct {
	Session     *domain.Session
	Interviewer *domain.Interviewer
	Student     *domain.Student
	Questions   []domain.Question
	Transcript  []domain.TranscriptEntry
}

// Render produces the PDF document in memory. Rendering touches no storage;
// callers persist the bytes only after a successful render.
func Render(data Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Interview Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Session metadata
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Session Details", "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	writeMetaRow(pdf, tr, "Title", data.Session.Title)
	writeMetaRow(pdf, tr, "Student", fmt.Sprintf("%s (%s)", data.Student.Name, data.Student.Email))
	writeMetaRow(pdf, tr, "Interviewer", data.Interviewer.Name)
	writeMetaRow(pdf, tr, "Scheduled", data.Session.ScheduledAt.Format(time.RFC1123))
	writeMetaRow(pdf, tr, "Duration", fmt.Sprintf("%d minutes", data.Session.DurationMinutes))
	writeMetaRow(pdf, tr, "Status", string(data.Session.Status))
	if data.Session.StartedAt != nil {
		writeMetaRow(pdf, tr, "Started", data.Session.StartedAt.Format(time.RFC1123))
	}
	if data.Session.EndedAt != nil {
		writeMetaRow(pdf, tr, "Ended", data.Session.EndedAt.Format(time.RFC1123))
	}
	pdf.Ln(4)

	// Question script
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Questions", "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(data.Questions) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, "No questions were defined for this session.", "", 1, "L", false, 0, "")
	}
	for i, q := range data.Questions {
		pdf.SetFont("Helvetica", "B", 10)
		label := fmt.Sprintf("Q%d.", i+1)
		pdf.CellFormat(12, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, tr(q.Text), "", "L", false)
		if q.Category != "" || q.Difficulty != "" {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(110, 110, 110)
			meta := strings.TrimSpace(fmt.Sprintf("%s %s", q.Category, q.Difficulty))
			pdf.CellFormat(12, 4, "", "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 4, tr(meta), "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(1)
	}
	pdf.Ln(4)

	// Transcript
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Transcript", "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(data.Transcript) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, "No transcript was recorded for this session.", "", 1, "L", false, 0, "")
	}
	for _, entry := range data.Transcript {
		speaker := "AI Interviewer"
		if entry.Speaker == domain.SpeakerStudent {
			speaker = data.Student.Name
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s  [%s]", speaker, entry.CreatedAt.Format("15:04:05"))), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5.5, tr(entry.Message), "", "L", false)
		pdf.Ln(2)
	}

	// Footer line with generation timestamp
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated at %s", time.Now().Format(time.RFC1123)), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeMetaRow(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, tr(value), "", "L", false)
}
