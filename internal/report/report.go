// Package report renders a user's goals and completion history as a PDF.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/kwheeler/goalpost/internal/engine"
	"github.com/kwheeler/goalpost/internal/models"
)

// WritePDF renders state into a one-or-more page A4 report at path.
func WritePDF(path string, state models.UserState, generatedAt time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Goal Report: %s", generatedAt.Format("January 2, 2006")))
	pdf.Ln(12)

	writeActiveGoals(pdf, state.Goals, engine.DayKey(generatedAt))
	writeStreaks(pdf, state.Goals)
	writeArchive(pdf, state.ArchivedGoals)

	return pdf.OutputFileAndClose(path)
}

func writeActiveGoals(pdf *fpdf.Fpdf, goals []models.Goal, today string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Today")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	if len(goals) == 0 {
		pdf.Cell(0, 8, "  - No active goals.")
		pdf.Ln(8)
		return
	}

	completedToday := 0
	for _, g := range goals {
		status := "[ ]"
		if g.CompletedDays[today] {
			status = "[x]"
			completedToday++
		}
		line := fmt.Sprintf("  %s %s (%.0f%%)", status, g.Title, g.Progress)
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Completed today: %d of %d", completedToday, len(goals)))
	pdf.Ln(10)
}

func writeStreaks(pdf *fpdf.Fpdf, goals []models.Goal) {
	if len(goals) == 0 {
		return
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "History")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	for _, g := range goals {
		days := sortedDays(g.CompletedDays)
		line := fmt.Sprintf("  %s: %d days completed", g.Title, len(days))
		if len(days) > 0 {
			line += fmt.Sprintf(" (first %s, last %s)", days[0], days[len(days)-1])
		}
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func writeArchive(pdf *fpdf.Fpdf, archive models.ArchivedGoals) {
	if len(archive) == 0 {
		return
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Archived")
	pdf.Ln(8)

	titles := make([]string, 0, len(archive))
	for title := range archive {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	pdf.SetFont("Arial", "", 12)
	for _, title := range titles {
		pdf.Cell(0, 8, fmt.Sprintf("  %s: %d days completed", title, len(archive[title])))
		pdf.Ln(6)
	}
}

// sortedDays returns the ledger's day keys in ascending order. Day keys
// sort lexicographically as dates.
func sortedDays(days models.CompletedDays) []string {
	out := make([]string, 0, len(days))
	for day, done := range days {
		if done {
			out = append(out, day)
		}
	}
	sort.Strings(out)
	return out
}
