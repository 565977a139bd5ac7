package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thesavant42/iconkit/internal/models"
)

// Printer writes styled status lines. The zero value writes to stdout.
type Printer struct {
	Out io.Writer
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{Out: w}
}

func (p *Printer) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.out(), s)
}

// PrintSuccess prints a success message
func (p *Printer) PrintSuccess(message string) {
	p.println(SuccessStyle.Render(message))
}

// PrintError prints an error message
func (p *Printer) PrintError(message string) {
	p.println(ErrorStyle.Render("Error: " + message))
}

// PrintInfo prints a plain informational line
func (p *Printer) PrintInfo(message string) {
	p.println(InfoStyle.Render(message))
}

// PrintExtracted reports one written icon
func (p *Printer) PrintExtracted(r models.ExtractResult) {
	p.println(SuccessStyle.Render("Extracted: ") + r.Name)
}

// Processing implements inject.Reporter
func (p *Printer) Processing(path string) {
	p.println(DimStyle.Render("Processing: ") + path)
}

// Result implements inject.Reporter
func (p *Printer) Result(r models.FileResult) {
	switch r.Status {
	case models.StatusUpdated:
		p.println(SuccessStyle.Render("Updated: ") + r.Path)
	case models.StatusUnchanged:
		p.println(DimStyle.Render("No changes: ") + r.Path)
	case models.StatusSkipped:
		p.println(DimStyle.Render("Skipped: ") + r.Path)
	case models.StatusErrored:
		p.println(ErrorStyle.Render("Error processing ") + fmt.Sprintf("%s: %v", r.Path, r.Err))
	}
}

// PrintSummary prints the per-run file counts in a bordered box
func (p *Printer) PrintSummary(s models.Summary) {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Icon injection summary"))
	b.WriteString("\n")
	rows := []struct {
		label string
		n     int
	}{
		{"Discovered", s.Discovered},
		{"Updated", s.Updated},
		{"Unchanged", s.Unchanged},
		{"Skipped", s.Skipped},
		{"Errored", s.Errored},
	}
	for i, r := range rows {
		fmt.Fprintf(&b, "%-11s %s", r.label+":", StatStyle.Render(fmt.Sprintf("%d", r.n)))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	p.println("")
	p.println(SummaryBoxStyle.Render(b.String()))
}
