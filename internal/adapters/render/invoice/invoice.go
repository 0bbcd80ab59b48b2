package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/splitcalc/internal/adapters/render/amount"
	"github.com/bnema/splitcalc/internal/application"
	"github.com/charmbracelet/glamour"
)

const (
	dateLayout  = "January 2, 2006"
	unnamedItem = "Unnamed Item"
	taxNote     = "\\* Tax has been applied and distributed proportionally among all participants"
	footer      = "Generated by Split Calculator"
)

// Markdown builds the invoice document for summary dated at date.
func Markdown(summary application.Summary, date time.Time) string {
	symbol := summary.Country.Currency
	allocation := summary.Allocation
	formattedDate := date.Format(dateLayout)

	var b strings.Builder

	b.WriteString("# SPLIT INVOICE\n\n")
	b.WriteString("Expense Split Summary\n\n")

	b.WriteString("| Invoice Date | Currency | Participants |\n")
	b.WriteString("|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %s | %d people |\n\n", formattedDate, cell(symbol), summary.Session.NamedParticipantCount())

	b.WriteString("## Items\n\n")
	b.WriteString("| # | Description | Qty | Price | Amount |\n")
	b.WriteString("|---:|---|---:|---:|---:|\n")
	for i, item := range summary.Session.Items {
		item = item.Normalize()
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = unnamedItem
		}
		fmt.Fprintf(&b, "| %d | %s | %d | %s | %s |\n",
			i+1,
			cell(name),
			item.Quantity,
			cell(amount.Format(symbol, item.UnitCost)),
			cell(amount.Format(symbol, item.Total())),
		)
	}
	b.WriteString("\n")

	b.WriteString("## Totals\n\n")
	b.WriteString("| | |\n")
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(&b, "| Subtotal | %s |\n", cell(amount.Format(symbol, allocation.Subtotal)))
	if allocation.TaxApplied {
		fmt.Fprintf(&b, "| %s (%s) | %s |\n", cell(summary.Country.TaxLabel), amount.Percent(allocation.TaxRate), cell(amount.Format(symbol, allocation.TaxAmount)))
	}
	fmt.Fprintf(&b, "| **TOTAL** | **%s** |\n\n", cell(amount.Format(symbol, allocation.Total)))

	b.WriteString("## Payment Split\n\n")
	b.WriteString("| Person | Amount Owed |\n")
	b.WriteString("|---|---:|\n")
	for _, participant := range allocation.Participants {
		if participant.Name == "" {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", cell(participant.Name), cell(amount.Format(symbol, participant.Owed)))
	}
	b.WriteString("\n")

	if allocation.TaxApplied {
		b.WriteString(taxNote + "\n\n")
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "%s · %s\n", footer, formattedDate)

	return b.String()
}

// Render lays the Markdown out for a terminal. style is a glamour standard
// style name such as "dark", "light" or "notty"; empty picks one from the
// terminal background.
func Render(markdown, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create invoice renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render invoice: %w", err)
	}

	return out, nil
}

func cell(text string) string {
	return strings.ReplaceAll(text, "|", "\\|")
}
