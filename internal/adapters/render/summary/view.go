package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/splitcalc/internal/adapters/render/amount"
	"github.com/bnema/splitcalc/internal/application"
	"github.com/bnema/splitcalc/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const unnamedItem = "Unnamed Item"

type RenderOptions struct {
	// BarWidth is the width of the per-participant share bar; 0 hides it.
	BarWidth int
}

func renderView(summary application.Summary, opts RenderOptions, s styles) string {
	country := summary.Country
	allocation := summary.Allocation

	lines := []string{
		s.title.Render("Split Calculator"),
		s.header.Render(countryLine(country, allocation.TaxApplied)),
		s.header.Render(fmt.Sprintf("items: %d  participants: %d", len(summary.Session.Items), len(summary.Session.Participants))),
		s.section.Render(renderItems(summary, s)),
		s.section.Render(renderParticipants(summary, opts, s)),
		s.section.Render(renderTotals(summary, s)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func countryLine(country domain.Country, taxApplied bool) string {
	name := country.Name
	if name == "" {
		name = "No country"
	}

	state := "not applied"
	if taxApplied {
		state = "applied"
	}

	return strings.TrimSpace(fmt.Sprintf("%s %s  %s %s (%s)", country.Flag, name, country.TaxLabel, amount.Percent(country.TaxRate), state))
}

func renderItems(summary application.Summary, s styles) string {
	lines := []string{s.sectionName.Render("Items")}
	if len(summary.Session.Items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No items."))...)
	}

	names := participantNames(summary.Session.Participants)
	symbol := summary.Country.Currency

	for i, item := range summary.Session.Items {
		item = item.Normalize()
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = unnamedItem
		}

		line := fmt.Sprintf("%2d. %s  %s x %d = %s",
			i+1,
			s.name.Render(name),
			amount.Format(symbol, item.UnitCost),
			item.Quantity,
			amount.Format(symbol, item.Total()),
		)
		lines = append(lines, line, s.detail.Render("    split: "+splitLabel(item, names)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func splitLabel(item domain.Item, names map[domain.ParticipantID]string) string {
	refs := item.SharedBy()
	if len(refs) == 0 {
		return "unassigned"
	}

	labels := make([]string, 0, len(refs))
	for _, ref := range refs {
		if name, ok := names[ref]; ok {
			labels = append(labels, name)
			continue
		}
		if name, ok := ref.Detached(); ok {
			labels = append(labels, fmt.Sprintf("%s (removed)", displayDetached(name)))
			continue
		}
		labels = append(labels, "unknown")
	}

	return strings.Join(labels, ", ")
}

func displayDetached(name string) string {
	if strings.TrimSpace(name) == "" {
		return "unnamed"
	}
	return name
}

func participantNames(participants []domain.Participant) map[domain.ParticipantID]string {
	names := make(map[domain.ParticipantID]string, len(participants))
	for i, participant := range participants {
		if _, ok := names[participant.ID]; !ok {
			names[participant.ID] = participant.DisplayName(i)
		}
	}

	return names
}

func renderParticipants(summary application.Summary, opts RenderOptions, s styles) string {
	lines := []string{s.sectionName.Render("Participants")}
	if len(summary.Allocation.Participants) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No participants."))...)
	}

	symbol := summary.Country.Currency
	total := summary.Allocation.Total

	for i, participant := range summary.Allocation.Participants {
		parts := []string{
			fmt.Sprintf("%2d. %s owes %s", i+1, s.name.Render(participant.DisplayName(i)), amount.Format(symbol, participant.Owed)),
		}
		if opts.BarWidth > 0 {
			parts = append(parts, " ", renderShareBar(participant.Owed, total, opts.BarWidth, s))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTotals(summary application.Summary, s styles) string {
	symbol := summary.Country.Currency
	allocation := summary.Allocation

	lines := []string{
		fmt.Sprintf("Subtotal: %s", amount.Format(symbol, allocation.Subtotal)),
	}
	if allocation.TaxApplied {
		lines = append(lines, fmt.Sprintf("%s (%s): %s", summary.Country.TaxLabel, amount.Percent(allocation.TaxRate), amount.Format(symbol, allocation.TaxAmount)))
	}
	lines = append(lines, s.total.Render(fmt.Sprintf("Total: %s", amount.Format(symbol, allocation.Total))))

	if !domain.RoundCents(allocation.Unattributed).IsZero() {
		lines = append(lines, s.warning.Render(fmt.Sprintf("Not assigned to anyone: %s", amount.Format(symbol, allocation.Unattributed))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderShareBar draws the participant's fraction of the total.
func renderShareBar(owed, total decimal.Decimal, width int, s styles) string {
	fraction := 0.0
	if total.IsPositive() {
		fraction, _ = owed.Div(total).Float64()
	}
	fraction = math.Max(0, math.Min(1, fraction))

	filled := int(math.Round(float64(width) * fraction))
	filled = max(0, min(width, filled))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
		" ",
		lipgloss.NewStyle().Foreground(shareColor(fraction)).Render(fmt.Sprintf("%3.0f%%", fraction*100)),
	)
}

// shareColor fades from grey 240 for no share to white 255 for all of it.
func shareColor(fraction float64) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("%d", 240+int(15*fraction)))
}
