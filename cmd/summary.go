package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/splitcalc/internal/adapters/render/amount"
	summaryadapter "github.com/bnema/splitcalc/internal/adapters/render/summary"
	"github.com/bnema/splitcalc/internal/application"
	"github.com/spf13/cobra"
)

const defaultShareBarWidth = 20

func newSummaryCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show items, participants and what everyone owes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := app.service.Summary(cmd.Context())
			if err != nil {
				return err
			}

			return writeSummaryOutput(cmd, app, summary, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

type summaryItemJSON struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Cost       string   `json:"cost"`
	Quantity   int64    `json:"quantity"`
	Total      string   `json:"total"`
	SplitAmong []string `json:"splitAmong"`
}

type summaryParticipantJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Owes string `json:"owes"`
}

type summaryJSON struct {
	Country      string                   `json:"country"`
	Currency     string                   `json:"currency"`
	TaxLabel     string                   `json:"taxLabel"`
	TaxRate      string                   `json:"taxRate"`
	TaxApplied   bool                     `json:"taxApplied"`
	Items        []summaryItemJSON        `json:"items"`
	Participants []summaryParticipantJSON `json:"participants"`
	Subtotal     string                   `json:"subtotal"`
	TaxAmount    string                   `json:"taxAmount"`
	Total        string                   `json:"total"`
	Unassigned   string                   `json:"unassigned"`
}

func newSummaryJSON(summary application.Summary) summaryJSON {
	allocation := summary.Allocation
	out := summaryJSON{
		Country:      summary.Country.Code,
		Currency:     summary.Country.Currency,
		TaxLabel:     summary.Country.TaxLabel,
		TaxRate:      allocation.TaxRate.String(),
		TaxApplied:   allocation.TaxApplied,
		Items:        make([]summaryItemJSON, 0, len(summary.Session.Items)),
		Participants: make([]summaryParticipantJSON, 0, len(allocation.Participants)),
		Subtotal:     amount.Plain(allocation.Subtotal),
		TaxAmount:    amount.Plain(allocation.TaxAmount),
		Total:        amount.Plain(allocation.Total),
		Unassigned:   amount.Plain(allocation.Unattributed),
	}

	for _, item := range summary.Session.Items {
		item = item.Normalize()
		splitAmong := make([]string, 0, len(item.Participants))
		for _, ref := range item.Participants {
			splitAmong = append(splitAmong, string(ref))
		}
		out.Items = append(out.Items, summaryItemJSON{
			ID:         string(item.ID),
			Name:       item.Name,
			Cost:       item.UnitCost.String(),
			Quantity:   item.Quantity,
			Total:      amount.Plain(item.Total()),
			SplitAmong: splitAmong,
		})
	}

	for _, participant := range allocation.Participants {
		out.Participants = append(out.Participants, summaryParticipantJSON{
			ID:   string(participant.ID),
			Name: participant.Name,
			Owes: amount.Plain(participant.Owed),
		})
	}

	return out
}

func writeSummaryOutput(cmd *cobra.Command, app *app, summary application.Summary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(newSummaryJSON(summary))
	}

	rendered, err := app.summaryRenderer(summary, summaryadapter.RenderOptions{BarWidth: defaultShareBarWidth})
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
