package cmd

import (
	"fmt"

	"github.com/bnema/splitcalc/internal/adapters/render/amount"
	"github.com/spf13/cobra"
)

func newTaxCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Toggle tax and select the country whose rate applies",
	}

	cmd.AddCommand(
		newTaxToggleCmd(app, "on", true),
		newTaxToggleCmd(app, "off", false),
		newTaxCountryCmd(app),
	)

	return cmd
}

func newTaxToggleCmd(app *app, use string, applied bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Turn tax %s", use),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.SetTaxApplied(cmd.Context(), applied); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "tax %s\n", use)
			return err
		},
	}
}

func newTaxCountryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "country <code>",
		Short: "Select the country (see `splitcalc countries`)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			country, err := app.service.SetCountry(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "country %s %s (%s %s)\n",
				country.Flag, country.Name, country.TaxLabel, amount.Percent(country.TaxRate))
			return err
		},
	}
}
