package cmd

import (
	"fmt"

	"github.com/bnema/splitcalc/internal/adapters/render/amount"
	"github.com/bnema/splitcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "countries",
		Short:       "List supported countries and their tax rates",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipWireAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, country := range domain.Countries() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s\t%s\t%s %s\n",
					country.Code,
					country.Flag,
					country.Name,
					country.Currency,
					country.TaxLabel,
					amount.Percent(country.TaxRate),
				)
			}

			return nil
		},
	}
}
