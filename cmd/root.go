package cmd

import "github.com/spf13/cobra"

const skipWireAnnotation = "splitcalc/skip-wire"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "splitcalc",
		Short:         "Split a shared bill between participants",
		Long:          "splitcalc keeps a bill-splitting session of items and participants, applies the selected country's tax and shows what everyone owes. Sessions can be exported and imported as JSON and printed as an invoice.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWireAnnotation] == "true" {
				return nil
			}
			return app.wire(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return app.Close()
		},
	}

	rootCmd.PersistentFlags().String(flagStore, "", "Session store path (default ~/.splitcalc/session.toml or session.db)")
	rootCmd.PersistentFlags().String(flagBackend, "", "Session store backend: toml or sqlite")

	rootCmd.AddCommand(
		newVersionCmd(),
		newCountriesCmd(),
		newSummaryCmd(app),
		newItemCmd(app),
		newPersonCmd(app),
		newTaxCmd(app),
		newResetCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newInvoiceCmd(app),
	)

	return rootCmd
}
