package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/splitcalc/internal/adapters/render/invoice"
	"github.com/spf13/cobra"
)

const defaultInvoiceWidth = 80

func newInvoiceCmd(app *app) *cobra.Command {
	var out, style string
	var render bool
	var width int

	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Produce an invoice of the session as Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := app.service.Summary(cmd.Context())
			if err != nil {
				return err
			}

			document := invoice.Markdown(summary, app.now())

			if out != "" {
				if err := os.WriteFile(out, []byte(document), exportFileMode); err != nil {
					return fmt.Errorf("write invoice file: %w", err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "invoice written to %s\n", out)
				return err
			}

			if render {
				document, err = invoice.Render(document, style, width)
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), document)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the Markdown to file instead of stdout")
	cmd.Flags().BoolVar(&render, "render", false, "Lay the invoice out for the terminal")
	cmd.Flags().StringVar(&style, "style", "", "Terminal style when rendering: dark, light or notty (default: detect)")
	cmd.Flags().IntVar(&width, "width", defaultInvoiceWidth, "Wrap width when rendering")

	return cmd
}
