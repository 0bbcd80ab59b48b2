package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/splitcalc/internal/adapters/fetch"
	splitlog "github.com/bnema/splitcalc/internal/log"
	"github.com/spf13/cobra"
)

const exportFileMode = 0o644

func newExportCmd(app *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the session as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := app.service.Export(cmd.Context())
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := os.WriteFile(out, data, exportFileMode); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", out)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")

	return cmd
}

func newImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path|url|->",
		Short: "Replace the session with an exported JSON document",
		Long:  "Replace the session with an exported JSON document read from a file, an http(s) URL or stdin (-). Participants are matched by name; the selected country is kept. A document that cannot be read leaves the session untouched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]

			// The token is taken before fetching so a slower, older import
			// cannot overwrite a newer one.
			token := app.service.BeginImport()

			ctx, cancel := context.WithTimeout(cmd.Context(), app.config.ImportTimeout)
			defer cancel()

			app.logger.DebugContext(ctx, "fetching import",
				splitlog.FieldOperation, splitlog.OpImport,
				splitlog.FieldSource, source,
				splitlog.FieldImportToken, uint64(token))

			var data []byte
			var err error
			if fetch.IsRemote(source) {
				data, err = runImportFetchSpinner(ctx, cmd.ErrOrStderr(), "Fetching "+source+"...", func(ctx context.Context) ([]byte, error) {
					return app.fetcher.Fetch(ctx, source)
				})
			} else {
				data, err = app.fetcher.Fetch(ctx, source)
			}
			if err != nil {
				return fmt.Errorf("read import source: %w", err)
			}

			session, err := app.service.Import(ctx, token, data)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d items and %d participants\n",
				len(session.Items), len(session.Participants))
			return err
		},
	}
}
