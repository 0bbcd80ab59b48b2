package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/splitcalc/internal/adapters/render/amount"
	"github.com/bnema/splitcalc/internal/application"
	"github.com/bnema/splitcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newPersonCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "person",
		Aliases: []string{"people"},
		Short:   "Manage participants",
	}

	cmd.AddCommand(
		newPersonAddCmd(app),
		newPersonRenameCmd(app),
		newPersonRemoveCmd(app),
		newPersonListCmd(app),
	)

	return cmd
}

func newPersonAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Add a participant",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			participant, err := app.service.AddParticipant(cmd.Context(), name)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added participant %s\n", participant.ID)
			return err
		},
	}
}

func newPersonRenameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <participant> <name>",
		Short: "Rename a participant, keeping their item assignments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			participantID, err := resolveParticipant(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.service.RenameParticipant(ctx, participantID, args[1]); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "renamed participant %s\n", participantID)
			return err
		},
	}
}

func newPersonRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <participant>",
		Aliases: []string{"rm"},
		Short:   "Remove a participant",
		Long:    "Remove a participant. Items they shared keep the same divisor; the removed share is reported as not assigned to anyone.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			participantID, err := resolveParticipant(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.service.RemoveParticipant(ctx, participantID); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed participant %s\n", participantID)
			return err
		},
	}
}

func newPersonListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List participants and what they owe",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := app.service.Summary(cmd.Context())
			if err != nil {
				return err
			}

			for i, participant := range summary.Allocation.Participants {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n",
					i+1,
					participant.ID,
					participant.DisplayName(i),
					amount.Format(summary.Country.Currency, participant.Owed),
				)
			}

			return nil
		},
	}
}

func resolveParticipant(ctx context.Context, app *app, ref string) (domain.ParticipantID, error) {
	session, err := app.service.Current(ctx)
	if err != nil {
		return "", err
	}

	return application.ResolveParticipant(session, ref)
}
