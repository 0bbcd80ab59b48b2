package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/splitcalc/internal/adapters/render/amount"
	"github.com/bnema/splitcalc/internal/application"
	"github.com/bnema/splitcalc/internal/domain"
	"github.com/spf13/cobra"
)

func newItemCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage bill items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemSetCmd(app),
		newItemRemoveCmd(app),
		newItemAssignCmd(app),
		newItemToggleCmd(app),
		newItemListCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *app) *cobra.Command {
	var cost, quantity string
	var split []string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an item",
		Long:  "Add an item. Cost and quantity accept any text; values that are not numbers or are negative count as 0.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, err := app.service.Current(ctx)
			if err != nil {
				return err
			}
			participants, err := resolveParticipants(session, split)
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			item, err := app.service.AddItem(ctx, application.AddItemCommand{
				Name:       name,
				Cost:       cost,
				Quantity:   quantity,
				SplitAmong: participants,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added item %s\n", item.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&cost, "cost", "0", "Unit cost")
	cmd.Flags().StringVar(&quantity, "qty", "1", "Quantity")
	cmd.Flags().StringSliceVar(&split, "split", nil, "Participants sharing the item (id, position or name)")

	return cmd
}

func newItemSetCmd(app *app) *cobra.Command {
	var name, cost, quantity string

	cmd := &cobra.Command{
		Use:   "set <item>",
		Short: "Change an item's name, cost or quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			itemID, err := resolveItem(ctx, app, args[0])
			if err != nil {
				return err
			}

			update := application.UpdateItemCommand{ID: itemID}
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("cost") {
				update.Cost = &cost
			}
			if cmd.Flags().Changed("qty") {
				update.Quantity = &quantity
			}

			item, err := app.service.UpdateItem(ctx, update)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated item %s\n", item.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().StringVar(&cost, "cost", "", "Unit cost")
	cmd.Flags().StringVar(&quantity, "qty", "", "Quantity")

	return cmd
}

func newItemRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <item>",
		Aliases: []string{"rm"},
		Short:   "Remove an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			itemID, err := resolveItem(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.service.RemoveItem(ctx, itemID); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed item %s\n", itemID)
			return err
		},
	}
}

func newItemAssignCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <item> [participant...]",
		Short: "Replace the participants sharing an item",
		Long:  "Replace the participants sharing an item. With no participants the item is left unassigned; it still counts toward the total.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, err := app.service.Current(ctx)
			if err != nil {
				return err
			}
			itemID, err := application.ResolveItem(session, args[0])
			if err != nil {
				return err
			}
			participants, err := resolveParticipants(session, args[1:])
			if err != nil {
				return err
			}

			item, err := app.service.AssignItem(ctx, itemID, participants)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "item %s split among %d\n", item.ID, len(item.SharedBy()))
			return err
		},
	}
}

func newItemToggleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <item> <participant>",
		Short: "Add or remove one participant from an item's split",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, err := app.service.Current(ctx)
			if err != nil {
				return err
			}
			itemID, err := application.ResolveItem(session, args[0])
			if err != nil {
				return err
			}
			participantID, err := application.ResolveParticipant(session, args[1])
			if err != nil {
				return err
			}

			item, err := app.service.ToggleAssignment(ctx, itemID, participantID)
			if err != nil {
				return err
			}

			state := "removed from"
			if item.IsSharedBy(participantID) {
				state = "added to"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s item %s\n", participantID, state, item.ID)
			return err
		},
	}
}

func newItemListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := app.service.Summary(cmd.Context())
			if err != nil {
				return err
			}

			names := make(map[domain.ParticipantID]string, len(summary.Session.Participants))
			for i, participant := range summary.Session.Participants {
				names[participant.ID] = participant.DisplayName(i)
			}

			for i, item := range summary.Session.Items {
				item = item.Normalize()
				split := make([]string, 0, len(item.Participants))
				for _, ref := range item.SharedBy() {
					split = append(split, referenceLabel(ref, names))
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s x %d\t%s\t%s\n",
					i+1,
					item.ID,
					item.Name,
					amount.Plain(item.UnitCost),
					item.Quantity,
					amount.Format(summary.Country.Currency, item.Total()),
					strings.Join(split, ", "),
				)
			}

			return nil
		},
	}
}

func resolveItem(ctx context.Context, app *app, ref string) (domain.ItemID, error) {
	session, err := app.service.Current(ctx)
	if err != nil {
		return "", err
	}

	return application.ResolveItem(session, ref)
}

func resolveParticipants(session domain.Session, refs []string) ([]domain.ParticipantID, error) {
	ids := make([]domain.ParticipantID, 0, len(refs))
	for _, ref := range refs {
		id, err := application.ResolveParticipant(session, ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func referenceLabel(ref domain.ParticipantID, names map[domain.ParticipantID]string) string {
	if name, ok := names[ref]; ok {
		return name
	}
	if name, ok := ref.Detached(); ok {
		return name + " (removed)"
	}

	return string(ref)
}
