package main

import (
	"github.com/spf13/cobra"

	jdom "sayitanyway/internal/services/journal/domain"
)

func bindRecipientFlags(cmd *cobra.Command, in *jdom.RecipientInput) {
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "Recipient name")
	f.StringVar(&in.Nickname, "nickname", "", "Nickname")
	f.StringVar((*string)(&in.Gender), "gender", "", "Male, Female, Non-Binary or 'Decline to State'")
	f.StringVar(&in.PhotoURI, "photo", "", "Photo URI")
	f.StringVar(&in.DateOfBirth, "born", "", "Date of birth, YYYY-MM-DD")
	f.StringVar(&in.DateOfDeath, "died", "", "Date of death, YYYY-MM-DD")
	f.StringVar(&in.Notes, "notes", "", "Free-form notes")
	f.BoolVar(&in.IsDefault, "default", false, "Make this the default recipient")
}

func newRecipientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipient",
		Aliases: []string{"recipients"},
		Short:   "Manage the people messages are written to",
	}

	var add jdom.RecipientInput
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipient",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				r, err := a.journal.AddRecipient(cmd.Context(), add)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), r)
			})
		},
	}
	bindRecipientFlags(addCmd, &add)

	var upd jdom.RecipientInput
	updCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a recipient's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				r, err := a.journal.UpdateRecipient(cmd.Context(), args[0], upd)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), r)
			})
		},
	}
	bindRecipientFlags(updCmd, &upd)

	cmd.AddCommand(
		addCmd,
		updCmd,
		&cobra.Command{
			Use:   "list",
			Short: "List recipients",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd.Context(), func(a *app) error {
					rs, err := a.journal.ListRecipients(cmd.Context())
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), rs)
				})
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one recipient",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), func(a *app) error {
					r, err := a.journal.GetRecipient(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), r)
				})
			},
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete a recipient and every message to them",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), func(a *app) error {
					if err := a.journal.DeleteRecipient(cmd.Context(), args[0]); err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), map[string]string{"deleted": args[0]})
				})
			},
		},
	)
	return cmd
}
