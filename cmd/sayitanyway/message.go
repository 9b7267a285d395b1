package main

import (
	"strings"

	"github.com/spf13/cobra"

	jdom "sayitanyway/internal/services/journal/domain"
)

func newMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "message",
		Aliases: []string{"messages"},
		Short:   "List, hide and delete saved messages",
	}

	var all bool
	listCmd := &cobra.Command{
		Use:   "list <recipient-id>",
		Short: "List a recipient's messages, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				ms, err := a.journal.ListMessages(cmd.Context(), args[0], all)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), ms)
			})
		},
	}
	listCmd.Flags().BoolVar(&all, "all", false, "Include hidden messages")

	var unhide bool
	hideCmd := &cobra.Command{
		Use:   "hide <id>",
		Short: "Hide a message from the default listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				if err := a.journal.HideMessage(cmd.Context(), args[0], !unhide); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"id": args[0], "hidden": !unhide})
			})
		},
	}
	hideCmd.Flags().BoolVar(&unhide, "unhide", false, "Show the message again")

	cmd.AddCommand(
		listCmd,
		hideCmd,
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete a message",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), func(a *app) error {
					if err := a.journal.DeleteMessage(cmd.Context(), args[0]); err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), map[string]string{"deleted": args[0]})
				})
			},
		},
	)
	return cmd
}

func newComposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Save a text or audio message to a recipient",
	}

	compose := func(cmd *cobra.Command, in jdom.ComposeInput) error {
		return withApp(cmd.Context(), func(a *app) error {
			res, err := a.journal.Compose(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		})
	}

	textCmd := &cobra.Command{
		Use:   "text <recipient-id> <text...>",
		Short: "Save a text message",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compose(cmd, jdom.ComposeInput{
				RecipientID: args[0],
				Type:        jdom.MessageText,
				Text:        strings.Join(args[1:], " "),
			})
		},
	}

	var uri string
	var seconds int
	audioCmd := &cobra.Command{
		Use:   "audio <recipient-id>",
		Short: "Save an audio message, charging its duration against recording time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compose(cmd, jdom.ComposeInput{
				RecipientID:     args[0],
				Type:            jdom.MessageAudio,
				AudioURI:        uri,
				DurationSeconds: seconds,
			})
		},
	}
	audioCmd.Flags().StringVar(&uri, "uri", "", "Recording URI")
	audioCmd.Flags().IntVar(&seconds, "duration", 0, "Recording length in seconds")

	cmd.AddCommand(textCmd, audioCmd)
	return cmd
}
