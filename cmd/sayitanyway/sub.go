package main

import (
	"github.com/spf13/cobra"
)

func printStatus(cmd *cobra.Command, a *app) error {
	st, err := a.sub.GetStatus(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), st)
}

// subAction runs fn and prints the resulting status
func subAction(use, short string, fn func(cmd *cobra.Command, a *app) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(a *app) error {
				if err := fn(cmd, a); err != nil {
					return err
				}
				return printStatus(cmd, a)
			})
		},
	}
}

func newSubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Subscription status, store events and access codes",
	}
	cmd.AddCommand(
		subAction("status", "Show the subscription status", func(*cobra.Command, *app) error { return nil }),
		subAction("activate", "Record an active store subscription", func(cmd *cobra.Command, a *app) error {
			return a.sub.ActivateStoreSubscription(cmd.Context())
		}),
		subAction("deactivate", "Record a lapsed store subscription", func(cmd *cobra.Command, a *app) error {
			return a.sub.DeactivateStoreSubscription(cmd.Context())
		}),
		subAction("clear-unlock", "Remove an access code unlock", func(cmd *cobra.Command, a *app) error {
			return a.sub.ClearUnlock(cmd.Context())
		}),
		&cobra.Command{
			Use:   "redeem <code>",
			Short: "Redeem an access code",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), func(a *app) error {
					ok, err := a.sub.RedeemAccessCode(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					st, err := a.sub.GetStatus(cmd.Context())
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), map[string]any{"redeemed": ok, "status": st})
				})
			},
		},
		&cobra.Command{
			Use:   "ads [screen]",
			Short: "Report whether ads may show on a screen",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				screen := ""
				if len(args) == 1 {
					screen = args[0]
				}
				return withApp(cmd.Context(), func(a *app) error {
					show, err := a.sub.ShouldShowAds(cmd.Context(), screen)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), map[string]any{"screen": screen, "showAds": show})
				})
			},
		},
	)
	return cmd
}
