package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"sayitanyway/internal/core/quota"
	perr "sayitanyway/internal/platform/errors"
	rtdom "sayitanyway/internal/services/recordingtime/domain"
)

type timeView struct {
	Pools     rtdom.RecordingTime `json:"pools"`
	Total     int                 `json:"total"`
	Formatted string              `json:"formatted"`
	Next      rtdom.PoolInfo      `json:"next"`
}

func showTime(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()
	rt, err := a.ledger.GetRecordingTime(ctx)
	if err != nil {
		return err
	}
	next, err := a.ledger.GetNextPoolInfo(ctx)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), timeView{
		Pools:     rt,
		Total:     rt.Total(),
		Formatted: quota.FormatSeconds(rt.Total()),
		Next:      next,
	})
}

func newTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Inspect and spend recording time",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show pools, total and the pool drawn from next",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd.Context(), func(a *app) error { return showTime(cmd, a) })
			},
		},
		&cobra.Command{
			Use:   "deduct <seconds>",
			Short: "Deduct seconds, all or nothing",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				secs, err := strconv.Atoi(args[0])
				if err != nil {
					return perr.WithField(perr.InvalidArgf("seconds must be an integer, got %q", args[0]), "seconds")
				}
				return withApp(cmd.Context(), func(a *app) error {
					ok, err := a.ledger.DeductRecordingTime(cmd.Context(), secs)
					if err != nil {
						return err
					}
					total, err := a.ledger.GetTotalRecordingTime(cmd.Context())
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), map[string]any{"deducted": ok, "total": total})
				})
			},
		},
		&cobra.Command{
			Use:   "buy-extra",
			Short: "Credit one purchased extra time pack",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd.Context(), func(a *app) error {
					if err := a.sub.PurchaseExtraTime(cmd.Context()); err != nil {
						return err
					}
					return showTime(cmd, a)
				})
			},
		},
	)
	return cmd
}
