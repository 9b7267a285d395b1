package main

import (
	"github.com/spf13/cobra"

	"sayitanyway/internal/core/rulepack"
	"sayitanyway/internal/core/version"
	"sayitanyway/internal/modkit/module"
	"sayitanyway/internal/modkit/repokit"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), version.Info())
		},
	}
}

type check struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the rule pack, storage backends and module wiring",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var checks []check
			add := func(name string, err error) {
				c := check{Name: name, OK: err == nil}
				if err != nil {
					c.Error = err.Error()
				}
				checks = append(checks, c)
			}

			_, err := rulepack.Load()
			add("rulepack", err)

			err = withApp(cmd.Context(), func(a *app) error {
				if p, ok := a.st.PG.(repokit.Pinger); ok && a.st.PG != nil {
					add("postgres", repokit.Ping(cmd.Context(), "postgres", p))
				}
				if p, ok := a.st.RDS.(repokit.Pinger); ok && a.st.RDS != nil {
					add("redis", repokit.Ping(cmd.Context(), "redis", p))
				}
				_, err := a.sub.GetStatus(cmd.Context())
				add("blobs:"+a.backend, err)
				return nil
			})
			add("wiring", err)

			return printJSON(cmd.OutOrStdout(), map[string]any{
				"version": version.Info(),
				"modules": module.Registered(),
				"checks":  checks,
			})
		},
	}
}
