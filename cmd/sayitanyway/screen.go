package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sayitanyway/internal/core/langhint"
	"sayitanyway/internal/core/screening"
	perr "sayitanyway/internal/platform/errors"
)

func newScreenCmd() *cobra.Command {
	var (
		fromStdin bool
		rulesFile string
	)
	cmd := &cobra.Command{
		Use:   "screen [text...]",
		Short: "Screen text for self-harm risk without saving anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if fromStdin {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read stdin")
				}
				text = string(b)
			}
			engine := screening.Default()
			if rulesFile != "" {
				p, err := loadPack([]string{rulesFile})
				if err != nil {
					return err
				}
				engine = screening.New(p)
			}
			return printJSON(cmd.OutOrStdout(), struct {
				screening.Result
				Language langhint.Hint `json:"language"`
			}{engine.Screen(text), langhint.Detect(text)})
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the text from stdin instead of arguments")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "Screen with this rule pack instead of the embedded one")
	return cmd
}
