package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/bidix-patch/internal/app"
)

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "bidix-patch [flags] <input-file>",
		Short: "Generate a POS-sorted bidix patch from a word-pair list",
		Long: `Reads one "left right" tagged word pair per line, e.g.

  cat<n><sg> gato<n><m><sg>

and writes <e> entries grouped by the left word's first tag, groups sorted
by tag. Lines with fewer than two tokens are skipped.

The output path is <workdir>/<output> in cleaned form, so the default run
reports "bidix.patches" rather than "./bidix.patches".`,
		Args:          cobra.MaximumNArgs(1),
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.InputFile = args[0]
			}
			_, err := app.Run(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.WorkDir, "workdir", "w", "", `directory holding input and output (default ".")`)
	cmd.Flags().StringVarP(&opts.OutputFile, "output", "o", "", `output file name (default "bidix.patches")`)
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")

	return cmd
}
