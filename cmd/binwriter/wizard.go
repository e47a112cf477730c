package main

import (
	"github.com/spf13/cobra"
	"github.com/tturner/binwriter/internal/app"
)

func newWizardCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Build and generate a file interactively",
		Long: `Walk through output path, content mode and mode settings in an
interactive form, then generate the file exactly as 'generate' would.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			opts := flags.runOptions()
			opts.Filename = flags.filename
			opts.Stdout = cmd.OutOrStdout()
			opts.Stderr = cmd.ErrOrStderr()
			return app.RunWizard(opts)
		},
	}

	addGenerateFlags(cmd, flags)
	cmd.Flags().StringVarP(&flags.filename, "filename", "f", "", "Default output path offered by the form")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file for size cap and integer defaults")

	return cmd
}
