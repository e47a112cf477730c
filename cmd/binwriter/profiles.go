package main

import (
	"github.com/spf13/cobra"
	"github.com/tturner/binwriter/internal/app"
)

func newProfilesCmd() *cobra.Command {
	var opts app.ProfilesOptions

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List content profiles from the config file",
		Long: `List the named profiles defined in the config file. Use --init to
write a starter config with example profiles, or --edit to open it in
$VISUAL/$EDITOR (the file is checked again when the editor exits).`,
		Example: `  binwriter profiles --init
  binwriter profiles
  binwriter generate --profile deadbeef-1k -f out.bin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			opts.Stdout = cmd.OutOrStdout()
			return app.RunProfiles(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Config file (default binwriter.yaml)")
	cmd.Flags().BoolVar(&opts.Init, "init", false, "Write a default config with example profiles")
	cmd.Flags().BoolVar(&opts.Edit, "edit", false, "Open the config in $EDITOR, then list its profiles")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing config with --init")

	return cmd
}
