package app

import (
	"fmt"
	"io"
	"os"

	"github.com/tturner/binwriter/internal/config"
	"github.com/tturner/binwriter/internal/ui"
)

type ProfilesOptions struct {
	ConfigPath string
	Init       bool
	Force      bool
	Edit       bool
	Stdout     io.Writer
}

// RunProfiles lists configured profiles. Init writes a starter config and
// Edit opens the config in an editor, creating it first if needed.
func RunProfiles(opts ProfilesOptions) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath
	}

	if opts.Init {
		if _, err := os.Stat(path); err == nil && !opts.Force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote default config to %s\n", path)
		return nil
	}

	if opts.Edit {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
		}
		if err := ui.OpenEditor(path); err != nil {
			return err
		}
	}

	cfg, err := config.LoadConfig(path, opts.ConfigPath != "" || opts.Edit)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, ui.RenderProfiles(path, cfg.Profiles))
	return nil
}
