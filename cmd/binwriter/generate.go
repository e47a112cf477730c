package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tturner/binwriter/internal/app"
	"github.com/tturner/binwriter/internal/config"
	"github.com/tturner/binwriter/internal/gen"
)

type generateFlags struct {
	filename   string
	size       string
	fill       string
	random     bool
	seed       int64
	pattern    string
	hexText    string
	integers   string
	width      int
	endianness string
	profile    string
	configPath string
	maxSize    string
	manifest   string
	copyHex    bool
	dryRun     bool
	noProgress bool
	quiet      bool
	verbose    bool
	debug      bool
	logFile    string
	logFormat  string
}

func newGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a binary file",
		Long: `Generate a binary file from exactly one content mode.

Fill, random and pattern need --size. Hex and integers take their size from
the data. Settings that do not apply to the chosen mode are ignored.`,
		Example: `  # 1 KiB of erased flash
  binwriter generate -f erased.bin -s 1KiB --fill FF

  # Tile a pattern over 10 bytes
  binwriter generate -f pat.bin -s 10 --pattern DEADBEEF

  # Two big-endian 16-bit integers to stdout
  binwriter generate -f - --integers 1,258 -w 2 -e big | xxd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if flags.filename == "" && flags.profile == "" {
				return missingFlagError(cmd, "--filename")
			}
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			opts.Stdout = cmd.OutOrStdout()
			opts.Stderr = cmd.ErrOrStderr()
			return app.RunGenerate(opts)
		},
	}

	addGenerateFlags(cmd, flags)
	addSpecFlags(cmd, flags)
	cmd.Flags().StringVar(&flags.profile, "profile", "", "Start from a named profile in the config file")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file (default "+config.DefaultConfigPath+" if present)")
	cmd.Flags().StringVar(&flags.maxSize, "max-size", "", "Override the output size cap (0 disables it)")

	return cmd
}

// addSpecFlags registers the output and content mode flags.
func addSpecFlags(cmd *cobra.Command, flags *generateFlags) {
	cmd.Flags().StringVarP(&flags.filename, "filename", "f", "", "Output file path, or - for stdout (required)")
	cmd.Flags().StringVarP(&flags.size, "size", "s", "", "Output size in bytes (fill, random, pattern); K/M/G suffixes allowed")
	cmd.Flags().StringVarP(&flags.fill, "fill", "F", "", "Fill mode: repeat one hex byte, e.g. FF or 0x00")
	cmd.Flags().BoolVarP(&flags.random, "random", "R", false, "Random mode: bytes from the system CSPRNG")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "Seed for reproducible (non-cryptographic) random output")
	cmd.Flags().StringVarP(&flags.pattern, "pattern", "P", "", "Pattern mode: hex pattern tiled to --size")
	cmd.Flags().StringVarP(&flags.hexText, "hex", "X", "", "Hex mode: write the decoded hex string verbatim")
	cmd.Flags().StringVarP(&flags.integers, "integers", "I", "", "Integers mode: comma or space separated values")
	cmd.Flags().IntVarP(&flags.width, "width", "w", gen.DefaultIntegerWidth, "Integer width in bytes (1-8)")
	cmd.Flags().StringVarP(&flags.endianness, "endianness", "e", "little", "Integer byte order (little|big)")
}

// addGenerateFlags registers the run options shared with the wizard.
func addGenerateFlags(cmd *cobra.Command, flags *generateFlags) {
	cmd.Flags().StringVar(&flags.manifest, "manifest", "", "Write a JSON run manifest to this path")
	cmd.Flags().BoolVar(&flags.copyHex, "copy-hex", false, "Copy a hex preview of the output to the clipboard")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Generate and summarize without writing the output")
	cmd.Flags().BoolVar(&flags.noProgress, "no-progress", false, "Disable the progress bar")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress the summary and progress output")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Enable debug output (includes hex preview)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Also write logs to this file")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "Log file format (text|json); overrides log_format in the config")
}

// options builds run options. Only flags the user actually set end up in
// the spec, so profile values are not clobbered by flag defaults.
func (f *generateFlags) options(cmd *cobra.Command) (app.GenerateOptions, error) {
	opts := f.runOptions()
	opts.Filename = f.filename
	opts.Profile = f.profile
	opts.ConfigPath = f.configPath
	opts.MaxSize = f.maxSize

	changed := cmd.Flags().Changed
	spec := &opts.Spec
	if changed("size") {
		size, err := config.ParseByteSize(f.size)
		if err != nil {
			return opts, err
		}
		spec.Size = &size
	}
	if changed("fill") {
		spec.Fill = &f.fill
	}
	if changed("random") {
		spec.Random = f.random
	}
	if changed("seed") {
		spec.Seed = &f.seed
	}
	if changed("pattern") {
		spec.Pattern = &f.pattern
	}
	if changed("hex") {
		spec.Hex = &f.hexText
	}
	if changed("integers") {
		spec.Integers = &f.integers
	}
	if changed("width") {
		spec.Width = &f.width
	}
	if changed("endianness") {
		spec.Endianness = &f.endianness
	}
	return opts, nil
}

func (f *generateFlags) runOptions() app.GenerateOptions {
	return app.GenerateOptions{
		ConfigPath: f.configPath,
		Manifest:   f.manifest,
		CopyHex:    f.copyHex,
		DryRun:     f.dryRun,
		NoProgress: f.noProgress,
		Quiet:      f.quiet,
		Verbose:    f.verbose,
		Debug:      f.debug,
		LogFile:    f.logFile,
		LogFormat:  f.logFormat,
	}
}

func handleHelpArg(cmd *cobra.Command, args []string) bool {
	if len(args) > 0 && strings.EqualFold(args[0], "help") {
		_ = cmd.Help()
		return true
	}
	return false
}

func missingFlagError(cmd *cobra.Command, flag string) error {
	_ = cmd.Help()
	return fmt.Errorf("required flag %s not set", flag)
}
