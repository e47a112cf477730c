package app

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tturner/binwriter/internal/artifact"
	"github.com/tturner/binwriter/internal/config"
	binErrors "github.com/tturner/binwriter/internal/errors"
	"github.com/tturner/binwriter/internal/gen"
	"github.com/tturner/binwriter/internal/logging"
	"github.com/tturner/binwriter/internal/output"
	"github.com/tturner/binwriter/internal/progress"
	"github.com/tturner/binwriter/internal/ui"
)

type GenerateOptions struct {
	Filename string
	// Spec holds only what the user set; profile values fill the rest.
	Spec       gen.Spec
	Profile    string
	ConfigPath string
	EnvPath    string
	MaxSize    string
	Manifest   string
	CopyHex    bool
	DryRun     bool
	NoProgress bool
	Quiet      bool
	Verbose    bool
	Debug      bool
	LogFile    string
	// LogFormat overrides the config's log_format for LogFile.
	LogFormat string

	Stdout  io.Writer
	Stderr  io.Writer
	Entropy io.Reader
}

func RunGenerate(opts GenerateOptions) (err error) {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg, err := loadConfig(opts.ConfigPath, opts.EnvPath)
	if err != nil {
		return err
	}
	if opts.MaxSize != "" {
		maxSize, err := config.ParseByteSize(opts.MaxSize)
		if err != nil {
			return fmt.Errorf("parse --max-size: %w", err)
		}
		if maxSize < 0 {
			return fmt.Errorf("--max-size must be >= 0 (0 disables the cap)")
		}
		cfg.MaxSize = maxSize
	}

	logger, err := newLogger(cfg, opts)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.SetConsole(stderr)

	spec := opts.Spec
	filename := opts.Filename
	if opts.Profile != "" {
		profile, err := cfg.FindProfile(opts.Profile)
		if err != nil {
			return err
		}
		spec = profile.Spec.Merge(opts.Spec)
		if filename == "" {
			filename = profile.Output
		}
		logger.Verbose("Using profile %s", profile.Name)
	}
	if filename == "" {
		return fmt.Errorf("required flag --filename not set")
	}
	spec = cfg.ApplyDefaults(spec)

	var manifest *artifact.Manifest
	if opts.Manifest != "" {
		manifest = artifact.NewManifest(opts.Manifest)
		manifest.SetProfile(opts.Profile)
		defer func() {
			exitCode := 0
			if err != nil {
				exitCode = 1
			}
			if ferr := manifest.Finalize(exitCode, err); ferr != nil && err == nil {
				err = ferr
			}
		}()
	}

	req, err := gen.Validate(spec, cfg.Limits())
	if err != nil {
		return binErrors.WrapGenerationError(err)
	}
	description := gen.Describe(req)
	logger.LogRequest(filename, req.OutputSize(), description, spec.Ignored())
	if manifest != nil {
		manifest.SetRequest(req.Mode().String(), description)
	}

	var engineOpts []gen.Option
	if opts.Entropy != nil {
		engineOpts = append(engineOpts, gen.WithEntropy(opts.Entropy))
	}
	data, err := gen.NewEngine(engineOpts...).Generate(req)
	if err != nil {
		return binErrors.WrapGenerationError(err)
	}
	logger.LogHex("Preview", head(data, cfg.PreviewBytes))
	if ints, ok := req.(gen.IntegersRequest); ok {
		logReadBack(logger, data, ints)
	}

	if !opts.Quiet {
		fmt.Fprintln(stderr, ui.RenderSummary(ui.Summary{
			Filename: filename,
			Size:     int64(len(data)),
			Mode:     description,
			Profile:  opts.Profile,
			Preview:  ui.HexPreview(data, cfg.PreviewBytes),
			DryRun:   opts.DryRun,
			Manifest: opts.Manifest,
		}))
	}

	if opts.CopyHex {
		// Clipboard failures never fail the run.
		if text, err := ui.CopyHexPreview(data, cfg.PreviewBytes); err != nil {
			logger.Error("copy hex preview: %v", err)
		} else {
			logger.Verbose("Copied to clipboard: %s", text)
		}
	}

	if opts.DryRun {
		logger.Info("Dry run: %s not written", filename)
		if manifest != nil {
			manifest.SetContent("", data)
		}
		return nil
	}

	writeOpts := output.Options{ChunkSize: cfg.ChunkSize, Stdout: stdout}
	var bar *progress.ProgressBar
	if showProgress(opts, filename, int64(len(data)), cfg.ProgressThreshold) {
		bar = progress.NewProgressBar(int64(len(data)), "Writing")
		bar.SetOutput(stderr)
		writeOpts.Progress = bar
	}
	if err := output.Write(filename, data, writeOpts); err != nil {
		return binErrors.WrapOutputError(err, filename)
	}
	if bar != nil {
		bar.Finish()
	}
	if manifest != nil {
		manifest.SetContent(filename, data)
	}
	logger.Verbose("Wrote %d bytes to %s", len(data), filename)
	return nil
}

func loadConfig(configPath, envPath string) (*config.Config, error) {
	required := configPath != ""
	if !required {
		configPath = config.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath, required)
	if err != nil {
		return nil, err
	}
	if envPath == "" {
		envPath = config.DefaultEnvPath
	}
	if err := config.ApplyEnv(cfg, envPath); err != nil {
		return nil, binErrors.WrapConfigError(err, envPath)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, opts GenerateOptions) (*logging.Logger, error) {
	logLevel, err := logging.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		logLevel = logging.LogLevelDebug
	} else if opts.Verbose {
		logLevel = logging.LogLevelVerbose
	} else if opts.Quiet {
		logLevel = logging.LogLevelError
	}

	format := cfg.LogFormat
	if opts.LogFormat != "" {
		format = opts.LogFormat
	}
	logger, err := logging.NewLoggerWithOptions(logLevel, opts.LogFile, format)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}

// logReadBack decodes integer output again and logs the values at debug level.
func logReadBack(logger *logging.Logger, data []byte, req gen.IntegersRequest) {
	if logger.GetLevel() < logging.LogLevelDebug {
		return
	}
	values, err := gen.DecodeIntegers(data, req.Width, req.Order)
	if err != nil {
		logger.Debug("Read back failed: %v", err)
		return
	}
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.FormatUint(value, 10)
	}
	logger.Debug("Read back: %s", strings.Join(parts, ", "))
}

func showProgress(opts GenerateOptions, filename string, size, threshold int64) bool {
	if opts.NoProgress || opts.Quiet || filename == output.Stdout {
		return false
	}
	return threshold > 0 && size >= threshold
}

func head(data []byte, n int) []byte {
	if n < 0 || n > len(data) {
		return data
	}
	return data[:n]
}
