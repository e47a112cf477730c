package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/tturner/binwriter/internal/config"
	"github.com/tturner/binwriter/internal/gen"
)

func buildWizardForm(defaults WizardOptions) *huh.Form {
	opts := defaults
	if opts.Mode == "" {
		opts.Mode = "fill"
	}
	if opts.Fill == "" {
		opts.Fill = "FF"
	}
	if opts.Endianness == "" {
		opts.Endianness = gen.LittleEndian.String()
	}
	if opts.Width == "" {
		opts.Width = strconv.Itoa(gen.DefaultIntegerWidth)
	}

	modeOptions := make([]huh.Option[string], 0, len(WizardModes()))
	for _, mode := range WizardModes() {
		modeOptions = append(modeOptions, huh.NewOption(modeLabel(mode), mode))
	}

	baseGroup := huh.NewGroup(
		huh.NewInput().
			Title("Output file").
			Description("Path to create, or - for stdout.").
			Key("output").
			Value(&opts.Output).
			Validate(requireText("output path")),
		huh.NewSelect[string]().
			Title("Mode").
			Description("How the content is produced.").
			Key("mode").
			Options(modeOptions...).
			Value(&opts.Mode),
	)

	sizeGroup := huh.NewGroup(
		huh.NewInput().
			Title("Size").
			Description("Bytes to generate (suffixes K, M, G allowed).").
			Key("size").
			Value(&opts.Size).
			Validate(validateSize),
	).WithHideFunc(func() bool { return !modeNeedsSize(opts.Mode) })

	fillGroup := huh.NewGroup(
		huh.NewInput().
			Title("Fill byte").
			Description("Hex byte repeated for the whole file (00-FF).").
			Key("fill").
			Value(&opts.Fill).
			Validate(func(s string) error {
				_, err := gen.ParseFillByte(s)
				return err
			}),
	).WithHideFunc(func() bool { return opts.Mode != "fill" })

	randomGroup := huh.NewGroup(
		huh.NewInput().
			Title("Seed (optional)").
			Description("Set for reproducible output; leave empty for unpredictable bytes.").
			Key("seed").
			Value(&opts.Seed),
	).WithHideFunc(func() bool { return opts.Mode != "random" })

	patternGroup := huh.NewGroup(
		huh.NewInput().
			Title("Pattern").
			Description("Hex bytes to repeat, e.g. DE AD BE EF.").
			Key("pattern").
			Value(&opts.Pattern).
			Validate(validatePattern),
	).WithHideFunc(func() bool { return opts.Mode != "pattern" })

	hexGroup := huh.NewGroup(
		huh.NewText().
			Title("Hex payload").
			Description("Literal bytes; whitespace and newlines are ignored.").
			Key("hex").
			Value(&opts.Hex).
			Validate(func(s string) error {
				_, err := gen.DecodeHex(s)
				return err
			}),
	).WithHideFunc(func() bool { return opts.Mode != "hex" })

	integersGroup := huh.NewGroup(
		huh.NewInput().
			Title("Integers").
			Description("Comma or space separated values, decimal or 0x-prefixed.").
			Key("integers").
			Value(&opts.Integers).
			Validate(requireText("integer list")),
		huh.NewInput().
			Title("Width").
			Description("Bytes per integer (1-8).").
			Key("width").
			Value(&opts.Width),
		huh.NewSelect[string]().
			Title("Endianness").
			Key("endianness").
			Options(
				huh.NewOption("Little endian", "little"),
				huh.NewOption("Big endian", "big"),
			).
			Value(&opts.Endianness),
	).WithHideFunc(func() bool { return opts.Mode != "integers" })

	return huh.NewForm(baseGroup, sizeGroup, fillGroup, randomGroup, patternGroup, hexGroup, integersGroup)
}

func wizardOptionsFromForm(form *huh.Form) WizardOptions {
	return WizardOptions{
		Mode:       strings.TrimSpace(form.GetString("mode")),
		Output:     strings.TrimSpace(form.GetString("output")),
		Size:       strings.TrimSpace(form.GetString("size")),
		Fill:       strings.TrimSpace(form.GetString("fill")),
		Seed:       strings.TrimSpace(form.GetString("seed")),
		Pattern:    form.GetString("pattern"),
		Hex:        form.GetString("hex"),
		Integers:   form.GetString("integers"),
		Width:      strings.TrimSpace(form.GetString("width")),
		Endianness: strings.TrimSpace(form.GetString("endianness")),
	}
}

func modeLabel(mode string) string {
	switch mode {
	case "fill":
		return "Fill with one byte"
	case "random":
		return "Random bytes"
	case "pattern":
		return "Repeat a pattern"
	case "hex":
		return "Literal hex payload"
	case "integers":
		return "Fixed-width integers"
	default:
		return mode
	}
}

func modeNeedsSize(mode string) bool {
	return mode == "fill" || mode == "random" || mode == "pattern"
}

func requireText(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errEmpty(label)
		}
		return nil
	}
}

func validateSize(s string) error {
	size, err := config.ParseByteSize(s)
	if err != nil {
		return err
	}
	if size < 0 {
		return gen.ErrNegativeSize
	}
	return nil
}

func validatePattern(s string) error {
	pattern, err := gen.DecodeHex(s)
	if err != nil {
		return err
	}
	if len(pattern) == 0 {
		return gen.ErrEmptyPattern
	}
	return nil
}
