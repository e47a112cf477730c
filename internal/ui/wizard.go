package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tturner/binwriter/internal/config"
	"github.com/tturner/binwriter/internal/gen"
)

// WizardOptions holds the raw answers collected by the wizard.
type WizardOptions struct {
	Mode       string
	Output     string
	Size       string
	Fill       string
	Seed       string
	Pattern    string
	Hex        string
	Integers   string
	Width      string
	Endianness string
}

// WizardModes lists the selectable modes in display order.
func WizardModes() []string {
	return []string{"fill", "random", "pattern", "hex", "integers"}
}

// BuildWizardSpec converts wizard answers into a spec for the selected mode.
// Answers belonging to other modes are dropped.
func BuildWizardSpec(opts WizardOptions) (gen.Spec, error) {
	var spec gen.Spec
	mode := strings.ToLower(strings.TrimSpace(opts.Mode))

	switch mode {
	case "fill", "random", "pattern":
		size, err := config.ParseByteSize(opts.Size)
		if err != nil {
			return spec, fmt.Errorf("size: %w", err)
		}
		spec.Size = &size
	}

	switch mode {
	case "fill":
		fill := strings.TrimSpace(opts.Fill)
		spec.Fill = &fill
	case "random":
		spec.Random = true
		if seedText := strings.TrimSpace(opts.Seed); seedText != "" {
			seed, err := strconv.ParseInt(seedText, 10, 64)
			if err != nil {
				return spec, fmt.Errorf("seed: invalid integer %q", seedText)
			}
			spec.Seed = &seed
		}
	case "pattern":
		pattern := opts.Pattern
		spec.Pattern = &pattern
	case "hex":
		hexText := opts.Hex
		spec.Hex = &hexText
	case "integers":
		integers := opts.Integers
		spec.Integers = &integers
		if widthText := strings.TrimSpace(opts.Width); widthText != "" {
			width, err := strconv.Atoi(widthText)
			if err != nil {
				return spec, fmt.Errorf("width: invalid integer %q", widthText)
			}
			spec.Width = &width
		}
		if order := strings.TrimSpace(opts.Endianness); order != "" {
			spec.Endianness = &order
		}
	default:
		return spec, fmt.Errorf("unsupported mode %q (choose %s)", opts.Mode, strings.Join(WizardModes(), ", "))
	}
	return spec, nil
}
