package app

import (
	"fmt"
	"os"

	"github.com/tturner/binwriter/internal/ui"
)

// RunWizard collects a content spec interactively and generates it with
// the remaining options of base.
func RunWizard(base GenerateOptions) error {
	answers, err := ui.RunWizard(ui.WizardOptions{Mode: "fill", Output: base.Filename})
	if err != nil {
		return err
	}
	spec, err := ui.BuildWizardSpec(answers)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}
	base.Spec = spec
	base.Filename = answers.Output
	base.Profile = ""

	if !base.Quiet {
		stderr := base.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		fmt.Fprintf(stderr, "Equivalent command: %s\n", ui.BuildCommand(base.Filename, spec))
	}
	return RunGenerate(base)
}
