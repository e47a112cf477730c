package ui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ErrWizardAborted is returned when the user leaves the wizard without finishing.
var ErrWizardAborted = errors.New("wizard aborted")

func errEmpty(label string) error {
	return fmt.Errorf("%s is required", label)
}

type wizardModel struct {
	form    *huh.Form
	aborted bool
}

func newWizardModel(defaults WizardOptions) wizardModel {
	return wizardModel{form: buildWizardForm(defaults)}
}

func (m wizardModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		m.aborted = true
		return m, tea.Quit
	}

	formModel, cmd := m.form.Update(msg)
	if form, ok := formModel.(*huh.Form); ok {
		m.form = form
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m, tea.Quit
	case huh.StateAborted:
		m.aborted = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m wizardModel) View() string {
	if m.form.State != huh.StateNormal {
		return ""
	}
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true).Render("binwriter wizard")
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("enter: next  shift+tab: back  esc/ctrl+c: quit")
	return title + "\n\n" + m.form.View() + "\n" + footer
}

// RunWizard runs the interactive form and returns the collected answers.
func RunWizard(defaults WizardOptions) (WizardOptions, error) {
	program := tea.NewProgram(newWizardModel(defaults), tea.WithOutput(os.Stderr))
	final, err := program.Run()
	if err != nil {
		return WizardOptions{}, fmt.Errorf("run wizard: %w", err)
	}
	model, ok := final.(wizardModel)
	if !ok || model.aborted || model.form.State != huh.StateCompleted {
		return WizardOptions{}, ErrWizardAborted
	}
	return wizardOptionsFromForm(model.form), nil
}
