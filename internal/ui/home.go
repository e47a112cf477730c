package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tturner/binwriter/internal/config"
	"github.com/tturner/binwriter/internal/gen"
	"github.com/tturner/binwriter/internal/progress"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	frameStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
)

// Summary is what the console summary shows about a run.
type Summary struct {
	Filename string
	Size     int64
	Mode     string
	Profile  string
	Preview  string
	DryRun   bool
	Manifest string
}

// RenderSummary renders the Filename / Size / Mode panel printed before writing.
func RenderSummary(s Summary) string {
	title := "binwriter"
	if s.DryRun {
		title += " (dry run)"
	}
	lines := []string{
		titleStyle.Render(title),
		fmt.Sprintf("%s %s", sectionStyle.Render("Filename:"), displayFilename(s.Filename)),
		fmt.Sprintf("%s %d %s", sectionStyle.Render("Size:"), s.Size, metaStyle.Render("("+progress.FormatBytes(s.Size)+")")),
		fmt.Sprintf("%s %s", sectionStyle.Render("Mode:"), s.Mode),
	}
	if s.Profile != "" {
		lines = append(lines, fmt.Sprintf("%s %s", sectionStyle.Render("Profile:"), s.Profile))
	}
	if s.Preview != "" {
		lines = append(lines, fmt.Sprintf("%s %s", sectionStyle.Render("Preview:"), s.Preview))
	}
	if s.Manifest != "" {
		lines = append(lines, fmt.Sprintf("%s %s", sectionStyle.Render("Manifest:"), s.Manifest))
	}
	return frameStyle.Render(strings.Join(lines, "\n"))
}

// RenderProfiles lists configured profiles.
func RenderProfiles(configPath string, profiles []config.Profile) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("binwriter profiles | %s", configPath)),
		"",
	}
	if len(profiles) == 0 {
		lines = append(lines, metaStyle.Render("  (no profiles yet; run 'binwriter profiles --init')"))
		return frameStyle.Render(strings.Join(lines, "\n"))
	}

	nameWidth := 0
	for _, profile := range profiles {
		if len(profile.Name) > nameWidth {
			nameWidth = len(profile.Name)
		}
	}
	for _, profile := range profiles {
		line := fmt.Sprintf("  %-*s  %-8s %s", nameWidth, profile.Name, profileMode(profile.Spec), profileSize(profile.Spec))
		lines = append(lines, sectionStyle.Render(line))
		if profile.Description != "" {
			lines = append(lines, metaStyle.Render("    "+profile.Description))
		}
	}
	return frameStyle.Render(strings.Join(lines, "\n"))
}

func profileMode(spec gen.Spec) string {
	modes := spec.Modes()
	if len(modes) != 1 {
		return "invalid"
	}
	return modes[0].String()
}

func profileSize(spec gen.Spec) string {
	if spec.Size == nil {
		return "-"
	}
	return progress.FormatBytes(*spec.Size)
}

func displayFilename(name string) string {
	if name == "-" {
		return "(stdout)"
	}
	return name
}
