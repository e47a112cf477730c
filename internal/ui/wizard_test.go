package ui

import (
	"strings"
	"testing"

	"github.com/tturner/binwriter/internal/config"
	"github.com/tturner/binwriter/internal/gen"
)

func TestBuildWizardSpecFill(t *testing.T) {
	spec, err := BuildWizardSpec(WizardOptions{Mode: "fill", Size: "1KiB", Fill: "FF", Pattern: "AB"})
	if err != nil {
		t.Fatalf("BuildWizardSpec failed: %v", err)
	}
	if spec.Size == nil || *spec.Size != 1024 {
		t.Fatalf("expected size 1024, got %v", spec.Size)
	}
	if spec.Fill == nil || *spec.Fill != "FF" {
		t.Fatalf("expected fill FF, got %v", spec.Fill)
	}
	if spec.Pattern != nil {
		t.Fatalf("pattern answer from another mode should be dropped")
	}
}

func TestBuildWizardSpecRandomSeed(t *testing.T) {
	spec, err := BuildWizardSpec(WizardOptions{Mode: "random", Size: "16", Seed: "42"})
	if err != nil {
		t.Fatalf("BuildWizardSpec failed: %v", err)
	}
	if !spec.Random || spec.Seed == nil || *spec.Seed != 42 {
		t.Fatalf("unexpected random spec: %+v", spec)
	}
}

func TestBuildWizardSpecIntegers(t *testing.T) {
	spec, err := BuildWizardSpec(WizardOptions{Mode: "integers", Integers: "1, 258", Width: "2", Endianness: "big", Size: "bogus"})
	if err != nil {
		t.Fatalf("BuildWizardSpec failed: %v", err)
	}
	if spec.Size != nil {
		t.Fatalf("integers mode should not carry a size")
	}
	req, err := gen.Validate(spec, gen.Limits{})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	data, err := gen.NewEngine().Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got := gen.EncodeHex(data, 0); got != "00010102" {
		t.Fatalf("unexpected bytes %s", got)
	}
}

func TestBuildWizardSpecErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    WizardOptions
		wantErr string
	}{
		{name: "unknown mode", opts: WizardOptions{Mode: "zeros"}, wantErr: "unsupported mode"},
		{name: "bad size", opts: WizardOptions{Mode: "pattern", Size: "ten", Pattern: "AB"}, wantErr: "size:"},
		{name: "bad seed", opts: WizardOptions{Mode: "random", Size: "4", Seed: "x"}, wantErr: "seed:"},
		{name: "bad width", opts: WizardOptions{Mode: "integers", Integers: "1", Width: "two"}, wantErr: "width:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildWizardSpec(tt.opts)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error: got %q want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBuildWizardForm(t *testing.T) {
	form := buildWizardForm(WizardOptions{Mode: "hex", Output: "out.bin"})
	if form == nil {
		t.Fatalf("expected form")
	}
}

func TestWizardFieldValidators(t *testing.T) {
	if err := validateSize("4KiB"); err != nil {
		t.Fatalf("validateSize(4KiB): %v", err)
	}
	if err := validateSize(""); err == nil {
		t.Fatalf("expected error for empty size")
	}
	if err := validatePattern("DE AD"); err != nil {
		t.Fatalf("validatePattern: %v", err)
	}
	if err := validatePattern("XYZ"); err == nil {
		t.Fatalf("expected error for bad pattern")
	}
}

func TestHexPreview(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if got := HexPreview(data, 8); got != "DE AD BE EF" {
		t.Fatalf("HexPreview full: %q", got)
	}
	if got := HexPreview(data, 2); got != "DE AD ..." {
		t.Fatalf("HexPreview truncated: %q", got)
	}
	if got := HexPreview(data, 0); got != "" {
		t.Fatalf("HexPreview disabled: %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(Summary{Filename: "-", Size: 2048, Mode: "Fill byte FF", DryRun: true})
	for _, want := range []string{"Filename:", "(stdout)", "2048", "2.0KiB", "Fill byte FF", "dry run"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderProfiles(t *testing.T) {
	size := int64(1024)
	fill := "FF"
	out := RenderProfiles("binwriter.yaml", []config.Profile{
		{Name: "erased", Description: "blank flash", Spec: gen.Spec{Size: &size, Fill: &fill}},
	})
	for _, want := range []string{"erased", "fill", "1.0KiB", "blank flash"} {
		if !strings.Contains(out, want) {
			t.Fatalf("profiles missing %q:\n%s", want, out)
		}
	}
	if empty := RenderProfiles("binwriter.yaml", nil); !strings.Contains(empty, "profiles --init") {
		t.Fatalf("empty listing should point at --init:\n%s", empty)
	}
}
