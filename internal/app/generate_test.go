package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tturner/binwriter/internal/artifact"
	"github.com/tturner/binwriter/internal/config"
	"github.com/tturner/binwriter/internal/gen"
)

func ptr[T any](v T) *T { return &v }

// baseOptions isolates a run from any binwriter.yaml, .env or BINWRITER_*
// variables in the test environment.
func baseOptions(t *testing.T) GenerateOptions {
	t.Helper()
	for _, key := range []string{config.EnvMaxSize, config.EnvChunkSize, config.EnvLogLevel, config.EnvLogFormat} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "binwriter.yaml")
	if err := os.WriteFile(cfgPath, []byte("max_size: 1048576\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return GenerateOptions{
		ConfigPath: cfgPath,
		EnvPath:    filepath.Join(dir, "missing.env"),
		Quiet:      true,
		Stdout:     io.Discard,
		Stderr:     io.Discard,
	}
}

func TestRunGenerateWritesFile(t *testing.T) {
	tests := []struct {
		name string
		spec gen.Spec
		want []byte
	}{
		{name: "fill", spec: gen.Spec{Size: ptr(int64(4)), Fill: ptr("FF")}, want: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "pattern", spec: gen.Spec{Size: ptr(int64(5)), Pattern: ptr("DEADBEEF")}, want: []byte{0xDE, 0xAD, 0xBE, 0xEF, 0xDE}},
		{name: "hex", spec: gen.Spec{Hex: ptr("de ad")}, want: []byte{0xDE, 0xAD}},
		{name: "integers", spec: gen.Spec{Integers: ptr("1,258"), Width: ptr(2), Endianness: ptr("big")}, want: []byte{0x00, 0x01, 0x01, 0x02}},
		{name: "integers use config defaults", spec: gen.Spec{Integers: ptr("1")}, want: []byte{0x01, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOptions(t)
			opts.Filename = filepath.Join(t.TempDir(), "out.bin")
			opts.Spec = tt.spec
			if err := RunGenerate(opts); err != nil {
				t.Fatalf("RunGenerate failed: %v", err)
			}
			got, err := os.ReadFile(opts.Filename)
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("output: got % X want % X", got, tt.want)
			}
		})
	}
}

func TestRunGenerateRandomUsesEntropy(t *testing.T) {
	opts := baseOptions(t)
	opts.Filename = filepath.Join(t.TempDir(), "random.bin")
	opts.Spec = gen.Spec{Size: ptr(int64(3)), Random: true}
	opts.Entropy = bytes.NewReader([]byte{1, 2, 3})
	if err := RunGenerate(opts); err != nil {
		t.Fatalf("RunGenerate failed: %v", err)
	}
	got, _ := os.ReadFile(opts.Filename)
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("output: got % X", got)
	}
}

func TestRunGenerateStdout(t *testing.T) {
	var stdout bytes.Buffer
	opts := baseOptions(t)
	opts.Filename = "-"
	opts.Stdout = &stdout
	opts.Spec = gen.Spec{Hex: ptr("CAFE")}
	if err := RunGenerate(opts); err != nil {
		t.Fatalf("RunGenerate failed: %v", err)
	}
	if !bytes.Equal(stdout.Bytes(), []byte{0xCA, 0xFE}) {
		t.Fatalf("stdout: got % X", stdout.Bytes())
	}
}

func TestRunGenerateErrorsLeaveNoFile(t *testing.T) {
	tests := []struct {
		name   string
		spec   gen.Spec
		target error
	}{
		{name: "mode conflict", spec: gen.Spec{Size: ptr(int64(4)), Fill: ptr("00"), Pattern: ptr("AB")}, target: gen.ErrModeConflict},
		{name: "no mode", spec: gen.Spec{Size: ptr(int64(4))}, target: gen.ErrModeMissing},
		{name: "odd hex", spec: gen.Spec{Hex: ptr("ABC")}, target: gen.ErrOddLength},
		{name: "over limit", spec: gen.Spec{Size: ptr(int64(2 << 20)), Fill: ptr("00")}, target: gen.ErrSizeLimit},
		{name: "out of range", spec: gen.Spec{Integers: ptr("256"), Width: ptr(1)}, target: gen.ErrIntegerOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOptions(t)
			opts.Filename = filepath.Join(t.TempDir(), "out.bin")
			opts.Spec = tt.spec
			err := RunGenerate(opts)
			if !errors.Is(err, tt.target) {
				t.Fatalf("error: got %v want %v", err, tt.target)
			}
			if _, statErr := os.Stat(opts.Filename); !os.IsNotExist(statErr) {
				t.Fatalf("output file should not exist, stat err: %v", statErr)
			}
		})
	}
}

func TestRunGenerateMaxSizeOverride(t *testing.T) {
	opts := baseOptions(t)
	opts.Filename = filepath.Join(t.TempDir(), "big.bin")
	opts.Spec = gen.Spec{Size: ptr(int64(2 << 20)), Fill: ptr("00")}
	opts.MaxSize = "0"
	opts.NoProgress = true
	if err := RunGenerate(opts); err != nil {
		t.Fatalf("RunGenerate failed: %v", err)
	}
	info, err := os.Stat(opts.Filename)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() != 2<<20 {
		t.Fatalf("size: got %d", info.Size())
	}
}

func TestRunGenerateProfileMerge(t *testing.T) {
	opts := baseOptions(t)
	dir := t.TempDir()
	cfg := `max_size: 4096
profiles:
  - name: ones
    output: ` + filepath.Join(dir, "profile.bin") + `
    spec:
      size: 8
      fill: "01"
`
	if err := os.WriteFile(opts.ConfigPath, []byte(cfg), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts.Profile = "ones"
	opts.Spec = gen.Spec{Size: ptr(int64(2))}
	if err := RunGenerate(opts); err != nil {
		t.Fatalf("RunGenerate failed: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "profile.bin"))
	if err != nil {
		t.Fatalf("read profile output: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x01}) {
		t.Fatalf("output: got % X", got)
	}

	opts.Profile = "missing"
	if err := RunGenerate(opts); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected unknown profile error, got %v", err)
	}
}

func TestRunGenerateRequiresFilename(t *testing.T) {
	opts := baseOptions(t)
	opts.Spec = gen.Spec{Hex: ptr("00")}
	err := RunGenerate(opts)
	if err == nil || !strings.Contains(err.Error(), "required flag --filename not set") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunGenerateDryRun(t *testing.T) {
	var stderr bytes.Buffer
	opts := baseOptions(t)
	opts.Quiet = false
	opts.Stderr = &stderr
	opts.DryRun = true
	opts.Filename = filepath.Join(t.TempDir(), "dry.bin")
	opts.Spec = gen.Spec{Size: ptr(int64(2)), Fill: ptr("AA")}
	if err := RunGenerate(opts); err != nil {
		t.Fatalf("RunGenerate failed: %v", err)
	}
	if _, err := os.Stat(opts.Filename); !os.IsNotExist(err) {
		t.Fatalf("dry run should not write output")
	}
	for _, want := range []string{"Filename:", "Fill byte AA", "AA AA"} {
		if !strings.Contains(stderr.String(), want) {
			t.Fatalf("summary missing %q:\n%s", want, stderr.String())
		}
	}
}

func TestRunGenerateManifest(t *testing.T) {
	dir := t.TempDir()
	opts := baseOptions(t)
	opts.Filename = filepath.Join(dir, "out.bin")
	opts.Manifest = filepath.Join(dir, "meta", "manifest.json")
	opts.Spec = gen.Spec{Hex: ptr("0102")}
	if err := RunGenerate(opts); err != nil {
		t.Fatalf("RunGenerate failed: %v", err)
	}

	data, err := os.ReadFile(opts.Manifest)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var meta artifact.RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if meta.Mode != "hex" || meta.Size != 2 || meta.Output != opts.Filename || meta.ExitCode != 0 {
		t.Fatalf("unexpected manifest: %+v", meta)
	}

	opts.Spec = gen.Spec{Hex: ptr("0")}
	if err := RunGenerate(opts); err == nil {
		t.Fatalf("expected error")
	}
	data, _ = os.ReadFile(opts.Manifest)
	meta = artifact.RunMetadata{}
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if meta.ExitCode != 1 || meta.Error == "" {
		t.Fatalf("failed run should be recorded: %+v", meta)
	}
}

func TestRunProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binwriter.yaml")

	var out bytes.Buffer
	if err := RunProfiles(ProfilesOptions{ConfigPath: path, Init: true, Stdout: &out}); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := RunProfiles(ProfilesOptions{ConfigPath: path, Init: true, Stdout: &out}); err == nil {
		t.Fatalf("expected error when config exists")
	}

	out.Reset()
	if err := RunProfiles(ProfilesOptions{ConfigPath: path, Stdout: &out}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "deadbeef-1k") {
		t.Fatalf("listing missing example profile:\n%s", out.String())
	}
}

func TestRunGenerateJSONLogWithReadBack(t *testing.T) {
	dir := t.TempDir()
	opts := baseOptions(t)
	if err := os.WriteFile(opts.ConfigPath, []byte("log_format: json\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	opts.Filename = filepath.Join(dir, "ints.bin")
	opts.LogFile = filepath.Join(dir, "run.log")
	opts.Debug = true
	opts.Spec = gen.Spec{Integers: ptr("010, 0x0102"), Width: ptr(2), Endianness: ptr("big")}
	if err := RunGenerate(opts); err != nil {
		t.Fatalf("RunGenerate failed: %v", err)
	}

	got, _ := os.ReadFile(opts.Filename)
	if want := []byte{0x00, 0x0A, 0x01, 0x02}; !bytes.Equal(got, want) {
		t.Fatalf("output: got % X want % X", got, want)
	}

	logData, err := os.ReadFile(opts.LogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(logData)), "\n")
	for _, line := range lines {
		var entry map[string]string
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
	}
	if !strings.Contains(string(logData), "Read back: 10, 258") {
		t.Fatalf("log missing read back:\n%s", logData)
	}

	opts.LogFormat = "yaml"
	if err := RunGenerate(opts); err == nil {
		t.Fatalf("expected error for unknown log format")
	}
}
