package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// testOptions mirrors the shape of the CLI options struct.
type testOptions struct {
	Config string `help:"Config file path"`

	Height      int      `toml:"matrix.height" env:"MATRIX_HEIGHT"`
	Width       int      `toml:"matrix.width" env:"MATRIX_WIDTH"`
	Start       string   `toml:"matrix.start" env:"MATRIX_START"`
	Progressive bool     `toml:"matrix.progressive" env:"MATRIX_PROGRESSIVE"`
	Formats     []string `toml:"output.formats" env:"OUTPUT_FORMATS"`

	LoggingLevel string `toml:"logging.level" env:"LOGGING_LEVEL"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledlut.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigFromTOML(t *testing.T) {
	path := writeConfig(t, `
[matrix]
height = 16
width = 16
start = "top-left"
progressive = true

[output]
formats = ["c", "go"]

[logging]
level = "debug"
`)

	opts := &testOptions{Config: path, Height: 32, Width: 8, Start: "top-right"}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.Height != 16 || opts.Width != 16 {
		t.Errorf("got %dx%d, want 16x16", opts.Height, opts.Width)
	}
	if opts.Start != "top-left" {
		t.Errorf("Start = %q, want top-left", opts.Start)
	}
	if !opts.Progressive {
		t.Error("Progressive = false, want true")
	}
	if want := []string{"c", "go"}; !reflect.DeepEqual(opts.Formats, want) {
		t.Errorf("Formats = %v, want %v", opts.Formats, want)
	}
	if opts.LoggingLevel != "debug" {
		t.Errorf("LoggingLevel = %q, want debug", opts.LoggingLevel)
	}
}

func TestLoadConfigFromEnvVars(t *testing.T) {
	t.Setenv("LEDLUT_MATRIX_HEIGHT", "4")
	t.Setenv("LEDLUT_MATRIX_PROGRESSIVE", "true")
	t.Setenv("LEDLUT_OUTPUT_FORMATS", " c , toml ")

	opts := &testOptions{Height: 32, Width: 8}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.Height != 4 {
		t.Errorf("Height = %d, want 4", opts.Height)
	}
	if opts.Width != 8 {
		t.Errorf("Width = %d, want default 8", opts.Width)
	}
	if !opts.Progressive {
		t.Error("Progressive = false, want true")
	}
	if want := []string{"c", "toml"}; !reflect.DeepEqual(opts.Formats, want) {
		t.Errorf("Formats = %v, want %v", opts.Formats, want)
	}
}

func TestLoadConfigEnvOverridesTOML(t *testing.T) {
	path := writeConfig(t, "[matrix]\nheight = 16\nwidth = 4\n")
	t.Setenv("LEDLUT_MATRIX_HEIGHT", "64")

	opts := &testOptions{Config: path}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.Height != 64 {
		t.Errorf("Height = %d, want 64 from env", opts.Height)
	}
	if opts.Width != 4 {
		t.Errorf("Width = %d, want 4 from TOML", opts.Width)
	}
}

func TestLoadConfigCLIFlagsWin(t *testing.T) {
	path := writeConfig(t, "[matrix]\nheight = 16\nwidth = 4\n")
	t.Setenv("LEDLUT_MATRIX_WIDTH", "2")

	opts := &testOptions{Config: path}
	cmd := &cobra.Command{Use: "ledlut"}
	cmd.Flags().IntVar(&opts.Height, "height", 32, "")
	cmd.Flags().IntVar(&opts.Width, "width", 8, "")
	if err := cmd.Flags().Parse([]string{"--height", "10", "--width", "3"}); err != nil {
		t.Fatal(err)
	}

	if err := LoadConfig(opts, cmd); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.Height != 10 || opts.Width != 3 {
		t.Errorf("got %dx%d, want CLI values 10x3", opts.Height, opts.Width)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	opts := &testOptions{Config: filepath.Join(t.TempDir(), "missing.toml"), Height: 32}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig should not fail for missing file: %v", err)
	}
	if opts.Height != 32 {
		t.Errorf("Height = %d, want untouched default 32", opts.Height)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	opts := &testOptions{Height: 32}
	cmd := &cobra.Command{Use: "ledlut"}
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "ledlut.toml", "")
	missing := filepath.Join(t.TempDir(), "panel.toml")
	if err := cmd.PersistentFlags().Parse([]string{"-c", missing}); err != nil {
		t.Fatal(err)
	}

	err := LoadConfig(opts, cmd)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("LoadConfig error = %v, want fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error %q does not name the missing path", err)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := writeConfig(t, "[matrix\ninvalid toml syntax\n")
	if err := LoadConfig(&testOptions{Config: path}, nil); err == nil {
		t.Fatal("LoadConfig should fail with invalid TOML")
	}
}

func TestLoadConfigTypeMismatch(t *testing.T) {
	path := writeConfig(t, "[matrix]\nheight = \"tall\"\n")
	err := LoadConfig(&testOptions{Config: path}, nil)
	if err == nil || !strings.Contains(err.Error(), "matrix.height") {
		t.Fatalf("LoadConfig error = %v, want mention of matrix.height", err)
	}
}

func TestLoadConfigBadEnvValue(t *testing.T) {
	t.Setenv("LEDLUT_MATRIX_WIDTH", "eight")
	err := LoadConfig(&testOptions{}, nil)
	if err == nil || !strings.Contains(err.Error(), "LEDLUT_MATRIX_WIDTH") {
		t.Fatalf("LoadConfig error = %v, want mention of LEDLUT_MATRIX_WIDTH", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	shared := filepath.Join(dir, ".env")
	if err := os.WriteFile(shared, []byte("LEDLUT_MATRIX_HEIGHT=12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// t.Setenv registers cleanup; unset so godotenv can populate it
	t.Setenv("LEDLUT_MATRIX_HEIGHT", "")
	os.Unsetenv("LEDLUT_MATRIX_HEIGHT")

	loaded, err := LoadDotEnv(local, shared)
	if err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if loaded != shared {
		t.Errorf("loaded %q, want %q", loaded, shared)
	}
	if got := os.Getenv("LEDLUT_MATRIX_HEIGHT"); got != "12" {
		t.Errorf("LEDLUT_MATRIX_HEIGHT = %q, want 12", got)
	}

	opts := &testOptions{}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatal(err)
	}
	if opts.Height != 12 {
		t.Errorf("Height = %d, want 12 from .env", opts.Height)
	}
}

func TestLoadDotEnvNoFiles(t *testing.T) {
	loaded, err := LoadDotEnv(filepath.Join(t.TempDir(), ".env"))
	if err != nil || loaded != "" {
		t.Errorf("LoadDotEnv() = %q, %v; want empty, nil", loaded, err)
	}
}

func TestGetNestedValue(t *testing.T) {
	data := map[string]any{
		"matrix": map[string]any{
			"wiring": map[string]any{
				"start": "top-right",
			},
			"width": int64(8),
		},
		"root": "root_value",
	}

	tests := []struct {
		path     string
		expected any
	}{
		{"root", "root_value"},
		{"matrix.width", int64(8)},
		{"matrix.wiring.start", "top-right"},
		{"nonexistent", nil},
		{"matrix.nonexistent", nil},
		{"root.child", nil},
	}

	for _, test := range tests {
		result := getNestedValue(data, test.path)
		if result != test.expected {
			t.Errorf("getNestedValue(%q) = %v, expected %v", test.path, result, test.expected)
		}
	}
}

func TestFieldNameToFlag(t *testing.T) {
	tests := map[string]string{
		"Width":        "width",
		"LoggingLevel": "logging-level",
		"Config":       "config",
	}
	for in, want := range tests {
		if got := fieldNameToFlag(in); got != want {
			t.Errorf("fieldNameToFlag(%q) = %q, want %q", in, got, want)
		}
	}
}
