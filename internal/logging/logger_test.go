package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// reset clears package state and captures console output in a buffer.
func reset(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer

	mutex.Lock()
	prevOutput := output
	moduleLoggers = make(map[string]*slog.Logger)
	moduleHandlers = make(map[string]*swapHandler)
	moduleLevelVars = make(map[string]*slog.LevelVar)
	isInitialized = false
	globalConfig = Config{}
	output = &buf
	mutex.Unlock()

	t.Cleanup(func() {
		mutex.Lock()
		output = prevOutput
		moduleLoggers = make(map[string]*slog.Logger)
		moduleHandlers = make(map[string]*swapHandler)
		moduleLevelVars = make(map[string]*slog.LevelVar)
		isInitialized = false
		mutex.Unlock()
	})
	return &buf
}

func TestModuleLevelOverride(t *testing.T) {
	reset(t)

	Initialize(Config{
		Level:  "info",
		Format: "text",
		Modules: map[string]string{
			"matrix": "debug",
			"config": "warn",
		},
	})

	tests := []struct {
		module    string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"matrix", true, true, true},
		{"config", false, false, true},
		{"other", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			handler := GetLogger(tt.module).Handler()
			ctx := context.Background()

			if got := handler.Enabled(ctx, slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("Debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if got := handler.Enabled(ctx, slog.LevelInfo); got != tt.wantInfo {
				t.Errorf("Info enabled = %v, want %v", got, tt.wantInfo)
			}
			if got := handler.Enabled(ctx, slog.LevelWarn); got != tt.wantWarn {
				t.Errorf("Warn enabled = %v, want %v", got, tt.wantWarn)
			}
		})
	}
}

func TestLoggerBeforeInitializeIsReconfigured(t *testing.T) {
	buf := reset(t)

	early := GetLogger("matrix")
	if early.Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should be disabled before Initialize")
	}

	Initialize(Config{Level: "debug", Format: "text"})

	logger := GetLogger("matrix")
	logger.Debug("generated", "height", 32)

	if !strings.Contains(buf.String(), "generated") {
		t.Errorf("debug record missing after Initialize: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "module=matrix") {
		t.Errorf("module attribute missing: %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	buf := reset(t)

	Initialize(Config{Level: "info", Format: "json"})
	GetLogger("config").Info("loaded", "path", "ledlut.toml")

	out := buf.String()
	if !strings.Contains(out, `"msg":"loaded"`) || !strings.Contains(out, `"module":"config"`) {
		t.Errorf("unexpected JSON output: %s", out)
	}
}

func TestLoggerBeforeInitializeGetsFormat(t *testing.T) {
	buf := reset(t)

	early := GetLogger("config")
	Initialize(Config{Level: "info", Format: "json"})

	if GetLogger("config") != early {
		t.Error("GetLogger returned a different pointer after Initialize")
	}

	early.Info("loaded", "path", "ledlut.toml")
	out := buf.String()
	if !strings.Contains(out, `"msg":"loaded"`) || !strings.Contains(out, `"module":"config"`) {
		t.Errorf("early logger did not switch to JSON: %s", out)
	}
	if strings.Count(out, `"module"`) != 1 {
		t.Errorf("module attribute repeated: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want *slog.Level
	}{
		{"debug", levelPtr(slog.LevelDebug)},
		{"INFO", levelPtr(slog.LevelInfo)},
		{"warning", levelPtr(slog.LevelWarn)},
		{"error", levelPtr(slog.LevelError)},
		{"verbose", nil},
	}

	for _, tt := range tests {
		got := parseLevel(tt.in)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("parseLevel(%q) = %v, want nil", tt.in, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, *tt.want)
		}
	}
}

func TestMultiHandlerFanOut(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer
	debugHandler := slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	infoHandler := slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo})

	logger := slog.New(NewMultiHandler(debugHandler, infoHandler)).With("module", "matrix")
	logger.Debug("debug only")
	logger.Info("both")

	if !strings.Contains(debugBuf.String(), "debug only") || !strings.Contains(debugBuf.String(), "both") {
		t.Errorf("debug handler output = %q", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), "debug only") {
		t.Errorf("info handler received debug record: %q", infoBuf.String())
	}
	if !strings.Contains(infoBuf.String(), "module=matrix") {
		t.Errorf("info handler missing attrs: %q", infoBuf.String())
	}
}

func TestJournalHandlerEnabled(t *testing.T) {
	levelVar := &slog.LevelVar{}
	levelVar.Set(slog.LevelWarn)
	h := NewJournalHandler(levelVar)

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be disabled at warn level")
	}
	levelVar.Set(slog.LevelDebug)
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("handler should follow LevelVar changes")
	}
}

func TestAddAttrToFields(t *testing.T) {
	fields := make(map[string]string)

	addAttrToFields(fields, slog.String("module", "matrix"), nil)
	addAttrToFields(fields, slog.Int("height", 32), []string{"layout"})
	addAttrToFields(fields, slog.Bool("progressive", false), nil)
	addAttrToFields(fields, slog.Duration("debounce", 500*time.Millisecond), nil)
	addAttrToFields(fields, slog.Group("wiring", slog.String("start", "top-right")), nil)
	addAttrToFields(fields, slog.Attr{}, nil)

	want := map[string]string{
		"MODULE":        "matrix",
		"LAYOUT_HEIGHT": "32",
		"PROGRESSIVE":   "false",
		"DEBOUNCE":      "500ms",
		"WIRING_START":  "top-right",
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("fields[%q] = %q, want %q", k, fields[k], v)
		}
	}
	if len(fields) != len(want) {
		t.Errorf("got %d fields, want %d: %v", len(fields), len(want), fields)
	}
}

func TestAddAttrToFields_NestedGroupUnderPrefix(t *testing.T) {
	fields := make(map[string]string)
	addAttrToFields(fields, slog.Group("wiring", slog.String("start", "top-right")), []string{"layout"})

	if got := fields["LAYOUT_WIRING_START"]; got != "top-right" {
		t.Errorf("fields = %v, want LAYOUT_WIRING_START=top-right", fields)
	}
}

func levelPtr(l slog.Level) *slog.Level {
	return &l
}
