package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	moduleLoggers   = make(map[string]*slog.Logger)
	moduleHandlers  = make(map[string]*swapHandler)
	moduleLevelVars = make(map[string]*slog.LevelVar)
	globalConfig    Config
	globalLevelVar  = &slog.LevelVar{}
	isInitialized   bool
	output          io.Writer = os.Stderr
	mutex           sync.RWMutex
)

// Config represents logging configuration.
type Config struct {
	Level   string            `toml:"level"`
	Format  string            `toml:"format"`
	Journal bool              `toml:"journal"`
	Modules map[string]string `toml:"modules"`
}

// Initialize sets up the logging system.
func Initialize(config Config) {
	mutex.Lock()
	defer mutex.Unlock()

	globalConfig = config
	isInitialized = true

	globalLevel := parseLevel(config.Level)
	if globalLevel == nil {
		defaultLevel := slog.LevelInfo
		globalLevel = &defaultLevel
	}
	globalLevelVar.Set(*globalLevel)

	// Loggers handed out before Initialize keep their pointers. Their
	// handler is swapped for the configured chain. Loggers derived from
	// them with With or WithGroup keep the chain they were derived from.
	for module, levelVar := range moduleLevelVars {
		levelVar.Set(moduleLevel(module))
		moduleHandlers[module].set(moduleChain(config, module, levelVar))
	}

	slog.SetDefault(slog.New(createHandler(config, globalLevelVar)))
}

// GetLogger returns a logger for the specified module, creating it if needed.
func GetLogger(module string) *slog.Logger {
	mutex.RLock()
	if logger, exists := moduleLoggers[module]; exists {
		mutex.RUnlock()
		return logger
	}
	mutex.RUnlock()

	mutex.Lock()
	defer mutex.Unlock()

	if logger, exists := moduleLoggers[module]; exists {
		return logger
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(moduleLevel(module))

	cfg := globalConfig
	if !isInitialized {
		cfg = Config{Format: "text"}
	}

	handler := &swapHandler{}
	handler.set(moduleChain(cfg, module, levelVar))

	logger := slog.New(handler)
	moduleLoggers[module] = logger
	moduleHandlers[module] = handler
	moduleLevelVars[module] = levelVar
	return logger
}

// moduleChain is the handler chain for module, tagged with its name.
func moduleChain(config Config, module string, level slog.Leveler) slog.Handler {
	return createHandler(config, level).WithAttrs([]slog.Attr{slog.String("module", module)})
}

// swapHandler forwards to a handler that Initialize can replace.
type swapHandler struct {
	current atomic.Pointer[slog.Handler]
}

func (h *swapHandler) set(next slog.Handler) {
	h.current.Store(&next)
}

func (h *swapHandler) load() slog.Handler {
	return *h.current.Load()
}

func (h *swapHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.load().Enabled(ctx, level)
}

func (h *swapHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.load().Handle(ctx, r)
}

func (h *swapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.load().WithAttrs(attrs)
}

func (h *swapHandler) WithGroup(name string) slog.Handler {
	return h.load().WithGroup(name)
}

// moduleLevel resolves the effective level for module. Callers hold mutex.
func moduleLevel(module string) slog.Level {
	if !isInitialized {
		return slog.LevelInfo
	}
	level := slog.LevelInfo
	if parsed := parseLevel(globalConfig.Level); parsed != nil {
		level = *parsed
	}
	if levelStr, exists := globalConfig.Modules[module]; exists {
		if parsed := parseLevel(levelStr); parsed != nil {
			level = *parsed
		}
	}
	return level
}

// createHandler builds the handler chain: console (stderr, keeping stdout
// free for generated output) plus the systemd journal when requested and
// reachable.
func createHandler(config Config, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	var console slog.Handler
	if config.Format == "json" {
		console = slog.NewJSONHandler(output, opts)
	} else {
		console = slog.NewTextHandler(output, opts)
	}

	if config.Journal && IsJournalAvailable() {
		return NewMultiHandler(console, NewJournalHandler(level))
	}
	return console
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) *slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		l := slog.LevelDebug
		return &l
	case "info":
		l := slog.LevelInfo
		return &l
	case "warn", "warning":
		l := slog.LevelWarn
		return &l
	case "error":
		l := slog.LevelError
		return &l
	default:
		return nil
	}
}
