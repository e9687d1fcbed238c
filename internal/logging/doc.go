// Package logging provides structured logging with per-module log levels.
//
// Console output always goes to stderr: stdout carries the generated
// table and must stay byte-exact. When Journal is set and journald is
// reachable, records are also sent to the systemd journal.
//
// Initialize once at startup:
//
//	logging.Initialize(logging.Config{
//		Level:  "info",
//		Format: "text",
//		Modules: map[string]string{
//			"matrix": "debug",
//		},
//	})
//
// Then get a module logger:
//
//	logger := logging.GetLogger("matrix")
//	logger.Debug("Generated table", "height", 32, "width", 8)
//
// Example TOML configuration:
//
//	[logging]
//	level = "info"
//	format = "text"
//	journal = false
//
//	[logging.modules]
//	matrix = "debug"
//	config = "warn"
//
// Journal entries are tagged with SyslogIdentifier:
//
//	journalctl -t ledlut MODULE=config
package logging
