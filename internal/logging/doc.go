// Package logging assembles structured slog loggers for tracker2nuke.
//
// Scripts are written to stdout, so every handler built here targets stderr
// and, when enabled in config, an append-only JSON log file. The console
// handler renders one compact line per record with the component promoted in
// front of the message. A no-op logger is provided for tests and wiring code
// that cannot fail.
package logging
