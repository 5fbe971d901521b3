// Package history records every script tracker2nuke produces in a small
// SQLite database so artists can recover a paste they overwrote.
//
// The store lives at <data_dir>/history.db, applies embedded migrations on
// open, and identifies entries with random UUIDs that can be addressed by
// any unique prefix. Recording is best effort from the caller's point of
// view: a failed write never changes the generated script.
package history
