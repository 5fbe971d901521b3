// Package fileutil holds the small file helpers used when scripts and scene
// documents are written to disk.
package fileutil
