// Package main hosts the tracker2nuke CLI entrypoint and command graph.
//
// The Cobra command tree loads scene documents, runs the export and lens
// distortion actions, and delivers the resulting Nuke scripts to stdout, a
// file or the system clipboard. Scripts own stdout; status lines and logs go
// to stderr so output can be piped straight into Nuke.
package main
