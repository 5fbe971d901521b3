// Package clipboard moves generated Nuke scripts to and from the places an
// artist pastes them: the system clipboard, a file, or a stream.
//
// The host application's clipboard is the canonical destination. File and
// writer sinks exist so the CLI stays usable over SSH and in pipelines where
// no clipboard provider is installed.
package clipboard
