// Package bridge implements the six tracker-to-Nuke actions an artist runs
// from the tracking application: export all tracks, export selected tracks,
// export pattern corners, export a plane track, copy lens distortion and
// paste lens distortion.
//
// Each action gathers data through the scene package, renders it with the
// nuke package, hands the script to a clipboard sink and returns a Result
// whose Report carries the message shown to the artist. Domain outcomes such
// as an empty selection are reports, not errors; errors are reserved for
// I/O failures of the sink, source or scene document.
package bridge
