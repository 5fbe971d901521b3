// Package scene models the tracking application's state that the exporter
// reads from and writes back to.
//
// A scene document is a JSON or YAML description of one movie clip: its size
// and frame offset, the tracking camera, and the tracking objects with their
// point and plane tracks. Marker coordinates are stored normalized to 0..1 as
// the tracking application keeps them; the Collect* methods convert them to
// footage pixels and global frame numbers before handing them to the
// tracking package. Update serializes read-modify-write cycles on a document
// with an advisory file lock.
package scene
