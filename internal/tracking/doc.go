// Package tracking holds the per-frame marker data model shared by every
// export path.
//
// A Track maps integer frame numbers to pixel-space points; a Group is one
// ordered set of tracks that becomes a single Tracker4 node downstream.
// Pattern-corner and plane-track exports reshape a tracked quadrilateral into
// four ordinary tracks through ExpandQuad so the serializer only ever sees
// one input shape.
package tracking
