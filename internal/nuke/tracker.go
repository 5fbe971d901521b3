package nuke

import (
	"strconv"
	"strings"

	"tracker2nuke/internal/tracking"
)

var (
	quotedNameEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	// Node names are bare words, so quotes cannot be escaped there.
	nodeNameReplacer = strings.NewReplacer(`\`, "_", `"`, "_")
)

// NodeName returns the name given to the Tracker4 node for a group.
func NodeName(groupName string) string {
	return trackerNodePrefix + nodeNameReplacer.Replace(tracking.SanitizeName(groupName))
}

// Render serializes groups as concatenated Tracker4 nodes in slice order.
// Empty tracks are skipped, and so is any group left without tracks. The
// result is empty when nothing qualifies.
func Render(groups []*tracking.Group) string {
	var b strings.Builder
	for _, group := range groups {
		renderNode(&b, group)
	}
	return b.String()
}

// RenderGroup serializes a single group. See Render.
func RenderGroup(group *tracking.Group) string {
	var b strings.Builder
	renderNode(&b, group)
	return b.String()
}

func renderNode(b *strings.Builder, group *tracking.Group) {
	tracks := group.NonEmpty()
	if len(tracks) == 0 {
		return
	}

	b.WriteString(trackerNodeClass)
	b.WriteString(" {\n tracks { { 1 ")
	b.WriteString(strconv.Itoa(tracker4ColumnCount))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(len(tracks)))
	b.WriteString(" }\n")
	b.WriteString(tracker4Columns)
	b.WriteString(" }\n {\n")

	for _, track := range tracks {
		renderRow(b, track)
	}

	b.WriteString("}\n}\nname ")
	b.WriteString(NodeName(group.Name))
	b.WriteString("\n}\n")
}

func renderRow(b *strings.Builder, track *tracking.Track) {
	frames := track.Frames()
	first := frames[0]

	b.WriteString("  { ")
	b.WriteString(constantCurve(first, "1"))
	b.WriteString(` "`)
	b.WriteString(quotedNameEscaper.Replace(tracking.SanitizeName(track.Name)))
	b.WriteString(`" `)
	b.WriteString(sampleCurve(track, frames, pointX))
	b.WriteByte(' ')
	b.WriteString(sampleCurve(track, frames, pointY))
	b.WriteByte(' ')
	// offset_x, offset_y
	b.WriteString(constantCurve(first, "0"))
	b.WriteByte(' ')
	b.WriteString(constantCurve(first, "0"))
	// T R S
	b.WriteString(" 1 1 1 ")
	b.WriteString("{curve x" + strconv.Itoa(first) + " 0} ")
	b.WriteString(trackRowTail)
	b.WriteByte('\n')
}
