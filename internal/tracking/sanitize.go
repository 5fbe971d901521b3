package tracking

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// identifierReplacer swaps characters that would split a node identifier or
// be interpreted by Tcl inside a braced knob value.
var identifierReplacer = strings.NewReplacer(
	" ", "_",
	".", "_",
	"\t", "_",
	"\n", "_",
	"{", "_",
	"}", "_",
	"[", "_",
	"]", "_",
	"$", "_",
)

// SanitizeName converts a host name into a node-safe identifier fragment.
// Input is NFC-normalized first so composed and decomposed spellings of the
// same clip name produce the same node name.
func SanitizeName(name string) string {
	return identifierReplacer.Replace(norm.NFC.String(name))
}
