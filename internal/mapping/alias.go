package mapping

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"rtac-writer/internal/common"
)

const indexWidth = 5

// PadIndex zero-pads index to five characters. Wider indices are not padded.
func PadIndex(index int) string {
	s := strconv.Itoa(index)
	if len(s) >= indexWidth {
		return s
	}

	return strings.Repeat("0", indexWidth-len(s)) + s
}

// SynthesizeAlias builds the RTAC tag of a point:
//
//	<device>_DNP.<pointType>_<index padded to 5>_<label suffix>
//
// The label suffix is the part of hmiLabel after the device's last
// underscore token, without its first character and with dots turned into
// underscores. When the token does not occur in hmiLabel the whole label
// is used the same way.
func SynthesizeAlias(device, pointType string, index int, hmiLabel string) string {
	var b strings.Builder

	b.WriteString(device)
	b.WriteString("_DNP.")
	b.WriteString(pointType)
	b.WriteByte('_')
	b.WriteString(PadIndex(index))
	b.WriteByte('_')
	b.WriteString(LabelSuffix(device, hmiLabel))

	return b.String()
}

// LabelSuffix returns the alias suffix derived from hmiLabel.
func LabelSuffix(device, hmiLabel string) string {
	segment, _ := common.Last(splitLabel(hmiLabel, deviceToken(device)))
	_, size := utf8.DecodeRuneInString(segment)

	return strings.ReplaceAll(segment[size:], ".", "_")
}

// LabelHasToken reports whether hmiLabel contains the device's last
// underscore token, i.e. whether LabelSuffix takes the regular path.
func LabelHasToken(device, hmiLabel string) bool {
	token := deviceToken(device)
	return token != "" && strings.Contains(hmiLabel, token)
}

func deviceToken(device string) string {
	parts := common.TrimTrailing(strings.Split(device, "_"), isEmptyString)
	token, _ := common.Last(parts)

	return token
}

// splitLabel splits s around sep and drops trailing empty segments.
// Without a match the whole string is the only segment.
func splitLabel(s, sep string) []string {
	if sep == "" || !strings.Contains(s, sep) {
		return []string{s}
	}

	return common.TrimTrailing(strings.Split(s, sep), isEmptyString)
}

func isEmptyString(s string) bool {
	return s == ""
}
