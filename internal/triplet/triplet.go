package triplet

import "strings"

// Triplet holds one resolved tag per axis.
// Absent axes carry their Unspecified tag rather than an empty value.
type Triplet struct {
	Arch     Arch
	Platform Platform
	// OSVersion is the release suffix of darwin and freebsd spellings,
	// e.g. "14" in "x86_64-apple-darwin14".
	OSVersion   string
	Libc        Libc
	CallABI     CallABI
	Libgfortran Libgfortran
	CxxABI      CxxABI
}

// osRemapping holds the long forms of platform tags that cannot be written as
// a single word.
var osRemapping = []struct{ tag, long string }{
	{"darwin", "apple-darwin"},
	{"windows", "w64-mingw32"},
	{"freebsd", "unknown-freebsd"},
}

// String renders the canonical triplet.
func (t Triplet) String() string {
	var b strings.Builder
	b.WriteString(string(t.Arch))
	b.WriteString(prefixed(remapOS(string(t.Platform))))
	b.WriteString(t.OSVersion)
	b.WriteString(prefixed(blankToEmpty(AxisLibc, string(t.Libc))))
	b.WriteString(blankToEmpty(AxisCallABI, string(t.CallABI)))
	b.WriteString(prefixed(blankToEmpty(AxisLibgfortran, string(t.Libgfortran))))
	b.WriteString(prefixed(blankToEmpty(AxisCxxABI, string(t.CxxABI))))
	return b.String()
}

// Tag returns the resolved tag of a single axis.
func (t Triplet) Tag(a Axis) string {
	switch a {
	case AxisArchitecture:
		return string(t.Arch)
	case AxisPlatform:
		return string(t.Platform)
	case AxisLibc:
		return string(t.Libc)
	case AxisCallABI:
		return string(t.CallABI)
	case AxisLibgfortran:
		return string(t.Libgfortran)
	case AxisCxxABI:
		return string(t.CxxABI)
	default:
		return ""
	}
}

func blankToEmpty(a Axis, tag string) string {
	if tag == a.Blank() {
		return ""
	}
	return tag
}

func remapOS(tag string) string {
	for _, r := range osRemapping {
		tag = strings.ReplaceAll(tag, r.tag, r.long)
	}
	return tag
}

func prefixed(s string) string {
	if s == "" {
		return ""
	}
	return "-" + s
}
