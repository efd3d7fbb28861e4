// Package triplet normalizes platform triplets such as "x86_64-linux-gnu" into
// the canonical spelling used to key platform-specific binary artifacts.
//
// A triplet is decomposed into six independent axes (architecture, platform,
// libc, calling ABI, libgfortran version and C++ ABI). Each axis has a small
// table of recognized spellings; the matched tags are then reassembled into a
// single canonical string.
package triplet

import (
	"fmt"
	"regexp"
	"strings"
)

// Axis identifies one classification dimension of a triplet.
type Axis int

const (
	AxisArchitecture Axis = iota
	AxisPlatform
	AxisLibc
	AxisCallABI
	AxisLibgfortran
	AxisCxxABI

	numAxes
)

var axisNames = [numAxes]string{
	AxisArchitecture: "architecture",
	AxisPlatform:     "platform",
	AxisLibc:         "libc",
	AxisCallABI:      "call_abi",
	AxisLibgfortran:  "libgfortran_version",
	AxisCxxABI:       "cxx_abi",
}

// String returns the axis name.
func (a Axis) String() string {
	if a < 0 || a >= numAxes {
		return "unknown"
	}
	return axisNames[a]
}

// Axes returns every axis in the order they are matched and rendered.
func Axes() []Axis {
	axes := make([]Axis, numAxes)
	for i := range axes {
		axes[i] = Axis(i)
	}
	return axes
}

// Arch is the architecture tag.
type Arch string

const (
	ArchX86_64      Arch = "x86_64"
	ArchI686        Arch = "i686"
	ArchAarch64     Arch = "aarch64"
	ArchArmv6l      Arch = "armv6l"
	ArchArmv7l      Arch = "armv7l"
	ArchPowerPC64LE Arch = "powerpc64le"
)

// Platform is the operating system tag.
type Platform string

const (
	PlatformDarwin  Platform = "darwin"
	PlatformFreeBSD Platform = "freebsd"
	PlatformWindows Platform = "windows"
	PlatformLinux   Platform = "linux"
)

// Libc is the C library tag.
type Libc string

const (
	LibcUnspecified Libc = "blank_libc"
	LibcGNU         Libc = "gnu"
	LibcMusl        Libc = "musl"
)

// CallABI is the calling convention tag.
type CallABI string

const (
	CallABIUnspecified CallABI = "blank_call_abi"
	CallABIEABIHF      CallABI = "eabihf"
)

// Libgfortran is the Fortran runtime version tag.
type Libgfortran string

const (
	LibgfortranUnspecified Libgfortran = "blank_libgfortran"
	Libgfortran3           Libgfortran = "libgfortran3"
	Libgfortran4           Libgfortran = "libgfortran4"
	Libgfortran5           Libgfortran = "libgfortran5"
)

// CxxABI is the C++ string ABI tag.
type CxxABI string

const (
	CxxABIUnspecified CxxABI = "blank_cxx_abi"
	CxxABI03          CxxABI = "cxx03"
	CxxABI11          CxxABI = "cxx11"
)

// Spelling pairs a canonical tag with the pattern recognizing its spellings.
type Spelling struct {
	Tag     string
	Pattern string

	re *regexp.Regexp
}

// versionGroup captures the OS release suffix of darwin and freebsd spellings.
const versionGroup = "version"

// Within each axis no two spellings accept the same text:
//   - architectures differ in their literal prefixes ("x86_", "amd", "i?86",
//     "arm64"/"aarch64", "armv6", "arm"/"armv7l", "p(ower)pc").
//     "arm64" is never accepted by arm(v7l)? because that pattern ends at "arm"
//     or "armv7l".
//   - platforms end in distinct literals (darwin, freebsd, mingw32, linux).
//   - every other axis has one empty spelling and literals with distinct
//     suffixes.
//
// Order is still fixed so that the first spelling to lead to a full match wins.
var spellingTables = [numAxes][]Spelling{
	AxisArchitecture: {
		{Tag: string(ArchX86_64), Pattern: `(x86_|amd)64`},
		{Tag: string(ArchI686), Pattern: `i[0-9]86`},
		{Tag: string(ArchAarch64), Pattern: `(arm|aarch)64`},
		{Tag: string(ArchArmv6l), Pattern: `armv6l?`},
		{Tag: string(ArchArmv7l), Pattern: `arm(v7l)?`},
		{Tag: string(ArchPowerPC64LE), Pattern: `p(ower)?pc64le`},
	},
	AxisPlatform: {
		{Tag: string(PlatformDarwin), Pattern: `-apple-darwin(?P<version>[0-9.]*)`},
		{Tag: string(PlatformFreeBSD), Pattern: `-(.*-)?freebsd(?P<version>[0-9.]*)`},
		{Tag: string(PlatformWindows), Pattern: `-w64-mingw32`},
		{Tag: string(PlatformLinux), Pattern: `-(.*-)?linux`},
	},
	AxisLibc: {
		{Tag: string(LibcUnspecified), Pattern: ``},
		{Tag: string(LibcGNU), Pattern: `-gnu`},
		{Tag: string(LibcMusl), Pattern: `-musl`},
	},
	AxisCallABI: {
		{Tag: string(CallABIUnspecified), Pattern: ``},
		{Tag: string(CallABIEABIHF), Pattern: `eabihf`},
	},
	AxisLibgfortran: {
		{Tag: string(LibgfortranUnspecified), Pattern: ``},
		{Tag: string(Libgfortran3), Pattern: `-libgfortran3`},
		{Tag: string(Libgfortran4), Pattern: `-libgfortran4`},
		{Tag: string(Libgfortran5), Pattern: `-libgfortran5`},
	},
	AxisCxxABI: {
		{Tag: string(CxxABIUnspecified), Pattern: ``},
		{Tag: string(CxxABI03), Pattern: `-cxx03`},
		{Tag: string(CxxABI11), Pattern: `-cxx11`},
	},
}

// tripletRE is every axis table joined into one anchored pattern. Each
// spelling is a named group, so the match resolves all axes in a single
// linear pass. Among full matches the regexp engine picks the one a
// backtracking matcher would, i.e. earlier spellings and longer repetitions
// first.
var tripletRE *regexp.Regexp

// spellingGroups[axis][i] and versionGroups[axis][i] are the submatch indexes
// of spelling i and of its release suffix (-1 when it has none).
var spellingGroups, versionGroups [numAxes][]int

func init() {
	var b strings.Builder
	b.WriteString("^")
	for axis := range spellingTables {
		b.WriteString("(?:")
		for i := range spellingTables[axis] {
			sp := &spellingTables[axis][i]
			sp.re = regexp.MustCompile(`^(?:` + sp.Pattern + `)$`)

			if i > 0 {
				b.WriteString("|")
			}
			pattern := strings.ReplaceAll(sp.Pattern, "(?P<"+versionGroup+">", fmt.Sprintf("(?P<v%d_%d>", axis, i))
			fmt.Fprintf(&b, "(?P<s%d_%d>%s)", axis, i, pattern)
		}
		b.WriteString(")")
	}
	b.WriteString("$")
	tripletRE = regexp.MustCompile(b.String())

	for axis := range spellingTables {
		n := len(spellingTables[axis])
		spellingGroups[axis] = make([]int, n)
		versionGroups[axis] = make([]int, n)
		for i := 0; i < n; i++ {
			spellingGroups[axis][i] = tripletRE.SubexpIndex(fmt.Sprintf("s%d_%d", axis, i))
			versionGroups[axis][i] = tripletRE.SubexpIndex(fmt.Sprintf("v%d_%d", axis, i))
		}
	}
}

// Spellings returns the axis table in matching order.
func (a Axis) Spellings() []Spelling {
	if a < 0 || a >= numAxes {
		return nil
	}
	out := make([]Spelling, len(spellingTables[a]))
	copy(out, spellingTables[a])
	return out
}

// Blank returns the tag representing absence on this axis, or "" for axes
// that are always present.
func (a Axis) Blank() string {
	switch a {
	case AxisLibc:
		return string(LibcUnspecified)
	case AxisCallABI:
		return string(CallABIUnspecified)
	case AxisLibgfortran:
		return string(LibgfortranUnspecified)
	case AxisCxxABI:
		return string(CxxABIUnspecified)
	default:
		return ""
	}
}
