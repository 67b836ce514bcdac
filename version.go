package tagtoggle

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// SemVer is a parsed SemVer 2.0.0 version.
type SemVer struct {
	Major, Minor, Patch int
	Pre, Build          string
}

func (v SemVer) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// ParseVersion parses v (without a leading `v`).
func ParseVersion(v string) (SemVer, bool) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return SemVer{}, false
	}
	var out SemVer
	var err error
	for i, dst := range []*int{&out.Major, &out.Minor, &out.Patch} {
		if *dst, err = strconv.Atoi(m[i+1]); err != nil {
			return SemVer{}, false
		}
	}
	out.Pre, out.Build = m[4], m[5]
	return out, true
}

// Version returns the embedded library version (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version with a leading `v`, as used for git tags.
func VersionTag() string {
	return "v" + Version()
}
