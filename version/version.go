// Package version implements the semantic-version triple and the
// local/remote compatibility check of spec §4.8: major numbers must
// match exactly, the local minor must not exceed the remote minor, and
// patch never affects compatibility.
package version

import "fmt"

// Triple is a (major, minor, patch) version, matching
// original_source/dices-ast/src/version.rs's Version shape (kept here as
// the full triple rather than a single differing component, per
// SPEC_FULL.md §6).
type Triple struct {
	Major, Minor, Patch uint16
}

// New builds a Triple.
func New(major, minor, patch uint16) Triple {
	return Triple{Major: major, Minor: minor, Patch: patch}
}

func (v Triple) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Equal reports whether two triples are identical in all three
// components.
func (v Triple) Equal(o Triple) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

// IncompatibilityKind discriminates why two versions failed to be
// compatible (spec §4.8/§7: Major{local,remote} or Minor{local,remote}).
type IncompatibilityKind int

const (
	Major IncompatibilityKind = iota
	Minor
)

// Incompatibility reports a failed compatibility check, carrying both
// sides of the triple (not just the differing field), following
// original_source's version.rs IncompatibilityReason.
type Incompatibility struct {
	Kind          IncompatibilityKind
	Local, Remote Triple
}

func (e *Incompatibility) Error() string {
	switch e.Kind {
	case Major:
		return fmt.Sprintf("the local major version (%d) is different from the remote one (%d)", e.Local.Major, e.Remote.Major)
	case Minor:
		return fmt.Sprintf("the local minor version (%d) is greater than the remote one (%d)", e.Local.Minor, e.Remote.Minor)
	default:
		return "incompatible version"
	}
}

// IsCompatibleWith implements spec §4.8: major numbers must be equal and
// the local minor must be <= the remote minor; patch is ignored.
func (v Triple) IsCompatibleWith(remote Triple) error {
	if v.Major != remote.Major {
		return &Incompatibility{Kind: Major, Local: v, Remote: remote}
	}
	if v.Minor > remote.Minor {
		return &Incompatibility{Kind: Minor, Local: v, Remote: remote}
	}
	return nil
}

// Current is the AST/wire-format version this module produces and
// accepts as local. Bumped whenever the wire package's framing or the
// ast package's node set changes in a way that affects decoding.
var Current = Triple{Major: 1, Minor: 0, Patch: 0}
