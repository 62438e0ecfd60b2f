package npm

import (
	"fmt"
	"strings"
)

// DependencyDir is the package manager's dependency cache. It is rebuilt by
// the install step and never staged by CopyAll.
const DependencyDir = "node_modules"

// CopyKind tells which variant a CopyPolicy holds
type CopyKind int

const (
	CopyKindNothing CopyKind = iota
	CopyKindAll
	CopyKindExplicit
)

func (k CopyKind) String() string {
	switch k {
	case CopyKindNothing:
		return "nothing"
	case CopyKindAll:
		return "all"
	case CopyKindExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// CopyPolicy selects what is copied from the project directory to the
// target directory. The zero value copies nothing.
type CopyPolicy struct {
	kind  CopyKind
	items []string
}

// NoCopy returns the policy that copies nothing
func NoCopy() CopyPolicy {
	return CopyPolicy{}
}

// CopyAllEntries returns the policy that copies every top-level entry of the
// project directory except DependencyDir
func CopyAllEntries() CopyPolicy {
	return CopyPolicy{kind: CopyKindAll}
}

// CopyExplicit returns the policy that copies exactly the given paths,
// relative to the project directory. The paths are checked when staging,
// not here.
func CopyExplicit(paths ...string) CopyPolicy {
	return CopyPolicy{kind: CopyKindExplicit, items: append([]string(nil), paths...)}
}

// Kind returns the policy variant
func (p CopyPolicy) Kind() CopyKind {
	return p.kind
}

// Paths returns the explicit paths, nil for the other variants
func (p CopyPolicy) Paths() []string {
	if p.kind != CopyKindExplicit {
		return nil
	}
	return append([]string(nil), p.items...)
}

func (p CopyPolicy) String() string {
	if p.kind == CopyKindExplicit {
		return fmt.Sprintf("explicit[%s]", strings.Join(p.items, ", "))
	}
	return p.kind.String()
}
