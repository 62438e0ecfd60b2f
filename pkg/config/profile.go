package config

import (
	"strings"

	"github.com/arthur-debert/npmstage/pkg/errors"
)

// Profile is the optimisation profile of the hosting build.
type Profile string

const (
	ProfileDebug   Profile = "debug"
	ProfileRelease Profile = "release"
)

// ParseProfile parses a profile name. The empty string is the debug profile.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "debug", "dev":
		return ProfileDebug, nil
	case "release":
		return ProfileRelease, nil
	default:
		return ProfileDebug, errors.Newf(errors.ErrConfigInvalid, "unknown profile %q (want debug or release)", s).
			WithDetail("profile", s)
	}
}

// IsRelease reports whether p is the release profile
func (p Profile) IsRelease() bool {
	return p == ProfileRelease
}

func (p Profile) String() string {
	if p == "" {
		return string(ProfileDebug)
	}
	return string(p)
}
