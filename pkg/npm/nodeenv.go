package npm

import "github.com/arthur-debert/npmstage/pkg/config"

// NodeEnv is the value injected as NODE_ENV into every package manager
// invocation. Any value other than Production and Development is a custom
// mode and is passed through verbatim.
type NodeEnv string

const (
	Production  NodeEnv = "production"
	Development NodeEnv = "development"
)

// IsCustom reports whether e is neither production nor development
func (e NodeEnv) IsCustom() bool {
	return e != Production && e != Development
}

func (e NodeEnv) String() string {
	return string(e)
}

// defaultNodeEnv picks the mode from the NODE_ENV override when it is set,
// even to the empty string, and from the build profile otherwise.
func defaultNodeEnv(override string, set bool, profile config.Profile) NodeEnv {
	if set {
		return NodeEnv(override)
	}
	if profile.IsRelease() {
		return Production
	}
	return Development
}
