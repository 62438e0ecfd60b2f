package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Stage a Node project and run its npm scripts"
	MsgRunShort        = "Stage, install and run package.json scripts"
	MsgInstallShort    = "Stage the project and install its dependencies"
	MsgStageShort      = "Copy the project into the target directory"
	MsgConfigShort     = "Print the effective settings"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgSameDirectory = "project and target are the same directory, nothing staged"
	MsgNoScripts     = "no scripts given and none configured"
)

// MsgRootLong is the root command's long description
const MsgRootLong = `npmstage copies a Node project into a working directory, installs its
dependencies there once, and runs scripts from its package.json. Any failure
exits with status 1, which stops the enclosing go:generate or make run.

Settings are read from npmstage.toml, .npmstage.toml, npmstage.yaml or
.npmstage.yaml in the current directory (or --config), then from NPMSTAGE_*
and NODE_ENV variables, then from flags. Later sources win.`
