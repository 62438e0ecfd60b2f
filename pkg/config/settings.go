package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/npmstage/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SettingsFileNames are searched, in order, when no settings file is given
var SettingsFileNames = []string{"npmstage.toml", ".npmstage.toml", "npmstage.yaml", ".npmstage.yaml"}

// Settings is the CLI configuration.
type Settings struct {
	ProjectDir string       `koanf:"project_dir" toml:"project_dir,omitempty" yaml:"project_dir,omitempty"`
	TargetDir  string       `koanf:"target_dir" toml:"target_dir,omitempty" yaml:"target_dir,omitempty"`
	NodeEnv    *string      `koanf:"node_env" toml:"node_env,omitempty" yaml:"node_env,omitempty"`
	Profile    string       `koanf:"profile" toml:"profile,omitempty" yaml:"profile,omitempty"`
	Tool       string       `koanf:"tool" toml:"tool" yaml:"tool"`
	Scripts    []string     `koanf:"scripts" toml:"scripts,omitempty" yaml:"scripts,omitempty"`
	Copy       CopySettings `koanf:"copy" toml:"copy" yaml:"copy"`

	// Source is the settings file that was loaded, if any
	Source string `koanf:"-" toml:"-" yaml:"-"`
}

// CopySettings selects what gets staged
type CopySettings struct {
	All   bool     `koanf:"all" toml:"all" yaml:"all"`
	Items []string `koanf:"items" toml:"items,omitempty" yaml:"items,omitempty"`
}

// LoadOptions controls where settings are read from
type LoadOptions struct {
	// Path is an explicit settings file; it must exist when set
	Path string
	// SearchDir is where SettingsFileNames are looked up when Path is empty
	SearchDir string
}

// envKeys maps environment variables onto settings keys
var envKeys = map[string]string{
	EnvProjectDir: "project_dir",
	EnvTargetDir:  "target_dir",
	EnvNodeEnv:    "node_env",
	EnvProfile:    "profile",
	EnvTool:       "tool",
	EnvScripts:    "scripts",
	EnvCopyAll:    "copy.all",
	EnvCopyItems:  "copy.items",
}

func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"tool":       DefaultTool,
		"copy.all":   false,
		"copy.items": []string{},
	}
}

// LoadSettings loads settings from defaults, the settings file and env
func LoadSettings(env Environment, opts LoadOptions) (*Settings, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultSettings(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	// 2. Settings file
	path, err := findSettingsFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	if err := k.Load(confmap.Provider(envSettings(env), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment settings")
	}

	// 4. Unmarshal
	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}
	s.Source = path
	s.Scripts = compact(s.Scripts)
	s.Copy.Items = compact(s.Copy.Items)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks settings that cannot be expressed in the file format
func (s *Settings) Validate() error {
	if s.Copy.All && len(s.Copy.Items) > 0 {
		return errors.New(errors.ErrConfigInvalid, "copy.all and copy.items are mutually exclusive")
	}
	if _, err := ParseProfile(s.Profile); err != nil {
		return err
	}
	return nil
}

func findSettingsFile(opts LoadOptions) (string, error) {
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "settings file %s", opts.Path).
				WithDetail("path", opts.Path)
		}
		return opts.Path, nil
	}

	dir := opts.SearchDir
	if dir == "" {
		dir = "."
	}
	for _, name := range SettingsFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported settings file format: %s", path).
			WithDetail("path", path)
	}
}

func envSettings(env Environment) map[string]interface{} {
	m := make(map[string]interface{})
	for name, key := range envKeys {
		if v := Getenv(env, name); v != "" {
			m[key] = v
		}
	}
	// An empty NODE_ENV is still an override
	if env != nil {
		if v, ok := env.LookupEnv(EnvNodeEnv); ok {
			m[envKeys[EnvNodeEnv]] = v
		}
	}
	return m
}

// compact trims entries and drops empty ones left by "a, b," style lists
func compact(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
