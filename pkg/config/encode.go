package config

import (
	"strings"

	"github.com/arthur-debert/npmstage/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encode renders the settings in the given format ("toml" or "yaml")
func (s *Settings) Encode(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "toml":
		data, err := toml.Marshal(s)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode settings as toml")
		}
		return data, nil
	case "yaml", "yml":
		data, err := yaml.Marshal(s)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode settings as yaml")
		}
		return data, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", format)
	}
}
