package portfolio

import "github.com/matiasglessi/portfolio/internal/config"

// Config is the site configuration. See LoadConfig for the file format.
type Config = config.Config

// Stylesheet is an extra stylesheet link with optional subresource integrity.
type Stylesheet = config.Stylesheet

// LoadConfig loads and validates a YAML configuration from a path or a name
// ("site" resolves to site.yaml, site.yml, then the user config directory).
func LoadConfig(nameOrPath string) (*Config, error) {
	return config.LoadConfig(nameOrPath)
}

// ParseConfig decodes and validates configuration YAML. Unknown keys are
// rejected.
func ParseConfig(data []byte) (*Config, error) {
	return config.Parse(data)
}

// DefaultConfig returns a configuration with every default applied. Name and
// URL must still be set before building.
func DefaultConfig() *Config {
	return config.DefaultConfig()
}
