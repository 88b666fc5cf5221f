package config

// ProviderConfig selects and parameterizes the DNS provider backend.
type ProviderConfig struct {
	// Name of the registered provider ("hetzner", "memory").
	Name string `yaml:"name"`
	// Settings are provider-specific (e.g. "api_token", "base_url").
	Settings map[string]string `yaml:"settings,omitempty"`
	// DefaultTTL is used when a declaration does not set one.
	DefaultTTL int `yaml:"default_ttl"`
}

// StoreConfig contains persistence settings.
type StoreConfig struct {
	// Path to the SQLite database file.
	Path string `yaml:"path"`
}

// APIConfig contains management API settings.
//
// Note: APIKey is a secret and must not be returned by API endpoints.
type APIConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	APIKey  string `yaml:"api_key,omitempty"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level       string            `yaml:"level"`
	Structured  bool              `yaml:"structured"`
	Format      string            `yaml:"format"`
	IncludePID  bool              `yaml:"include_pid"`
	ExtraFields map[string]string `yaml:"extra_fields,omitempty"`
}

// DeclarationConfig points at the desired-state declaration to manage.
type DeclarationConfig struct {
	// Path to the YAML zone declaration. Optional: the API can also
	// receive declarations over PUT /declaration.
	Path string `yaml:"path,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Provider    ProviderConfig    `yaml:"provider"`
	Store       StoreConfig       `yaml:"store"`
	API         APIConfig         `yaml:"api"`
	Logging     LoggingConfig     `yaml:"logging"`
	Declaration DeclarationConfig `yaml:"declaration"`
}
