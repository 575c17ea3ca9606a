// Package config loads Javelin configuration from javelin.toml files and
// JAVELIN_* environment variables, in the precedence order
// system < user < project < env.
package config

import "github.com/javelin-dev/javelin/javadoc"

// Config represents the Javelin configuration
type Config struct {
	Tags   TagsConfig   `mapstructure:"tags"`
	Stub   StubConfig   `mapstructure:"stub"`
	Check  CheckConfig  `mapstructure:"check"`
	Server ServerConfig `mapstructure:"server"`
}

// Policy maps the tag settings onto the generation policy.
func (c *Config) Policy() javadoc.Policy {
	return javadoc.Policy{
		MethodTypeParameters: c.Tags.MethodTypeParameters,
		QualifiedThrows:      c.Tags.QualifiedThrows,
	}
}

// TagsConfig controls how missing Javadoc tags are detected and rendered
type TagsConfig struct {
	// MethodTypeParameters controls whether @param tags are generated for
	// method-level type parameters. Type-level type parameters are always
	// tagged.
	MethodTypeParameters bool `mapstructure:"method_type_parameters"`

	// QualifiedThrows renders @throws arguments with the qualified type name
	// as written in the throws clause. When false the simple name is used.
	QualifiedThrows bool `mapstructure:"qualified_throws"`
}

// StubConfig configures generated comment stubs for declarations that have
// no Javadoc block at all
type StubConfig struct {
	Author string `mapstructure:"author"` // optional @author line for type stubs
	Since  string `mapstructure:"since"`  // optional @since line for type stubs
}

// CheckConfig configures the check/fix file scan
type CheckConfig struct {
	Include         []string `mapstructure:"include"`           // glob patterns of files to scan
	Exclude         []string `mapstructure:"exclude"`           // glob patterns of files to skip
	WatchDebounceMS int      `mapstructure:"watch_debounce_ms"` // debounce for --watch re-runs
}

// ServerConfig configures the language server
type ServerConfig struct {
	// MaxDocuments bounds the open-document cache per client
	MaxDocuments int `mapstructure:"max_documents"`
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
