package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Tag generation defaults
	v.SetDefault("tags.method_type_parameters", true)
	v.SetDefault("tags.qualified_throws", true)

	// Stub defaults: empty means the corresponding line is omitted
	v.SetDefault("stub.author", "")
	v.SetDefault("stub.since", "")

	// Check defaults
	v.SetDefault("check.include", []string{"**/*.java"})
	v.SetDefault("check.exclude", []string{})
	v.SetDefault("check.watch_debounce_ms", 500)

	// Server defaults
	v.SetDefault("server.max_documents", 100)
}
