package config

import "github.com/javelin-dev/javelin/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Include patterns: an empty list would make check/fix a no-op
	if len(c.Check.Include) == 0 {
		return errors.New("check.include cannot be empty (default is [\"**/*.java\"])")
	}

	// Watch debounce: 0 = fire immediately, negative = invalid
	if c.Check.WatchDebounceMS < 0 {
		return errors.Newf("check.watch_debounce_ms must be >= 0, got %d", c.Check.WatchDebounceMS)
	}

	// Document cache: at least one document must fit
	if c.Server.MaxDocuments <= 0 {
		return errors.Newf("server.max_documents must be > 0, got %d", c.Server.MaxDocuments)
	}

	return nil
}
