package config

import (
	"fmt"
	"os"
)

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	Adapter Adapter

	// Args are the positional arguments left after the client flags:
	// the command name followed by its own flags.
	Args []string
}

// GetClientConfig loads the client configuration from environment
// variables, the leading command-line flags, and an optional JSON file.
func GetClientConfig() (*ClientConfig, error) {
	builder := newConfigBuilder().
		withEnv().
		withClientFlags(os.Args[1:]).
		withJSON()

	cfg, err := builder.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Args:    builder.args,
	}

	return clientCfg, clientCfg.validate()
}
