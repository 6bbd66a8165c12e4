package config

import (
	"sonata-vnfd/pkg/log"
)

// Config represents the vnfd tool configuration.
type Config struct {
	// Logging contains the logging config.
	Logging log.Config
	// HTTPAPIEndpoint is the address the catalogue HTTP API binds to.
	HTTPAPIEndpoint string
	// StateRootDir is the directory boarded packages are stored under.
	StateRootDir string
	// ConfigFile is an optional catalogue.toml supplying serve settings.
	ConfigFile string
}
