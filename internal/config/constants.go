package config

import "optpaircli/pkg/contracts"

// Application constants
const (
	AppName    = "optpair"
	AppVersion = contracts.Version

	// EnvPrefix namespaces every environment override, e.g.
	// OPTPAIR_AGGREGATION_OUTPUT_PATH.
	EnvPrefix = "OPTPAIR"

	DefaultConfigFile = "config.yaml"
	DefaultEnvFile    = ".env"
	DefaultLogFile    = "logs/aggregator.log"

	// BaseDirSeparator splits the base_dirs value.
	BaseDirSeparator = ","
)
