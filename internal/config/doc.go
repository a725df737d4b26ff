// Package config provides configuration management for the option pair
// aggregator. It loads settings from multiple sources, validates them and
// exposes a typed Config to the command line entry point.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Command line overrides (highest priority)
//	2. Environment variables prefixed with OPTPAIR_
//	3. A dotenv file (.env by default, optional)
//	4. The YAML configuration file (config.yaml by default)
//	5. Default values (lowest priority)
//
// # Environment Variables
//
// Nested keys are joined with underscores:
//
//	OPTPAIR_AGGREGATION_BASE_DIRS=data/2025Q1,data/2025Q2
//	OPTPAIR_AGGREGATION_OUTPUT_PATH=out/matched.xlsx
//	OPTPAIR_COLUMNS_VOLUME=Volume
//	OPTPAIR_LOGGING_LEVEL=debug
//
// # Validation
//
// base_dirs and output_path are required. A missing or unreadable
// configuration source, or a failed validation, is returned as a CONFIG
// AppError and is fatal for the run.
//
// # Usage
//
//	cfg, err := config.Load(config.LoadOptions{ConfigFile: "config.yaml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, dir := range cfg.Aggregation.Dirs() {
//	    // ...
//	}
package config
