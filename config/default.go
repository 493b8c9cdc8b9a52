package config

import _ "embed"

// DefaultConfigYAML embedded fallback configuration, overridable by an
// external config file or SCHOOL_* environment variables
//
//go:embed default.yaml
var DefaultConfigYAML []byte
