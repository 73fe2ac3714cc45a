package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrMissingRequired   = goerr.New("required configuration is missing")
	ErrInvalidLogLevel   = goerr.New("invalid log level")
	ErrInvalidLogFormat  = goerr.New("invalid log format")
	ErrConflictingGitHub = goerr.New("GitHub token and GitHub App credentials are mutually exclusive")
)

// Context keys for error values
const (
	EnvKey    = "env"
	LevelKey  = "level"
	FormatKey = "format"
	OutputKey = "output"
)

func missing(env string) error {
	return goerr.Wrap(ErrMissingRequired, env+" environment variable required", goerr.V(EnvKey, env))
}
