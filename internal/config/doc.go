// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation; a .env file in the working directory is honoured. Credentials
// are intentionally not required by Validate — a run that exports nothing
// never needs them.
package config
