// Package config loads the server, database and auth settings from
// defaults, an optional config.yaml, an optional .env file and MART_*
// environment variables, in increasing order of precedence, and validates
// the result before anything else starts.
package config
