// Package config manages user-level settings stored at ~/.jdkx/config.yaml
// and JDKX_* environment variables. It decodes them into Settings (which
// installation suppliers run, tracing and debug log options), validates
// config documents against an embedded JSON schema, and resolves the paths
// jdkx uses under its home directory.
package config
