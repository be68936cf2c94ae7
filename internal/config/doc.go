// Package config reads lumen.json, the project configuration for the
// lumen CLI. Configuration is optional: every field has a default, and
// commands fall back to the defaults when no file is present.
package config
