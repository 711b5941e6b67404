// Package config manages user-level settings stored at ~/.expressgen/config.yaml.
// Values can be overridden with EXPRESSGEN_* environment variables, e.g.
// EXPRESSGEN_PORT=3000 changes the backend port written into generated projects.
package config
