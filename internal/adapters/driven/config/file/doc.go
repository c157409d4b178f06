// Package file loads the process configuration from a TOML file,
// defaulting to ~/.fundlens/config.toml. Required fields are validated
// up front so a misconfigured process aborts before any file is
// touched.
package file
