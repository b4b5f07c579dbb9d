// Package config loads and validates arbor.json, the project
// configuration file used by the arbor CLI and the development server.
package config
