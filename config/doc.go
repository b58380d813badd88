// SPDX-License-Identifier: MIT

// Package config loads chembal settings.
//
// Precedence, highest first: explicitly set command-line flags, CHEMBAL_*
// environment variables, the optional config file, built-in defaults.
// Nested keys map to environment names by upper-casing and replacing dots
// with underscores, e.g. engine.workers → CHEMBAL_ENGINE_WORKERS.
//
// The loaded Config is checked with validator struct tags before it is
// returned.
package config
