// Package config provides configuration structures and utilities for
// wikicrawl. It defines crawl limits, site scoping, output locations,
// and report preferences, populated from CLI flags, environment
// variables, and an optional YAML file.
package config
