// Package config provides start-up configuration loading, merging, and
// validation for the config-gen proxy.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags and the positional target URL
//
// The main entry point is [GetStructuredConfig]. The static build
// configuration file named by --config is not parsed here; see package
// sources.
package config
