// Package config provides configuration loading, merging, and validation
// for the HEFIN server and CLI.
//
// Configuration is assembled from multiple sources. Earlier sources win for
// non-zero fields:
//  1. Environment variables, after a .env file is loaded with godotenv
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
