// Package config provides configuration loading, merging, and validation
// facilities for the sync client and the reference sync server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the sync client and
// [GetServerConfig] for the reference server. Both apply defaults to
// fields no source has set.
package config
