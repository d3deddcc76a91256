// Package main hosts the aniorg CLI.
//
// The root command runs one organize pass over the configured source tree.
// Subcommands scaffold and validate configuration, run environment checks,
// and print the build version. All real work lives in the internal packages;
// this package only resolves configuration and renders results.
package main
