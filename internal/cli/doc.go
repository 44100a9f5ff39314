// Package cli is responsible for parsing command-line arguments, merging
// them over an optional HCL run profile and handling process-level concerns
// like exit codes.
package cli
