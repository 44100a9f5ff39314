// Package app wires the maze loader, the search engine and the renderers
// into the gosearch command: it prompts for whatever the configuration
// leaves open, runs the search, prints the result and writes the PNG. With
// Listen set it serves the HTTP API instead.
package app
