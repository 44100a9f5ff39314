package app

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gosearch/search"
)

// Config is the resolved configuration of one gosearch invocation.
type Config struct {
	// MazePath is prompted for when empty.
	MazePath string
	// Strategy is prompted for when zero.
	Strategy search.Strategy
	// Step pauses before every removal.
	Step bool
	// AskStep prompts for Step when it is not already set.
	AskStep bool
	// ImagePath defaults to MazePath with a .png extension.
	ImagePath string
	NoImage   bool
	// Listen, when set, serves the HTTP API on this address.
	Listen    string
	LogLevel  string
	LogFormat string

	level slog.Level
}

// NewConfig validates c and fills defaults.
func NewConfig(c Config) (*Config, error) {
	if c.Strategy != 0 && !c.Strategy.Valid() {
		return nil, fmt.Errorf("invalid strategy %d: must be 1..4", int(c.Strategy))
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if err := c.level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	switch c.LogFormat {
	case "":
		c.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
	return &c, nil
}

// logger writes records at the configured level and format to w.
func (c *Config) logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// imagePath returns where the PNG for mazePath goes.
func (c *Config) imagePath(mazePath string) string {
	if c.ImagePath != "" {
		return c.ImagePath
	}
	return strings.TrimSuffix(mazePath, filepath.Ext(mazePath)) + ".png"
}
