package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/gosearch/search"
)

// ErrInvalidProfile wraps every semantic error found in a profile.
var ErrInvalidProfile = errors.New("config: invalid profile")

// Profile is a decoded run profile. Zero values mean "not set".
type Profile struct {
	Maze      string
	Strategy  search.Strategy
	Step      bool
	Image     string
	NoImage   bool
	LogLevel  string
	LogFormat string
	Listen    string
}

// fileRoot mirrors the attributes accepted at the top level of a profile.
type fileRoot struct {
	Maze      string         `hcl:"maze,optional"`
	Strategy  hcl.Expression `hcl:"strategy,optional"`
	Step      bool           `hcl:"step,optional"`
	Image     string         `hcl:"image,optional"`
	NoImage   bool           `hcl:"no_image,optional"`
	LogLevel  string         `hcl:"log_level,optional"`
	LogFormat string         `hcl:"log_format,optional"`
	Listen    string         `hcl:"listen,optional"`
}

// LoadProfile parses the HCL profile at path.
func LoadProfile(path string) (*Profile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read profile: %w", err)
	}
	p, err := ParseProfile(src, path)
	if err != nil {
		return nil, err
	}
	p.resolve(filepath.Dir(path))
	return p, nil
}

// ParseProfile decodes an HCL profile held in src; filename is used only in
// diagnostics.
func ParseProfile(src []byte, filename string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %w", filename, diags)
	}

	strategy, err := decodeStrategy(root.Strategy)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		Maze:      root.Maze,
		Strategy:  strategy,
		Step:      root.Step,
		Image:     root.Image,
		NoImage:   root.NoImage,
		LogLevel:  root.LogLevel,
		LogFormat: root.LogFormat,
		Listen:    root.Listen,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// decodeStrategy accepts either a selector number or a strategy name. An
// absent attribute decodes to a null value and yields 0.
func decodeStrategy(expr hcl.Expression) (search.Strategy, error) {
	if expr == nil {
		return 0, nil
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("%w: strategy: %s", ErrInvalidProfile, diags.Error())
	}
	if v.IsNull() {
		return 0, nil
	}

	switch v.Type() {
	case cty.Number:
		var n int
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return 0, fmt.Errorf("%w: strategy: %v", ErrInvalidProfile, err)
		}
		s := search.Strategy(n)
		if !s.Valid() {
			return 0, fmt.Errorf("%w: strategy %d is not one of 1..4", ErrInvalidProfile, n)
		}
		return s, nil
	case cty.String:
		s, err := search.ParseStrategy(v.AsString())
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
		}
		return s, nil
	}
	return 0, fmt.Errorf("%w: strategy must be a number or a string, got %s", ErrInvalidProfile, v.Type().FriendlyName())
}

// Validate checks the enumerated attributes.
func (p *Profile) Validate() error {
	switch p.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q must be debug, info, warn or error", ErrInvalidProfile, p.LogLevel)
	}
	switch p.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q must be text or json", ErrInvalidProfile, p.LogFormat)
	}
	return nil
}

// resolve makes relative file paths relative to dir.
func (p *Profile) resolve(dir string) {
	if p.Maze != "" && !filepath.IsAbs(p.Maze) {
		p.Maze = filepath.Join(dir, p.Maze)
	}
	if p.Image != "" && !filepath.IsAbs(p.Image) {
		p.Image = filepath.Join(dir, p.Image)
	}
}
