// Package config loads fill profiles from YAML. A profile bundles the fill
// options and a static value map so sheet runs are reproducible from a
// checked-in file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	formfill "github.com/wudi/formfill"
	"github.com/wudi/formfill/render"
)

// Profile mirrors the fill options plus a value map.
type Profile struct {
	Font                string  `yaml:"font"`
	FontSize            float64 `yaml:"font-size"`
	BarcodeXDim         float64 `yaml:"barcode-xdim"`
	LabelRows           int     `yaml:"label-rows"`
	LabelColumns        int     `yaml:"label-columns"`
	LabelOffsetX        float64 `yaml:"label-offset-x"`
	LabelOffsetY        float64 `yaml:"label-offset-y"`
	Overflow            string  `yaml:"overflow"` // expand, shrink, none
	OverflowMinFontSize float64 `yaml:"overflow-min-font-size"`
	Pages               int     `yaml:"pages"`
	ShowBounds          bool    `yaml:"show-bounds"`
	Cleanup             *bool   `yaml:"cleanup"`

	Values map[string]string `yaml:"values"`
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) validate() error {
	switch p.Overflow {
	case "", "expand", "shrink", "none":
	default:
		return fmt.Errorf("invalid overflow policy %q", p.Overflow)
	}
	if p.LabelRows < 0 || p.LabelColumns < 0 {
		return fmt.Errorf("label grid dimensions must not be negative")
	}
	if p.Pages < 0 {
		return fmt.Errorf("pages must not be negative")
	}
	return nil
}

// Options lowers the profile into fill options.
func (p *Profile) Options() []formfill.Option {
	var opts []formfill.Option
	if p.Font != "" {
		opts = append(opts, formfill.WithFont(p.Font))
	}
	if p.FontSize > 0 {
		opts = append(opts, formfill.WithFontSize(p.FontSize))
	}
	if p.BarcodeXDim > 0 {
		opts = append(opts, formfill.WithBarcodeXDim(p.BarcodeXDim))
	}
	if p.LabelRows > 0 || p.LabelColumns > 0 {
		rows, cols := p.LabelRows, p.LabelColumns
		if rows == 0 {
			rows = 1
		}
		if cols == 0 {
			cols = 1
		}
		opts = append(opts, formfill.WithLabelGrid(rows, cols, p.LabelOffsetX, p.LabelOffsetY))
	}
	if p.Overflow != "" {
		min := p.OverflowMinFontSize
		if min <= 0 {
			min = 8
		}
		opts = append(opts, formfill.WithOverflow(p.overflowPolicy(), min))
	}
	if p.Pages > 0 {
		opts = append(opts, formfill.WithPages(p.Pages))
	}
	if p.ShowBounds {
		opts = append(opts, formfill.WithShowBounds())
	}
	if p.Cleanup != nil && !*p.Cleanup {
		opts = append(opts, formfill.WithoutCleanup())
	}
	return opts
}

func (p *Profile) overflowPolicy() render.Overflow {
	switch p.Overflow {
	case "shrink":
		return render.OverflowShrink
	case "none":
		return render.OverflowNone
	default:
		return render.OverflowExpand
	}
}
