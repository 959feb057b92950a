// Package config loads section list definitions from TOML files.
//
// A definition declares constant heights and its sections, either inline
// or from Markdown files:
//
//	wrap = 40
//	markdown = ["notes.md"]
//
//	[heights]
//	item = 1
//	item_separator = 1
//	section_header = 1
//
//	[[section]]
//	key = "mains"
//	title = "Main dishes"
//	rows = ["Pizza", "Burger"]
//	item_height = 2
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/sectionlist/internal/logging"
	"github.com/odvcencio/sectionlist/layout"
	"github.com/odvcencio/sectionlist/outline"
)

var (
	// ErrNoSections is returned for definitions without sections or
	// Markdown sources.
	ErrNoSections = errors.New("config: definition has no sections")
	// ErrNegativeHeight is returned when a declared height is below zero.
	ErrNegativeHeight = errors.New("config: height must not be negative")
)

// Heights are the constant heights of a definition.
type Heights struct {
	Item             float64 `toml:"item"`
	ItemSeparator    float64 `toml:"item_separator"`
	SectionHeader    float64 `toml:"section_header"`
	SectionFooter    float64 `toml:"section_footer"`
	SectionSeparator float64 `toml:"section_separator"`
	ListHeader       float64 `toml:"list_header"`
}

// Section is an inline section.
type Section struct {
	Key        string   `toml:"key"`
	Title      string   `toml:"title"`
	Rows       []string `toml:"rows"`
	ItemHeight float64  `toml:"item_height"`
}

// Definition describes one section list.
type Definition struct {
	Title    string    `toml:"title"`
	Wrap     int       `toml:"wrap"`
	Markdown []string  `toml:"markdown"`
	Heights  Heights   `toml:"heights"`
	Sections []Section `toml:"section"`

	dir string
}

// Load reads the definition at path. Markdown paths are resolved relative
// to the file's directory.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	def, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Logger().Debug("loaded definition",
		zap.String("path", path),
		zap.Int("sections", len(def.Sections)),
		zap.Int("markdown", len(def.Markdown)))
	return def, nil
}

// Parse decodes a definition. dir is the base for relative Markdown paths.
func Parse(data []byte, dir string) (*Definition, error) {
	var def Definition
	meta, err := toml.Decode(string(data), &def)
	if err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("decode definition: unknown keys %s", strings.Join(keys, ", "))
	}
	def.dir = dir
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) validate() error {
	if len(d.Sections) == 0 && len(d.Markdown) == 0 {
		return ErrNoSections
	}
	h := d.Heights
	for name, v := range map[string]float64{
		"item":              h.Item,
		"item_separator":    h.ItemSeparator,
		"section_header":    h.SectionHeader,
		"section_footer":    h.SectionFooter,
		"section_separator": h.SectionSeparator,
		"list_header":       h.ListHeader,
	} {
		if v < 0 {
			return fmt.Errorf("heights.%s = %v: %w", name, v, ErrNegativeHeight)
		}
	}
	for i, s := range d.Sections {
		if s.ItemHeight < 0 {
			return fmt.Errorf("section %d item_height = %v: %w", i, s.ItemHeight, ErrNegativeHeight)
		}
	}
	return nil
}

// Config returns the layout configuration. Rows use the inline section's
// item_height when set, otherwise heights.item. With wrap set, rows grow
// to the number of lines they wrap to.
func (d *Definition) Config() layout.Config[outline.Entry] {
	h := d.Heights
	cfg := layout.Config[outline.Entry]{
		ItemHeight:             layout.FixedItem[outline.Entry](h.Item),
		ItemSeparatorHeight:    layout.FixedSeparator(h.ItemSeparator),
		SectionHeaderHeight:    layout.FixedSection(h.SectionHeader),
		SectionFooterHeight:    layout.FixedSection(h.SectionFooter),
		SectionSeparatorHeight: layout.FixedSection(h.SectionSeparator),
		ListHeaderHeight:       layout.FixedList(h.ListHeader),
	}

	overrides := make(map[int]float64)
	for i, s := range d.Sections {
		if s.ItemHeight > 0 {
			overrides[i] = s.ItemHeight
		}
	}
	if len(overrides) == 0 && d.Wrap <= 0 {
		return cfg
	}
	wrap := d.Wrap
	cfg.ItemHeight = layout.ItemFunc(func(e outline.Entry, sectionIndex, _ int) float64 {
		base := h.Item
		if v, ok := overrides[sectionIndex]; ok {
			base = v
		}
		if wrap <= 0 {
			return base
		}
		return max(base, float64(len(e.Lines(wrap))))
	})
	return cfg
}

// LoadSections returns the inline sections followed by the sections of every
// Markdown source, in declaration order. Sources are read concurrently.
func (d *Definition) LoadSections(ctx context.Context) ([]layout.Section[outline.Entry], error) {
	out := make([]layout.Section[outline.Entry], 0, len(d.Sections))
	for _, s := range d.Sections {
		key := s.Key
		if key == "" {
			key = ulid.Make().String()
		}
		rows := make([]outline.Entry, len(s.Rows))
		for i, r := range s.Rows {
			rows[i] = outline.Entry{Kind: outline.EntryItem, Text: r}
		}
		out = append(out, layout.Section[outline.Entry]{Key: key, Title: s.Title, Data: rows})
	}
	if len(d.Markdown) == 0 {
		return out, nil
	}

	parsed := make([][]layout.Section[outline.Entry], len(d.Markdown))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range d.Markdown {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := name
			if !filepath.IsAbs(path) {
				path = filepath.Join(d.dir, path)
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read markdown: %w", err)
			}
			sections, err := outline.Parse(src)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			logging.Logger().Debug("parsed markdown",
				zap.String("path", path),
				zap.Int("sections", len(sections)))
			parsed[i] = sections
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, sections := range parsed {
		out = append(out, sections...)
	}
	return out, nil
}
