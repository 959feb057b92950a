package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/odvcencio/sectionlist/layout"
	"github.com/odvcencio/sectionlist/outline"
)

const menuTOML = `
title = "Menu"
markdown = ["extras.md"]

[heights]
item = 1
item_separator = 1
section_header = 1
list_header = 1

[[section]]
key = "mains"
title = "Main dishes"
rows = ["Pizza", "Burger", "Risotto"]

[[section]]
title = "Sides"
rows = ["French Fries"]
item_height = 2
`

const extrasMD = "# Drinks\n\n- Water\n- Soda\n"

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadAndSections(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "menu.toml", menuTOML)
	writeFile(t, dir, "extras.md", extrasMD)

	def, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if def.Title != "Menu" || def.Heights.ItemSeparator != 1 {
		t.Fatalf("decoded %+v", def)
	}

	sections, err := def.LoadSections(context.Background())
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(sections))
	}
	if sections[0].Key != "mains" || sections[0].Data[2].Text != "Risotto" {
		t.Fatalf("section 0 = %+v", sections[0])
	}
	if sections[1].Key == "" {
		t.Fatalf("section without key should get a generated one")
	}
	if sections[2].Key != "drinks" || len(sections[2].Data) != 2 {
		t.Fatalf("markdown section = %+v", sections[2])
	}

	lookup := layout.Build(def.Config())
	// sides header at index 5, its single two-cell row at 6
	if got := lookup(sections, 6); got != (layout.Layout{Length: 2, Offset: 8, Index: 6}) {
		t.Fatalf("lookup(6) = %+v", got)
	}
	if got := lookup(sections, 9); got != (layout.Layout{Length: 1, Offset: 11, Index: 9}) {
		t.Fatalf("lookup(9) = %+v", got)
	}
}

func TestConfigConstantWithoutOverrides(t *testing.T) {
	def, err := Parse([]byte("[heights]\nitem = 3\n[[section]]\nrows = [\"a\"]\n"), "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg := def.Config()
	if cfg.ItemHeight.Computed() {
		t.Fatalf("item height should stay constant")
	}
	if got := cfg.ItemHeight.Resolve(outline.Entry{}, 0, 0); got != 3 {
		t.Fatalf("item height = %v, want 3", got)
	}
}

func TestConfigWrap(t *testing.T) {
	def, err := Parse([]byte("wrap = 4\n[heights]\nitem = 1\n[[section]]\nrows = [\"ab\", \"abcdefghij\"]\n"), "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	h := def.Config().ItemHeight
	if got := h.Resolve(outline.Entry{Text: "ab"}, 0, 0); got != 1 {
		t.Fatalf("short row = %v, want 1", got)
	}
	if got := h.Resolve(outline.Entry{Text: "abcdefghij"}, 0, 1); got != 3 {
		t.Fatalf("wrapped row = %v, want 3", got)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		is   error
		msg  string
	}{
		{name: "empty", data: "", is: ErrNoSections},
		{name: "negative", data: "[heights]\nitem = -1\n[[section]]\nrows = []\n", is: ErrNegativeHeight},
		{name: "negative override", data: "[[section]]\nitem_height = -2\n", is: ErrNegativeHeight},
		{name: "unknown key", data: "colour = 1\n[[section]]\n", msg: "unknown keys colour"},
		{name: "syntax", data: "[[section]\n", msg: "decode definition"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), "")
			if err == nil {
				t.Fatalf("Parse succeeded, want error")
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Fatalf("err = %v, want %v", err, tc.is)
			}
			if tc.msg != "" && !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("err = %v, want it to mention %q", err, tc.msg)
			}
		})
	}
}

func TestSectionsMissingMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list.toml", "markdown = [\"missing.md\"]\n")
	def, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := def.LoadSections(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
}
