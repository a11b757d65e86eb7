package palette

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// Item is one draggable component.
type Item struct {
	ID    string         `json:"id" yaml:"id"`
	Label string         `json:"label" yaml:"label"`
	Kind  tree.Kind      `json:"kind" yaml:"kind"`
	Type  tree.FieldType `json:"type" yaml:"type"`
	Group string         `json:"-" yaml:"-"`
}

// Group collects items under a heading.
type Group struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Items []Item `json:"items" yaml:"items"`
}

// Palette is immutable after loading and safe for concurrent readers.
type Palette struct {
	groups []Group
	items  map[string]Item
}

type documentFile struct {
	Groups []Group `json:"groups" yaml:"groups"`
}

// LoadFS walks fsys and parses every JSON/YAML palette file in lexical order.
// Item ids must be unique across files and each kind/type pair must be one
// the field tree accepts. A nil fsys yields an empty palette.
func LoadFS(fsys fs.FS) (*Palette, error) {
	p := &Palette{items: make(map[string]Item)}
	if fsys == nil {
		return p, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPaletteFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("palette: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		for _, group := range doc.Groups {
			if err := p.addGroup(group, path); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Palette) addGroup(raw Group, source string) error {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return fmt.Errorf("palette: file %s defines a group without id", source)
	}
	group := Group{ID: id, Title: strings.TrimSpace(raw.Title), Items: make([]Item, 0, len(raw.Items))}
	if group.Title == "" {
		group.Title = id
	}

	for _, item := range raw.Items {
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			return fmt.Errorf("palette: file %s group %q defines an item without id", source, id)
		}
		if _, exists := p.items[item.ID]; exists {
			return fmt.Errorf("palette: duplicate item %q (file %s)", item.ID, source)
		}
		if !tree.ValidType(item.Kind, item.Type) || item.Type == tree.FieldTypeEmpty {
			return fmt.Errorf("palette: item %q (file %s) has unsupported kind %q with type %q", item.ID, source, item.Kind, item.Type)
		}
		if strings.TrimSpace(item.Label) == "" {
			item.Label = item.ID
		}
		item.Group = id
		p.items[item.ID] = item
		group.Items = append(group.Items, item)
	}

	p.groups = append(p.groups, group)
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("palette: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("palette: parse %s: invalid JSON or YAML", source)
}

func isPaletteFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Lookup returns the item with id.
func (p *Palette) Lookup(id string) (Item, bool) {
	if p == nil {
		return Item{}, false
	}
	item, ok := p.items[id]
	return item, ok
}

// Groups returns the groups in load order.
func (p *Palette) Groups() []Group {
	if p == nil {
		return nil
	}
	out := make([]Group, len(p.groups))
	for i, g := range p.groups {
		out[i] = Group{ID: g.ID, Title: g.Title, Items: append([]Item(nil), g.Items...)}
	}
	return out
}

// Items returns every item in group order.
func (p *Palette) Items() []Item {
	var out []Item
	for _, g := range p.Groups() {
		out = append(out, g.Items...)
	}
	return out
}

// Empty reports whether the palette holds no items.
func (p *Palette) Empty() bool {
	return p == nil || len(p.items) == 0
}
